// internal/system/projectile.go
package system

import (
	"fmt"

	"github.com/rs/zerolog"

	"go-turret-arena/internal/clock"
	"go-turret-arena/internal/component"
	"go-turret-arena/internal/config"
	"go-turret-arena/internal/entity"
	"go-turret-arena/internal/event"
	"go-turret-arena/internal/participant"
	"go-turret-arena/internal/physics"
	"go-turret-arena/internal/types"
	"go-turret-arena/internal/utils"
)

// ProjectileFactory turns a turret's charge and aim into a bullet handed
// to the physics world. Its job ends once the impulse is applied.
type ProjectileFactory struct {
	ecs             *entity.ECS
	registry        *participant.Registry
	world           PhysicsWorld
	eventDispatcher *event.Dispatcher
	tuning          config.Tuning
	log             zerolog.Logger
}

func NewProjectileFactory(ecs *entity.ECS, registry *participant.Registry, world PhysicsWorld,
	eventDispatcher *event.Dispatcher, tuning config.Tuning, log zerolog.Logger) *ProjectileFactory {
	return &ProjectileFactory{
		ecs:             ecs,
		registry:        registry,
		world:           world,
		eventDispatcher: eventDispatcher,
		tuning:          tuning,
		log:             log,
	}
}

// Fire spawns a bullet from turretID carrying a copy of its charge and
// returns the bullet entity. The turret's own charge is left untouched.
func (f *ProjectileFactory) Fire(owner participant.Participant, turretID types.EntityID, sw *clock.Stopwatch) types.EntityID {
	turret, ok := f.ecs.Turrets[turretID]
	if !ok {
		panic(fmt.Sprintf("projectile: entity %d is not a turret", turretID))
	}
	charge, ok := f.ecs.Charges[turretID]
	if !ok {
		panic(fmt.Sprintf("projectile: turret %d has no charge", turretID))
	}
	platform, ok := f.ecs.Platforms[turret.PlatformID]
	if !ok {
		panic(fmt.Sprintf("projectile: turret %d has no platform", turretID))
	}

	origin := f.ecs.WorldTransform(turretID)
	angle := platform.BaseOffset + sw.Oscillation(f.tuning.TurretRotationSpeed)
	impulse := utils.FromAngle(angle).Scale(f.tuning.BulletFireForce)
	mass := charge.Value * f.tuning.BulletMassFactor
	radius := ChargeRadius(charge.Level, f.tuning.BulletRadiusFactor)

	ball := f.ecs.NewEntity()
	f.ecs.Transforms[ball] = component.NewTransform(0, 0, config.BulletBallZ)
	f.ecs.Renderables[ball] = &component.Renderable{Color: f.registry.Colors.Get(owner), Shape: component.ShapeCircle}
	f.ecs.Balls[ball] = &component.ChargeBall{}

	bullet := f.ecs.NewEntity()
	f.ecs.Transforms[bullet] = component.NewTransform(origin.X, origin.Y, config.BulletTextZ)
	f.ecs.Bullets[bullet] = &component.Bullet{FiredAngle: angle, Impulse: impulse}
	f.ecs.Owners[bullet] = owner
	f.ecs.RigidBodies[bullet] = &component.RigidBody{
		Mass:         mass,
		GravityScale: 0,
		Restitution:  1,
		LockRotation: true,
		Impulse:      impulse,
	}
	f.ecs.Colliders[bullet] = &component.Collider{Shape: component.ColliderBall, Scale: radius}
	f.ecs.Texts[bullet] = &component.Text{FontSize: f.tuning.BulletRadiusFactor, Color: config.BulletTextColor}
	f.ecs.AddCharge(bullet, charge.CopyTo(ball))
	f.ecs.SetParent(bullet, f.registry.Root())
	f.ecs.SetParent(ball, bullet)

	f.world.AddBall(bullet, physics.BallSpec{
		Position:     utils.Vec2{X: origin.X, Y: origin.Y},
		Radius:       radius,
		Mass:         mass,
		Restitution:  1,
		LockRotation: true,
		Impulse:      impulse,
	})

	f.log.Debug().
		Stringer("participant", owner).
		Uint64("bullet", uint64(bullet)).
		Float64("angle", angle).
		Float64("mass", mass).
		Msg("bullet fired")
	f.eventDispatcher.Dispatch(event.Event{
		Type: event.BulletFired,
		Data: event.BulletFiredData{Participant: owner, Bullet: bullet, Angle: angle, Mass: mass},
	})
	return bullet
}
