// internal/system/battlefield.go
package system

import (
	"math"

	"go-turret-arena/internal/component"
	"go-turret-arena/internal/config"
	"go-turret-arena/internal/entity"
	"go-turret-arena/internal/participant"
	"go-turret-arena/internal/physics"
	"go-turret-arena/internal/types"
	"go-turret-arena/internal/utils"
)

// turretLayout is where each participant's turret stands and which way
// its platform faces before oscillation.
type turretLayout struct {
	owner      participant.Participant
	baseOffset float64
	signX      float64
	signY      float64
}

var turretLayouts = [participant.Count]turretLayout{
	{participant.A, math.Pi, 1, 1},
	{participant.B, -math.Pi / 2, -1, 1},
	{participant.C, math.Pi / 2, 1, -1},
	{participant.D, 0, -1, -1},
}

// BaseOffset returns the fixed platform angle of p's turret.
func BaseOffset(p participant.Participant) float64 {
	return turretLayouts[p.Index()].baseOffset
}

// SetupBattlefield spawns the root, the tile grid and the four turrets,
// registering every sensor with the physics world and every turret with
// the participant registry.
func SetupBattlefield(ecs *entity.ECS, registry *participant.Registry, world PhysicsWorld, tuning config.Tuning) {
	root := ecs.NewEntity()
	ecs.Names[root] = "Battlefield Root"
	ecs.Transforms[root] = component.NewTransform(0, 0, 0)
	registry.SetRoot(root)

	// The black backdrop shows through the gaps between tiles.
	step := tuning.TileDimension + tuning.TileBorderThickness
	extent := 2 * float64(tuning.TileCount) * step
	backdrop := ecs.NewEntity()
	ecs.Names[backdrop] = "Battlefield Backdrop"
	ecs.Transforms[backdrop] = &component.Transform{ScaleX: extent, ScaleY: extent}
	ecs.Renderables[backdrop] = &component.Renderable{Color: config.TileBorderColor, Shape: component.ShapeRect}
	ecs.SetParent(backdrop, root)

	battlefield := ecs.NewEntity()
	ecs.Names[battlefield] = "Battlefield"
	ecs.Transforms[battlefield] = component.NewTransform(0, 0, 0)
	ecs.SetParent(battlefield, root)

	for i := 0; i < tuning.TileCount; i++ {
		x := step/2 + float64(i)*step
		for j := 0; j < tuning.TileCount; j++ {
			y := step/2 + float64(j)*step
			spawnTile(ecs, registry, world, tuning, battlefield, participant.A, x, y)
			spawnTile(ecs, registry, world, tuning, battlefield, participant.B, -x, y)
			spawnTile(ecs, registry, world, tuning, battlefield, participant.C, x, -y)
			spawnTile(ecs, registry, world, tuning, battlefield, participant.D, -x, -y)
		}
	}

	for _, l := range turretLayouts {
		id := spawnTurret(ecs, registry, world, tuning, root, l.owner, l.baseOffset,
			l.signX*tuning.TurretPosition, l.signY*tuning.TurretPosition)
		registry.SetTurret(l.owner, id)
	}
}

func spawnTile(ecs *entity.ECS, registry *participant.Registry, world PhysicsWorld, tuning config.Tuning,
	parent types.EntityID, owner participant.Participant, x, y float64) {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{
		X: x, Y: y, Z: config.TileZ,
		ScaleX: tuning.TileDimension, ScaleY: tuning.TileDimension,
	}
	ecs.Renderables[id] = &component.Renderable{Color: registry.Colors.Get(owner), Shape: component.ShapeRect}
	ecs.Tiles[id] = &component.Tile{}
	ecs.Owners[id] = owner
	ecs.Colliders[id] = &component.Collider{Shape: component.ColliderCuboid, Scale: tuning.TileDimension, Sensor: true}
	ecs.SetParent(id, parent)

	world.AddSensorBox(id, utils.Vec2{X: x, Y: y}, tuning.TileDimension, tuning.TileDimension, physics.KindTile)
}

func spawnTurret(ecs *entity.ECS, registry *participant.Registry, world PhysicsWorld, tuning config.Tuning,
	root types.EntityID, owner participant.Participant, baseOffset, x, y float64) types.EntityID {
	ball := ecs.NewEntity()
	ecs.Transforms[ball] = component.NewTransform(0, 0, config.BulletBallZ)
	ecs.Renderables[ball] = &component.Renderable{Color: registry.Colors.Get(owner), Shape: component.ShapeCircle}
	ecs.Balls[ball] = &component.ChargeBall{}

	platform := ecs.NewEntity()
	ecs.Transforms[platform] = component.NewTransform(0, 0, config.TurretPlatformZ)
	ecs.Platforms[platform] = &component.TurretPlatform{BaseOffset: baseOffset}

	head := ecs.NewEntity()
	ecs.Transforms[head] = &component.Transform{
		Y: config.TurretHeadLength / 2, Z: config.TurretHeadZ,
		ScaleX: config.TurretHeadThickness, ScaleY: config.TurretHeadLength,
	}
	ecs.Renderables[head] = &component.Renderable{Color: config.TurretHeadColor, Shape: component.ShapeRect}
	ecs.Heads[head] = &component.TurretHead{}
	ecs.SetParent(head, platform)

	turret := ecs.NewEntity()
	ecs.Names[turret] = component.Name("Turret " + owner.String())
	ecs.Transforms[turret] = component.NewTransform(x, y, config.BulletTextZ)
	ecs.Turrets[turret] = &component.Turret{PlatformID: platform}
	ecs.Owners[turret] = owner
	ecs.Texts[turret] = &component.Text{FontSize: tuning.BulletRadiusFactor, Color: config.BulletTextColor}
	ecs.Colliders[turret] = &component.Collider{Shape: component.ColliderBall, Scale: 1, Sensor: true}
	ecs.AddCharge(turret, component.NewCharge(ball))
	ecs.SetParent(turret, root)
	ecs.SetParent(ball, turret)
	ecs.SetParent(platform, turret)

	world.AddSensorCircle(turret, utils.Vec2{X: x, Y: y}, 1, physics.KindTurret)
	return turret
}
