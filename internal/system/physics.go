// internal/system/physics.go
package system

import (
	"go-turret-arena/internal/entity"
	"go-turret-arena/internal/physics"
	"go-turret-arena/internal/types"
	"go-turret-arena/internal/utils"
)

// PhysicsWorld is the rigid-body engine the simulation hands bodies to.
// The core only spawns, resizes and reads back; motion and collision
// detection are the engine's business.
type PhysicsWorld interface {
	AddSensorBox(id types.EntityID, center utils.Vec2, width, height float64, kind physics.Kind)
	AddSensorCircle(id types.EntityID, center utils.Vec2, radius float64, kind physics.Kind)
	AddBall(id types.EntityID, spec physics.BallSpec)
	SetRadius(id types.EntityID, radius float64)
	Step(dt float64)
	Position(id types.EntityID) (utils.Vec2, bool)
	DrainContacts() []physics.Contact
}

// PhysicsSyncSystem steps the physics world and copies bullet positions
// back into their transforms.
type PhysicsSyncSystem struct {
	ecs   *entity.ECS
	world PhysicsWorld
}

func NewPhysicsSyncSystem(ecs *entity.ECS, world PhysicsWorld) *PhysicsSyncSystem {
	return &PhysicsSyncSystem{ecs: ecs, world: world}
}

// Update advances the world by deltaTime and returns the contacts that
// began during the step.
func (s *PhysicsSyncSystem) Update(deltaTime float64) []physics.Contact {
	s.world.Step(deltaTime)
	for id := range s.ecs.Bullets {
		pos, ok := s.world.Position(id)
		if !ok {
			continue
		}
		// Bullets hang directly off the root, which sits at the origin.
		if t, ok := s.ecs.Transforms[id]; ok {
			t.X, t.Y = pos.X, pos.Y
		}
	}
	return s.world.DrainContacts()
}
