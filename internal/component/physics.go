// internal/component/physics.go
package component

import "go-turret-arena/internal/utils"

// ColliderShape is the unit shape of a collider before scaling.
type ColliderShape int

const (
	ColliderBall   ColliderShape = iota // radius 1
	ColliderCuboid                      // half extents 0.5 x 0.5
)

// Collider describes the collision region the physics world uses.
type Collider struct {
	Shape  ColliderShape
	Scale  float64
	Sensor bool
}

// RigidBody is a dynamic body spawn request.
type RigidBody struct {
	Mass         float64
	GravityScale float64
	Restitution  float64
	LockRotation bool
	Impulse      utils.Vec2
}
