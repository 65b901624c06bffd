// internal/component/projectile.go
package component

import "go-turret-arena/internal/utils"

// Bullet is a fired projectile. Motion belongs to the physics world.
type Bullet struct {
	FiredAngle float64
	Impulse    utils.Vec2
}

// ChargeBall marks the circle that visualises a Charge.
type ChargeBall struct{}
