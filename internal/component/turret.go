// internal/component/turret.go
package component

import "go-turret-arena/internal/types"

// Turret - a participant's emplacement. Its Charge, Owner and Collider
// live in the matching side tables.
type Turret struct {
	PlatformID types.EntityID
}

// TurretPlatform - the rotating part of the turret.
type TurretPlatform struct {
	// BaseOffset orients the turret toward the grid center.
	BaseOffset float64
}

// TurretHead marks the barrel drawn on top of a platform.
type TurretHead struct{}

// Tile marks one ownership cell of the battlefield grid.
type Tile struct{}
