// internal/system/turret.go
package system

import (
	"go-turret-arena/internal/clock"
	"go-turret-arena/internal/entity"
)

// TurretSystem sweeps every turret platform back and forth around its
// base offset. All platforms read the same stopwatch, so they move in phase.
type TurretSystem struct {
	ecs           *entity.ECS
	rotationSpeed float64
}

func NewTurretSystem(ecs *entity.ECS, rotationSpeed float64) *TurretSystem {
	return &TurretSystem{ecs: ecs, rotationSpeed: rotationSpeed}
}

func (s *TurretSystem) Update(sw *clock.Stopwatch) {
	offset := sw.Oscillation(s.rotationSpeed)
	for id, platform := range s.ecs.Platforms {
		if t, ok := s.ecs.Transforms[id]; ok {
			t.Rotation = platform.BaseOffset - offset
		}
	}
}
