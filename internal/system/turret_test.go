package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-turret-arena/internal/clock"
	"go-turret-arena/internal/participant"
)

func TestTurretSystemSweepsInPhase(t *testing.T) {
	a := newTestArena(t)
	turrets := NewTurretSystem(a.ecs, a.tuning.TurretRotationSpeed)

	for _, elapsed := range []time.Duration{0, 400 * time.Millisecond, 1500 * time.Millisecond, 2900 * time.Millisecond} {
		var sw clock.Stopwatch
		sw.Tick(elapsed)
		turrets.Update(&sw)

		osc := clock.Oscillation(elapsed.Seconds(), 1.0)
		for _, p := range participant.All() {
			platformID := a.ecs.Turrets[a.turret(p)].PlatformID
			got := a.ecs.Transforms[platformID].Rotation
			assert.InDelta(t, BaseOffset(p)-osc, got, 1e-12, "participant %s at %v", p, elapsed)
		}
	}
}

func TestTurretSystemUnaffectedByFiring(t *testing.T) {
	a := newTestArena(t)
	turrets := NewTurretSystem(a.ecs, a.tuning.TurretRotationSpeed)
	a.clock.Tick(700 * time.Millisecond)
	turrets.Update(a.clock)
	platformID := a.ecs.Turrets[a.turret(participant.D)].PlatformID
	before := a.ecs.Transforms[platformID].Rotation

	a.factory.Fire(participant.D, a.turret(participant.D), a.clock)
	turrets.Update(a.clock)

	assert.Equal(t, before, a.ecs.Transforms[platformID].Rotation)
	assert.InDelta(t, -0.7, before, 1e-9)
	assert.True(t, math.Abs(before) <= math.Pi/2)
}
