package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-turret-arena/internal/config"
	"go-turret-arena/internal/participant"
	"go-turret-arena/internal/physics"
	"go-turret-arena/internal/utils"
)

func TestSetupBattlefieldTileGrid(t *testing.T) {
	a := newTestArena(t)

	require.Len(t, a.ecs.Tiles, 4*40*40)

	perOwner := map[participant.Participant]int{}
	for id := range a.ecs.Tiles {
		owner := a.ecs.Owners[id]
		perOwner[owner]++

		tr := a.ecs.Transforms[id]
		assert.Equal(t, config.TileZ, tr.Z)
		assert.Equal(t, 8.0, tr.ScaleX)
		assert.Equal(t, a.registry.Colors.Get(owner), a.ecs.Renderables[id].Color)

		sensor := a.world.sensors[id]
		assert.Equal(t, physics.KindTile, sensor.Kind)
		assert.Equal(t, utils.Vec2{X: tr.X, Y: tr.Y}, sensor.Center)
		assert.Equal(t, 8.0, sensor.Width)

		// Quadrant follows the owner.
		switch owner {
		case participant.A:
			assert.True(t, tr.X > 0 && tr.Y > 0)
		case participant.B:
			assert.True(t, tr.X < 0 && tr.Y > 0)
		case participant.C:
			assert.True(t, tr.X > 0 && tr.Y < 0)
		case participant.D:
			assert.True(t, tr.X < 0 && tr.Y < 0)
		}
		assert.InDelta(t, 0, math.Mod(math.Abs(tr.X)-4.5, 9), 1e-9)
		assert.GreaterOrEqual(t, math.Abs(tr.X), 4.5)
		assert.LessOrEqual(t, math.Abs(tr.Y), 355.5)
	}
	for _, p := range participant.All() {
		assert.Equal(t, 1600, perOwner[p], "participant %s", p)
	}
}

func TestSetupBattlefieldTurrets(t *testing.T) {
	a := newTestArena(t)
	tests := []struct {
		p      participant.Participant
		x, y   float64
		offset float64
	}{
		{participant.A, 350, 350, math.Pi},
		{participant.B, -350, 350, -math.Pi / 2},
		{participant.C, 350, -350, math.Pi / 2},
		{participant.D, -350, -350, 0},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			id := a.turret(tt.p)
			tr := a.ecs.Transforms[id]
			assert.Equal(t, tt.x, tr.X)
			assert.Equal(t, tt.y, tr.Y)
			assert.Equal(t, tt.p, a.ecs.Owners[id])
			assert.Equal(t, a.registry.Root(), a.ecs.Parent(id))

			charge := a.ecs.Charges[id]
			require.NotNil(t, charge)
			assert.Equal(t, 1.0, charge.Value)
			assert.Equal(t, 1.0, charge.Level)
			assert.Equal(t, id, a.ecs.Parent(charge.Link))
			assert.Contains(t, a.ecs.Balls, charge.Link)

			platformID := a.ecs.Turrets[id].PlatformID
			assert.Equal(t, id, a.ecs.Parent(platformID))
			assert.Equal(t, tt.offset, a.ecs.Platforms[platformID].BaseOffset)
			assert.Equal(t, tt.offset, BaseOffset(tt.p))

			heads := a.ecs.Children(platformID)
			require.Len(t, heads, 1)
			head := a.ecs.Transforms[heads[0]]
			assert.Equal(t, 37.5, head.Y)
			assert.Equal(t, 2.5, head.ScaleX)
			assert.Equal(t, 75.0, head.ScaleY)

			sensor := a.world.sensors[id]
			assert.Equal(t, physics.KindTurret, sensor.Kind)
			assert.Equal(t, utils.Vec2{X: tt.x, Y: tt.y}, sensor.Center)
		})
	}
}

func TestSetupBattlefieldInitialSync(t *testing.T) {
	a := newTestArena(t)
	for _, p := range participant.All() {
		id := a.turret(p)
		ball := a.ecs.Transforms[a.ecs.Charges[id].Link]
		assert.Equal(t, 5.0, ball.ScaleX)
		assert.Equal(t, 5.0, a.ecs.Colliders[id].Scale)
		assert.Equal(t, 5.0, a.world.radii[id])
		assert.Equal(t, "1", a.ecs.Texts[id].Value)
		assert.Equal(t, 10.0, a.ecs.Texts[id].FontSize)
	}
}
