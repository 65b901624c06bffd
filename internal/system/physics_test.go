package system

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-turret-arena/internal/clock"
	"go-turret-arena/internal/config"
	"go-turret-arena/internal/entity"
	"go-turret-arena/internal/event"
	"go-turret-arena/internal/participant"
	"go-turret-arena/internal/physics"
)

func TestPhysicsSyncMovesBullets(t *testing.T) {
	tuning := config.Default()
	ecs := entity.NewECS()
	registry := participant.NewRegistry(config.ParticipantColors, config.ParticipantNames)
	world := physics.NewWorld()
	dispatcher := event.NewDispatcher()
	SetupBattlefield(ecs, registry, world, tuning)

	factory := NewProjectileFactory(ecs, registry, world, dispatcher, tuning, zerolog.Nop())
	sync := NewPhysicsSyncSystem(ecs, world)

	// At t=0 D's turret aims along +x.
	bullet := factory.Fire(participant.D, registry.Turret(participant.D), &clock.Stopwatch{})

	var contacts []physics.Contact
	for i := 0; i < 10; i++ {
		contacts = append(contacts, sync.Update(0.01)...)
	}

	tr := ecs.Transforms[bullet]
	assert.InDelta(t, -350+10, tr.X, 1e-6)
	assert.InDelta(t, -350, tr.Y, 1e-6)

	ecs.ResolveWorldTransforms()
	ball := ecs.Charges[bullet].Link
	assert.InDelta(t, tr.X, ecs.World[ball].X, 1e-9)

	// The bullet starts inside its own turret's sensor and on D's tiles.
	require.NotEmpty(t, contacts)
	kinds := map[physics.Kind]bool{}
	for _, c := range contacts {
		assert.Equal(t, bullet, c.Bullet)
		kinds[c.Kind] = true
	}
	assert.True(t, kinds[physics.KindTurret])
}

func TestPhysicsSyncStepsFakeWorld(t *testing.T) {
	a := newTestArena(t)
	sync := NewPhysicsSyncSystem(a.ecs, a.world)
	a.world.contacts = []physics.Contact{{Bullet: 1, Other: 2, Kind: physics.KindTile}}

	got := sync.Update(0.016)
	assert.Equal(t, []float64{0.016}, a.world.steps)
	assert.Len(t, got, 1)
	assert.Empty(t, sync.Update(0.016))
}
