package system

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"go-turret-arena/internal/clock"
	"go-turret-arena/internal/config"
	"go-turret-arena/internal/entity"
	"go-turret-arena/internal/event"
	"go-turret-arena/internal/participant"
	"go-turret-arena/internal/physics"
	"go-turret-arena/internal/types"
	"go-turret-arena/internal/utils"
)

type sensorCall struct {
	Center        utils.Vec2
	Width, Height float64
	Radius        float64
	Kind          physics.Kind
}

// fakeWorld records what the simulation asks of the physics engine.
type fakeWorld struct {
	sensors  map[types.EntityID]sensorCall
	balls    map[types.EntityID]physics.BallSpec
	radii    map[types.EntityID]float64
	steps    []float64
	contacts []physics.Contact
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		sensors: make(map[types.EntityID]sensorCall),
		balls:   make(map[types.EntityID]physics.BallSpec),
		radii:   make(map[types.EntityID]float64),
	}
}

func (w *fakeWorld) AddSensorBox(id types.EntityID, center utils.Vec2, width, height float64, kind physics.Kind) {
	w.sensors[id] = sensorCall{Center: center, Width: width, Height: height, Kind: kind}
}

func (w *fakeWorld) AddSensorCircle(id types.EntityID, center utils.Vec2, radius float64, kind physics.Kind) {
	w.sensors[id] = sensorCall{Center: center, Radius: radius, Kind: kind}
	w.radii[id] = radius
}

func (w *fakeWorld) AddBall(id types.EntityID, spec physics.BallSpec) {
	w.balls[id] = spec
	w.radii[id] = spec.Radius
}

func (w *fakeWorld) SetRadius(id types.EntityID, radius float64) {
	w.radii[id] = radius
}

func (w *fakeWorld) Step(dt float64) {
	w.steps = append(w.steps, dt)
}

func (w *fakeWorld) Position(id types.EntityID) (utils.Vec2, bool) {
	spec, ok := w.balls[id]
	return spec.Position, ok
}

func (w *fakeWorld) DrainContacts() []physics.Contact {
	out := w.contacts
	w.contacts = nil
	return out
}

type testArena struct {
	ecs        *entity.ECS
	registry   *participant.Registry
	world      *fakeWorld
	dispatcher *event.Dispatcher
	clock      *clock.Stopwatch
	factory    *ProjectileFactory
	triggers   *TriggerSystem
	sync       *ChargeSyncSystem
	logs       *bytes.Buffer
	tuning     config.Tuning
}

func newTestArena(t *testing.T) *testArena {
	t.Helper()
	tuning := config.Default()
	logs := &bytes.Buffer{}
	log := zerolog.New(logs).Level(zerolog.DebugLevel)

	a := &testArena{
		ecs:        entity.NewECS(),
		registry:   participant.NewRegistry(config.ParticipantColors, config.ParticipantNames),
		world:      newFakeWorld(),
		dispatcher: event.NewDispatcher(),
		clock:      &clock.Stopwatch{},
		logs:       logs,
		tuning:     tuning,
	}
	SetupBattlefield(a.ecs, a.registry, a.world, tuning)
	a.factory = NewProjectileFactory(a.ecs, a.registry, a.world, a.dispatcher, tuning, log)
	a.triggers = NewTriggerSystem(a.ecs, a.registry, a.factory, a.dispatcher, log)
	a.sync = NewChargeSyncSystem(a.ecs, a.world, tuning.BulletRadiusFactor, tuning.TextAspectFactor)
	a.sync.Update()
	return a
}

func (a *testArena) send(events ...event.TriggerEvent) {
	a.triggers.Handle(events, a.clock)
	a.sync.Update()
}

func (a *testArena) turret(p participant.Participant) types.EntityID {
	return a.registry.Turret(p)
}

// recorder collects dispatched events.
type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.got = append(r.got, e) }
