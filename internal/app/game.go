// internal/app/game.go
package app

import (
	"github.com/rs/zerolog"

	"go-turret-arena/internal/clock"
	"go-turret-arena/internal/config"
	"go-turret-arena/internal/entity"
	"go-turret-arena/internal/event"
	"go-turret-arena/internal/logging"
	"go-turret-arena/internal/participant"
	"go-turret-arena/internal/physics"
	"go-turret-arena/internal/system"
)

// Game holds the arena state and runs one simulation tick per Update.
type Game struct {
	ECS             *entity.ECS
	Registry        *participant.Registry
	Physics         *physics.World
	Clock           *clock.Stopwatch
	Triggers        *event.TriggerQueue
	EventDispatcher *event.Dispatcher
	Tuning          config.Tuning

	TurretSystem       *system.TurretSystem
	TriggerSystem      *system.TriggerSystem
	ProjectileFactory  *system.ProjectileFactory
	ChargeSyncSystem   *system.ChargeSyncSystem
	PhysicsSyncSystem  *system.PhysicsSyncSystem
	EliminationSystem  *system.EliminationSystem
	AutoMultiplySystem *system.AutoMultiplySystem // nil unless enabled

	log zerolog.Logger
}

// NewGame builds the battlefield and wires every system.
func NewGame(tuning config.Tuning, logger zerolog.Logger) *Game {
	ecs := entity.NewECS()
	registry := participant.NewRegistry(config.ParticipantColors, config.ParticipantNames)
	world := physics.NewWorld()
	eventDispatcher := event.NewDispatcher()
	queue := event.NewTriggerQueue()

	system.SetupBattlefield(ecs, registry, world, tuning)

	factory := system.NewProjectileFactory(ecs, registry, world, eventDispatcher, tuning, logging.For(logger, "projectile"))
	g := &Game{
		ECS:               ecs,
		Registry:          registry,
		Physics:           world,
		Clock:             &clock.Stopwatch{},
		Triggers:          queue,
		EventDispatcher:   eventDispatcher,
		Tuning:            tuning,
		TurretSystem:      system.NewTurretSystem(ecs, tuning.TurretRotationSpeed),
		TriggerSystem:     system.NewTriggerSystem(ecs, registry, factory, eventDispatcher, logging.For(logger, "trigger")),
		ProjectileFactory: factory,
		ChargeSyncSystem:  system.NewChargeSyncSystem(ecs, world, tuning.BulletRadiusFactor, tuning.TextAspectFactor),
		PhysicsSyncSystem: system.NewPhysicsSyncSystem(ecs, world),
		EliminationSystem: system.NewEliminationSystem(ecs, eventDispatcher, logging.For(logger, "elimination")),
		log:               logging.For(logger, "game"),
	}
	if tuning.AutoMultiply {
		g.AutoMultiplySystem = system.NewAutoMultiplySystem(queue, tuning.AutoMultiplyInterval)
	}

	listener := &GameEventListener{log: g.log}
	eventDispatcher.SubscribeAll(listener,
		event.ChargeMultiplied, event.BulletFired, event.ParticipantEliminated, event.GameOver)

	// Size the initial charge balls and labels before the first frame.
	g.ChargeSyncSystem.Update()
	ecs.ResolveWorldTransforms()

	g.log.Info().
		Int("tiles", len(ecs.Tiles)).
		Int("turrets", len(ecs.Turrets)).
		Bool("auto_multiply", tuning.AutoMultiply).
		Msg("battlefield ready")
	return g
}

// Trigger queues an input for the next tick. Inputs from eliminated
// participants are dropped.
func (g *Game) Trigger(e event.TriggerEvent) bool {
	if g.EliminationSystem.IsEliminated(e.Participant) {
		g.log.Debug().Stringer("participant", e.Participant).Stringer("trigger", e.Type).Msg("trigger from eliminated participant dropped")
		return false
	}
	g.Triggers.Push(e)
	return true
}

// Update advances the simulation by deltaTime seconds.
func (g *Game) Update(deltaTime float64) {
	g.Clock.TickSeconds(deltaTime)
	g.TurretSystem.Update(g.Clock)

	if g.AutoMultiplySystem != nil {
		g.AutoMultiplySystem.Update(deltaTime)
	}
	if pending := g.Triggers.Drain(); len(pending) > 0 {
		g.TriggerSystem.Handle(g.allowed(pending), g.Clock)
	}

	g.ChargeSyncSystem.Update()

	contacts := g.PhysicsSyncSystem.Update(deltaTime)
	g.EliminationSystem.Handle(contacts)

	g.ECS.ResolveWorldTransforms()
}

// allowed filters out triggers queued behind Trigger's back, such as
// the auto-multiply timer's, once their participant is out.
func (g *Game) allowed(events []event.TriggerEvent) []event.TriggerEvent {
	out := events[:0]
	for _, e := range events {
		if !g.EliminationSystem.IsEliminated(e.Participant) {
			out = append(out, e)
		}
	}
	return out
}

// IsGoing reports whether at least two participants are still playing.
func (g *Game) IsGoing() bool {
	return g.EliminationSystem.IsGoing()
}

// GameEventListener logs the notifications the host cares about.
type GameEventListener struct {
	log zerolog.Logger
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ChargeMultipliedData:
		l.log.Debug().Stringer("participant", data.Participant).Float64("value", data.Value).Float64("level", data.Level).Msg("charge multiplied")
	case event.BulletFiredData:
		l.log.Debug().Stringer("participant", data.Participant).Uint64("bullet", uint64(data.Bullet)).Float64("mass", data.Mass).Msg("bullet in flight")
	case event.EliminationData:
		l.log.Info().Stringer("participant", data.Participant).Stringer("by", data.By).Msg("turret destroyed")
	case event.GameOverData:
		if data.HasWinner {
			l.log.Info().Stringer("winner", data.Winner).Msg("match finished")
		} else {
			l.log.Info().Msg("match finished without a winner")
		}
	}
}
