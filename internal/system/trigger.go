// internal/system/trigger.go
package system

import (
	"fmt"

	"github.com/rs/zerolog"

	"go-turret-arena/internal/clock"
	"go-turret-arena/internal/entity"
	"go-turret-arena/internal/event"
	"go-turret-arena/internal/participant"
)

// TriggerSystem applies drained trigger events to the owning turrets in
// arrival order.
type TriggerSystem struct {
	ecs             *entity.ECS
	registry        *participant.Registry
	factory         *ProjectileFactory
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger
}

func NewTriggerSystem(ecs *entity.ECS, registry *participant.Registry, factory *ProjectileFactory,
	eventDispatcher *event.Dispatcher, log zerolog.Logger) *TriggerSystem {
	return &TriggerSystem{
		ecs:             ecs,
		registry:        registry,
		factory:         factory,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

// Handle processes events in order. A participant without a turret or a
// turret without a charge is a broken setup and panics.
func (s *TriggerSystem) Handle(events []event.TriggerEvent, sw *clock.Stopwatch) {
	for _, e := range events {
		turretID := s.registry.Turret(e.Participant)
		charge, ok := s.ecs.Charges[turretID]
		if !ok {
			panic(fmt.Sprintf("trigger: turret %d of %s has no charge", turretID, e.Participant))
		}

		switch e.Type {
		case event.Multiply:
			charge.Multiply()
			s.ecs.MarkChargeChanged(turretID)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.ChargeMultiplied,
				Data: event.ChargeMultipliedData{
					Participant: e.Participant,
					Turret:      turretID,
					Value:       charge.Value,
					Level:       charge.Level,
				},
			})
		case event.BurstShot:
			s.log.Debug().Stringer("participant", e.Participant).Msg("burst shot not implemented")
		case event.ChargedShot:
			s.factory.Fire(e.Participant, turretID, sw)
		default:
			s.log.Warn().Stringer("participant", e.Participant).Int("trigger", int(e.Type)).Msg("unknown trigger type")
		}
	}
}
