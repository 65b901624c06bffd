// internal/system/elimination.go
package system

import (
	"github.com/rs/zerolog"

	"go-turret-arena/internal/entity"
	"go-turret-arena/internal/event"
	"go-turret-arena/internal/participant"
	"go-turret-arena/internal/physics"
)

// EliminationSystem knocks a participant out the first time an opponent's
// bullet reaches its turret, and announces game over once at most one
// participant is left.
type EliminationSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger
	eliminated      participant.Map[bool]
	over            bool
}

func NewEliminationSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, log zerolog.Logger) *EliminationSystem {
	return &EliminationSystem{ecs: ecs, eventDispatcher: eventDispatcher, log: log}
}

func (s *EliminationSystem) Handle(contacts []physics.Contact) {
	for _, c := range contacts {
		if c.Kind != physics.KindTurret {
			continue
		}
		if _, isTurret := s.ecs.Turrets[c.Other]; !isTurret {
			continue
		}
		shooter, ok := s.ecs.Owners[c.Bullet]
		if !ok {
			continue
		}
		target, ok := s.ecs.Owners[c.Other]
		if !ok || target == shooter || s.eliminated.Get(target) {
			continue
		}

		s.eliminated.Set(target, true)
		s.log.Info().Stringer("participant", target).Stringer("by", shooter).Msg("participant eliminated")
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ParticipantEliminated,
			Data: event.EliminationData{Participant: target, By: shooter, Bullet: c.Bullet},
		})
	}

	if s.over || s.IsGoing() {
		return
	}
	s.over = true
	data := event.GameOverData{}
	if remaining := s.Remaining(); len(remaining) == 1 {
		data.Winner, data.HasWinner = remaining[0], true
	}
	s.log.Info().Bool("has_winner", data.HasWinner).Stringer("winner", data.Winner).Msg("game over")
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: data})
}

func (s *EliminationSystem) IsEliminated(p participant.Participant) bool {
	return s.eliminated.Get(p)
}

// Remaining lists the participants still in the match, in A..D order.
func (s *EliminationSystem) Remaining() []participant.Participant {
	var out []participant.Participant
	s.eliminated.Each(func(p participant.Participant, gone bool) {
		if !gone {
			out = append(out, p)
		}
	})
	return out
}

// IsGoing reports whether more than one participant is still in the match.
func (s *EliminationSystem) IsGoing() bool {
	return len(s.Remaining()) > 1
}
