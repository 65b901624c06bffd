// internal/state/state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// State is one screen of the application: the running battle, the pause
// overlay or the result banner.
type State interface {
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
}

// StateMachine runs exactly one state at a time and logs every switch.
type StateMachine struct {
	current State
	log     zerolog.Logger
}

func NewStateMachine(logger zerolog.Logger) *StateMachine {
	return &StateMachine{log: logger}
}

// SetState replaces the running state. Switching to the state already
// running is a no-op.
func (sm *StateMachine) SetState(next State) {
	if next == sm.current {
		return
	}
	sm.log.Debug().Str("from", stateName(sm.current)).Str("to", stateName(next)).Msg("state change")
	sm.current = next
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func stateName(s State) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%T", s)
}
