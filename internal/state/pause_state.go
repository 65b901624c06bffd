// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-turret-arena/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the battle underneath it. The stopwatch does not
// advance, so turrets resume their sweep exactly where they stopped.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *BattleState
}

func NewPauseState(sm *StateMachine, prevState *BattleState) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prevState}
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	env := s.previousState.env
	ui.DrawBanner(screen, env.face(bannerFontSize), env.face(hudFontSize), "PAUSED", "P to resume")
}
