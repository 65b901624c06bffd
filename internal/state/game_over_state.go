// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-turret-arena/internal/ui"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the result over the final frame; Space starts a new match.
type GameOverState struct {
	sm       *StateMachine
	env      *Env
	finished *BattleState
	title    string
}

func NewGameOverState(sm *StateMachine, env *Env, finished *BattleState) *GameOverState {
	title := "DRAW"
	if remaining := finished.Game().EliminationSystem.Remaining(); len(remaining) == 1 {
		title = fmt.Sprintf("%s WINS", finished.Game().Registry.Names.Get(remaining[0]))
	}
	return &GameOverState{sm: sm, env: env, finished: finished, title: title}
}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewBattleState(s.sm, s.env))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.finished.Draw(screen)
	ui.DrawBanner(screen, s.env.face(bannerFontSize), s.env.face(hudFontSize), s.title, "Space for a new match")
}
