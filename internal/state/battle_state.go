// internal/state/battle_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-turret-arena/internal/app"
	"go-turret-arena/internal/config"
	"go-turret-arena/internal/input"
	"go-turret-arena/internal/logging"
	"go-turret-arena/internal/participant"
	"go-turret-arena/internal/render"
	"go-turret-arena/internal/ui"
)

var _ State = (*BattleState)(nil)

// BattleState runs a match: polls the trigger panel, ticks the game and
// draws the arena with a participant HUD.
type BattleState struct {
	sm         *StateMachine
	env        *Env
	game       *app.Game
	panel      *input.Panel
	renderer   *render.Renderer
	indicators participant.Map[*ui.ParticipantIndicator]
	keys       []ebiten.Key
	pressed    map[string]bool
}

func NewBattleState(sm *StateMachine, env *Env) *BattleState {
	g := app.NewGame(env.Tuning, env.Logger)
	panel, err := input.NewPanel(input.DefaultBindings(), g.Triggers)
	if err != nil {
		// Default bindings are fixed and unique.
		panic(err)
	}

	s := &BattleState{
		sm:       sm,
		env:      env,
		game:     g,
		panel:    panel,
		renderer: render.NewRenderer(g.ECS, env.Faces, config.ScreenWidth, config.ScreenHeight, logging.For(env.Logger, "render")),
		pressed:  make(map[string]bool),
	}
	for _, p := range participant.All() {
		x := float32(12)
		if p == participant.A || p == participant.C {
			x = float32(config.ScreenWidth - 180)
		}
		y := float32(12)
		if p == participant.C || p == participant.D {
			y = float32(config.ScreenHeight - 40)
		}
		s.indicators.Set(p, ui.NewParticipantIndicator(x, y, g.Registry.Colors.Get(p), g.Registry.Names.Get(p)))
	}
	return s
}

func (s *BattleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	clear(s.pressed)
	for _, k := range s.keys {
		s.pressed[k.String()] = true
	}
	s.panel.Poll(func(key string) bool { return s.pressed[key] })

	s.game.Update(deltaTime)

	if !s.game.IsGoing() {
		s.sm.SetState(NewGameOverState(s.sm, s.env, s))
	}
}

func (s *BattleState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)

	face := s.env.face(hudFontSize)
	s.indicators.Each(func(p participant.Participant, ind *ui.ParticipantIndicator) {
		charge := s.game.ECS.Charges[s.game.Registry.Turret(p)]
		label := s.game.ECS.Texts[s.game.Registry.Turret(p)].Value
		ind.Draw(screen, face, label, int(charge.Level), s.game.EliminationSystem.IsEliminated(p))
	})
}

// Game exposes the running match to the states layered on top of it.
func (s *BattleState) Game() *app.Game {
	return s.game
}
