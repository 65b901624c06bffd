// cmd/game/main.go
package main

import (
	"errors"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"go-turret-arena/internal/config"
	"go-turret-arena/internal/logging"
	"go-turret-arena/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	configDir := "."
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}
	tuning, err := config.Load(configDir)
	if err != nil {
		bootLog.Fatal().Err(err).Str("dir", configDir).Msg("load config")
	}

	logger, err := logging.New(tuning.LogLevel, os.Stderr)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("init logger")
	}
	logger.Info().Interface("tuning", tuning).Msg("config loaded")

	if tuning.PprofAddr != "" {
		go func() {
			if err := http.ListenAndServe(tuning.PprofAddr, nil); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Str("addr", tuning.PprofAddr).Msg("pprof server stopped")
			}
		}()
	}

	env, err := state.NewEnv(tuning, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("init resources")
	}
	sm := state.NewStateMachine(logging.For(logger, "state"))
	sm.SetState(state.NewBattleState(sm, env))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Turret Arena")
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal().Err(err).Msg("run game")
	}
}
