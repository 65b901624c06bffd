// internal/state/env.go
package state

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"go-turret-arena/internal/config"
	pkgrender "go-turret-arena/pkg/render"
)

const (
	hudFontSize    = 14
	bannerFontSize = 40
)

// Env is what every state needs to build a battle and draw text.
type Env struct {
	Tuning config.Tuning
	Logger zerolog.Logger
	Faces  *pkgrender.FaceCache
}

// NewEnv loads the label font cache.
func NewEnv(tuning config.Tuning, logger zerolog.Logger) (*Env, error) {
	faces, err := pkgrender.NewFaceCache(nil, 0.5)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	return &Env{Tuning: tuning, Logger: logger, Faces: faces}, nil
}

func (e *Env) face(size float64) font.Face {
	face, err := e.Faces.Face(size)
	if err != nil {
		// Only fixed positive sizes reach here.
		panic(err)
	}
	return face
}
