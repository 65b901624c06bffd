// pkg/render/font.go
package render

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FaceCache hands out font faces of one typeface, one per rounded size.
// Labels resize every time a charge multiplies, so faces are built once
// and reused.
type FaceCache struct {
	mu    sync.Mutex
	font  *opentype.Font
	step  float64
	faces map[float64]font.Face
}

// NewFaceCache parses ttf, or the bundled Go Regular font when ttf is nil.
// Requested sizes are rounded to the nearest multiple of step.
func NewFaceCache(ttf []byte, step float64) (*FaceCache, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	if step <= 0 {
		return nil, fmt.Errorf("font size step must be positive, got %v", step)
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FaceCache{font: f, step: step, faces: make(map[float64]font.Face)}, nil
}

// Face returns the face for size.
func (c *FaceCache) Face(size float64) (font.Face, error) {
	key := c.Round(size)
	if key <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if face, ok := c.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    key,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face of size %v: %w", key, err)
	}
	c.faces[key] = face
	return face, nil
}

// Round snaps size to the cache's step.
func (c *FaceCache) Round(size float64) float64 {
	return math.Round(size/c.step) * c.step
}

// MeasureString returns the advance width of s in pixels.
func MeasureString(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}
