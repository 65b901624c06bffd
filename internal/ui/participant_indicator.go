// internal/ui/participant_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	pkgrender "go-turret-arena/pkg/render"
)

// ParticipantIndicator shows one participant's name, charge and level pips
// in a screen corner.
type ParticipantIndicator struct {
	X, Y  float32
	Color color.RGBA
	Name  string
}

const (
	swatchSize   = 14
	levelPipSize = 6
	levelPipGap  = 3
	maxPips      = 16
	borderWidth  = 1
)

var (
	borderColor     = color.RGBA{0, 0, 0, 255}
	textColor       = color.RGBA{20, 20, 20, 255}
	eliminatedColor = color.RGBA{200, 30, 30, 255}
)

func NewParticipantIndicator(x, y float32, c color.RGBA, name string) *ParticipantIndicator {
	return &ParticipantIndicator{X: x, Y: y, Color: c, Name: name}
}

// Draw renders the indicator. Levels beyond the pip row are shown as a number only.
func (i *ParticipantIndicator) Draw(screen *ebiten.Image, face font.Face, label string, level int, eliminated bool) {
	swatch := i.Color
	if eliminated {
		swatch = pkgrender.DarkenColor(swatch)
	}
	vector.DrawFilledRect(screen, i.X, i.Y, swatchSize, swatchSize, swatch, true)
	vector.StrokeRect(screen, i.X, i.Y, swatchSize, swatchSize, borderWidth, borderColor, true)

	caption := fmt.Sprintf("%s  %s", i.Name, label)
	textX := int(i.X) + swatchSize + 6
	textY := int(i.Y) + swatchSize - 2
	text.Draw(screen, caption, face, textX, textY, textColor)

	pipY := i.Y + swatchSize + 4
	for j := 0; j < maxPips && j < level; j++ {
		pipX := i.X + float32(j)*(levelPipSize+levelPipGap)
		vector.DrawFilledRect(screen, pipX, pipY, levelPipSize, levelPipSize, i.Color, true)
	}

	if eliminated {
		width := float32(pkgrender.MeasureString(face, caption))
		midY := i.Y + swatchSize/2
		vector.StrokeLine(screen, float32(textX), midY, float32(textX)+width, midY, 2, eliminatedColor, true)
	}
}
