// internal/ui/banner.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	pkgrender "go-turret-arena/pkg/render"
)

var shadeColor = color.RGBA{0, 0, 0, 128}

// DrawBanner dims the screen and centers title with an optional subtitle below it.
func DrawBanner(screen *ebiten.Image, titleFace, subFace font.Face, title, subtitle string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), shadeColor, false)

	white := color.RGBA{255, 255, 255, 255}
	titleWidth := pkgrender.MeasureString(titleFace, title)
	text.Draw(screen, title, titleFace, (w-int(titleWidth))/2, h/2, white)

	if subtitle != "" {
		subWidth := pkgrender.MeasureString(subFace, subtitle)
		text.Draw(screen, subtitle, subFace, (w-int(subWidth))/2, h/2+40, white)
	}
}
