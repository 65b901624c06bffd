// internal/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"go-turret-arena/internal/component"
	"go-turret-arena/internal/config"
	"go-turret-arena/internal/entity"
	pkgrender "go-turret-arena/pkg/render"
)

// Renderer draws the arena. Tiles never change, so they are drawn once
// into a background image and blitted every frame.
type Renderer struct {
	ecs          *entity.ECS
	faces        *pkgrender.FaceCache
	screenWidth  int
	screenHeight int
	fillImg      *ebiten.Image
	background   *ebiten.Image
	items        []Item
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	log          zerolog.Logger
}

func NewRenderer(ecs *entity.ECS, faces *pkgrender.FaceCache, screenWidth, screenHeight int, log zerolog.Logger) *Renderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Renderer{
		ecs:          ecs,
		faces:        faces,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 4),
		fillIs:       make([]uint16, 0, 6),
		log:          log,
	}
}

// Draw renders the current world cache. Call it after the tick resolved
// world transforms.
func (r *Renderer) Draw(screen *ebiten.Image) {
	if r.background == nil {
		r.renderBackground()
	}
	screen.DrawImage(r.background, nil)

	r.items = BuildDrawList(r.ecs, false, r.screenWidth, r.screenHeight, r.items)
	for i := range r.items {
		r.drawItem(screen, &r.items[i])
	}
}

func (r *Renderer) renderBackground() {
	r.background = ebiten.NewImage(r.screenWidth, r.screenHeight)
	r.background.Fill(config.BackgroundColor)
	items := BuildDrawList(r.ecs, true, r.screenWidth, r.screenHeight, nil)
	for i := range items {
		r.drawItem(r.background, &items[i])
	}
	r.log.Debug().Int("items", len(items)).Msg("background rendered")
}

func (r *Renderer) drawItem(target *ebiten.Image, item *Item) {
	if item.HasShape {
		switch item.Shape {
		case component.ShapeRect:
			r.drawQuad(target, item.Corners, item.Color)
		case component.ShapeCircle:
			vector.DrawFilledCircle(target, float32(item.X), float32(item.Y), float32(item.Radius), item.Color, true)
		}
	}
	if item.Label != "" && item.FontSize > 0 {
		r.drawLabel(target, item)
	}
}

func (r *Renderer) drawQuad(target *ebiten.Image, corners [4][2]float64, clr color.RGBA) {
	path := vector.Path{}
	path.MoveTo(float32(corners[0][0]), float32(corners[0][1]))
	for _, c := range corners[1:] {
		path.LineTo(float32(c[0]), float32(c[1]))
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	cr, cg, cb, ca := pkgrender.VertexColor(clr)
	for i := range r.fillVs {
		r.fillVs[i].SrcX = 0
		r.fillVs[i].SrcY = 0
		r.fillVs[i].ColorR = cr
		r.fillVs[i].ColorG = cg
		r.fillVs[i].ColorB = cb
		r.fillVs[i].ColorA = ca
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) drawLabel(target *ebiten.Image, item *Item) {
	face, err := r.faces.Face(item.FontSize)
	if err != nil {
		r.log.Warn().Err(err).Uint64("entity", uint64(item.ID)).Msg("label skipped")
		return
	}
	width := pkgrender.MeasureString(face, item.Label)
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	x := item.X - width/2
	y := item.Y + (ascent-descent)/2
	text.Draw(target, item.Label, face, int(x), int(y), item.TextColor)
}
