// internal/render/drawlist.go
package render

import (
	"image/color"
	"math"
	"sort"

	"go-turret-arena/internal/component"
	"go-turret-arena/internal/config"
	"go-turret-arena/internal/entity"
	"go-turret-arena/internal/types"
	"go-turret-arena/internal/utils"
	pkgrender "go-turret-arena/pkg/render"
)

// Item is one primitive or label ready to draw, in screen space.
type Item struct {
	ID        types.EntityID
	Z         float64
	X, Y      float64 // screen center
	Shape     component.Shape
	Color     color.RGBA
	Corners   [4][2]float64 // rects only
	Radius    float64       // circles only
	Label     string
	FontSize  float64
	TextColor color.RGBA
	HasShape  bool
}

// ToScreen maps world coordinates (origin at the center, y up) to screen
// pixels (origin top-left, y down).
func ToScreen(x, y float64, screenWidth, screenHeight int) (float64, float64) {
	return float64(screenWidth)/2 + x, float64(screenHeight)/2 - y
}

// RectCorners returns the screen corners of a unit square scaled and
// rotated by t, counter-clockwise in world space.
func RectCorners(t component.Transform, screenWidth, screenHeight int) [4][2]float64 {
	hw, hh := t.ScaleX/2, t.ScaleY/2
	center := utils.Vec2{X: t.X, Y: t.Y}
	local := [4]utils.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	var out [4][2]float64
	for i, p := range local {
		w := p.Rotate(t.Rotation).Add(center)
		out[i][0], out[i][1] = ToScreen(w.X, w.Y, screenWidth, screenHeight)
	}
	return out
}

// IsStatic reports whether id belongs to the pre-rendered background:
// tiles and anything beneath them.
func IsStatic(ecs *entity.ECS, id types.EntityID) bool {
	if _, ok := ecs.Tiles[id]; ok {
		return true
	}
	w, ok := ecs.World[id]
	return ok && w.Z < config.TileZ
}

// labelColor keeps a charge label readable on the ball it sits on.
func labelColor(ecs *entity.ECS, id types.EntityID, fallback color.RGBA) color.RGBA {
	charge, ok := ecs.Charges[id]
	if !ok {
		return fallback
	}
	ball, ok := ecs.Renderables[charge.Link]
	if !ok {
		return fallback
	}
	return pkgrender.ContrastText(ball.Color)
}

// BuildDrawList collects every resolved entity with a shape or a label,
// sorted back to front by world z. Ties break on entity id so the order
// is stable between frames. static selects the background or the rest.
func BuildDrawList(ecs *entity.ECS, static bool, screenWidth, screenHeight int, buf []Item) []Item {
	buf = buf[:0]
	for id, w := range ecs.World {
		if IsStatic(ecs, id) != static {
			continue
		}
		r, hasShape := ecs.Renderables[id]
		txt, hasText := ecs.Texts[id]
		if !hasShape && !hasText {
			continue
		}
		x, y := ToScreen(w.X, w.Y, screenWidth, screenHeight)
		item := Item{ID: id, Z: w.Z, X: x, Y: y}
		if hasShape {
			item.HasShape = true
			item.Shape = r.Shape
			item.Color = r.Color
			switch r.Shape {
			case component.ShapeRect:
				item.Corners = RectCorners(w, screenWidth, screenHeight)
			case component.ShapeCircle:
				item.Radius = math.Abs(w.ScaleX)
			}
		}
		if hasText && txt.Value != "" {
			item.Label = txt.Value
			item.FontSize = txt.FontSize
			item.TextColor = labelColor(ecs, id, txt.Color)
		}
		buf = append(buf, item)
	}
	sort.Slice(buf, func(i, j int) bool {
		if buf[i].Z != buf[j].Z {
			return buf[i].Z < buf[j].Z
		}
		return buf[i].ID < buf[j].ID
	})
	return buf
}
