// internal/component/render.go
package component

import "image/color"

// Shape selects the unit primitive a Renderable draws.
type Shape int

const (
	ShapeRect   Shape = iota // 1x1 square centered on the transform
	ShapeCircle              // circle of radius 1
)

// Renderable - a flat-colored primitive scaled by the world transform.
type Renderable struct {
	Color color.RGBA
	Shape Shape
}

// Text is a label drawn centered on its entity.
type Text struct {
	Value    string
	FontSize float64
	Color    color.RGBA
}
