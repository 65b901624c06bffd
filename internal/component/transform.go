// internal/component/transform.go
package component

// Transform is a local transform relative to the parent entity.
// Scale multiplies the unit size of whatever the entity renders.
type Transform struct {
	X, Y, Z  float64
	Rotation float64 // radians, CCW
	ScaleX   float64
	ScaleY   float64
}

// NewTransform returns a transform at (x, y, z) with unit scale.
func NewTransform(x, y, z float64) *Transform {
	return &Transform{X: x, Y: y, Z: z, ScaleX: 1, ScaleY: 1}
}

// Name is a debug label for an entity.
type Name string
