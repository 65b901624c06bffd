// internal/component/charge.go
package component

import "go-turret-arena/internal/types"

// Charge is the power carried by a turret or a bullet.
// Value doubles and Level grows by one on each multiply, so
// Value == 2^(Level-1) always holds. Link is the charge ball whose
// size mirrors Level; it is a lookup, not ownership.
type Charge struct {
	Value float64
	Level float64
	Link  types.EntityID
}

// NewCharge returns an initial charge linked to ball.
func NewCharge(ball types.EntityID) *Charge {
	return &Charge{Value: 1, Level: 1, Link: ball}
}

func (c *Charge) Multiply() {
	c.Value *= 2
	c.Level++
}

// CopyTo returns a copy of c linked to another ball.
func (c *Charge) CopyTo(ball types.EntityID) *Charge {
	return &Charge{Value: c.Value, Level: c.Level, Link: ball}
}
