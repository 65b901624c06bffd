// internal/system/charge_sync.go
package system

import (
	"fmt"
	"strconv"

	"go-turret-arena/internal/entity"
)

// ChargeRadius is the ball radius for a charge level.
func ChargeRadius(level, radiusFactor float64) float64 {
	return level * radiusFactor
}

// ChargeLabel formats a charge value as a plain decimal ("1", "1024").
// Values past 2^53 print the shortest digits that round-trip to the same
// float64 and pad the rest with zeros, so 2^70 reads
// "1180591620717411300000" rather than its exact integer.
func ChargeLabel(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// ChargeFontSize picks the largest font size at which digitCount glyphs of
// width fontSize*aspect still fit inside diameter.
func ChargeFontSize(diameter float64, digitCount int, aspect float64) float64 {
	digits := float64(digitCount)
	fullWidth := diameter * aspect * digits
	if diameter < fullWidth {
		return diameter / digits / aspect
	}
	return diameter
}

// ChargeVisuals are the values derived from a charge.
type ChargeVisuals struct {
	Radius   float64
	Label    string
	FontSize float64
}

// ComputeChargeVisuals derives radius, label and font size from a charge.
func ComputeChargeVisuals(value, level, radiusFactor, aspect float64) ChargeVisuals {
	radius := ChargeRadius(level, radiusFactor)
	label := ChargeLabel(value)
	return ChargeVisuals{
		Radius:   radius,
		Label:    label,
		FontSize: ChargeFontSize(radius*2, len(label), aspect),
	}
}

// ChargeSyncSystem recomputes ball scale, collider scale and label for
// every charge flagged since the last run.
type ChargeSyncSystem struct {
	ecs          *entity.ECS
	world        PhysicsWorld
	radiusFactor float64
	aspect       float64
}

func NewChargeSyncSystem(ecs *entity.ECS, world PhysicsWorld, radiusFactor, aspect float64) *ChargeSyncSystem {
	return &ChargeSyncSystem{ecs: ecs, world: world, radiusFactor: radiusFactor, aspect: aspect}
}

func (s *ChargeSyncSystem) Update() {
	for _, id := range s.ecs.DrainChangedCharges() {
		charge, ok := s.ecs.Charges[id]
		if !ok {
			panic(fmt.Sprintf("charge sync: entity %d flagged without a charge", id))
		}
		v := ComputeChargeVisuals(charge.Value, charge.Level, s.radiusFactor, s.aspect)

		ball, ok := s.ecs.Transforms[charge.Link]
		if !ok {
			panic(fmt.Sprintf("charge sync: ball %d linked from %d no longer exists", charge.Link, id))
		}
		ball.ScaleX = v.Radius
		ball.ScaleY = v.Radius

		if collider, ok := s.ecs.Colliders[id]; ok {
			collider.Scale = v.Radius
			s.world.SetRadius(id, v.Radius)
		}
		if text, ok := s.ecs.Texts[id]; ok {
			text.Value = v.Label
			text.FontSize = v.FontSize
		}
	}
}
