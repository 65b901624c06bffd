// internal/clock/stopwatch.go
package clock

import (
	"math"
	"time"
)

// Stopwatch is the shared simulation clock every turret aims from.
// Only the tick loop advances it.
type Stopwatch struct {
	elapsed time.Duration
}

// Tick advances the stopwatch by d. Negative durations are ignored.
func (s *Stopwatch) Tick(d time.Duration) {
	if d > 0 {
		s.elapsed += d
	}
}

// TickSeconds advances the stopwatch by a delta expressed in seconds.
func (s *Stopwatch) TickSeconds(dt float64) {
	s.Tick(time.Duration(dt * float64(time.Second)))
}

func (s *Stopwatch) ElapsedSecs() float64 {
	return s.elapsed.Seconds()
}

// Oscillation returns the turret sweep angle for the given elapsed time.
// The result ramps 0 -> pi/2 -> 0 and repeats every pi/rotationSpeed seconds.
func Oscillation(elapsedSecs, rotationSpeed float64) float64 {
	r := math.Mod(math.Mod(elapsedSecs, math.Pi)*rotationSpeed, math.Pi)
	return math.Pi/2 - math.Abs(r-math.Pi/2)
}

// Oscillation evaluates the sweep at the stopwatch's current time.
func (s *Stopwatch) Oscillation(rotationSpeed float64) float64 {
	return Oscillation(s.ElapsedSecs(), rotationSpeed)
}
