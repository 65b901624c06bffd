// internal/system/auto_multiply.go
package system

import (
	"go-turret-arena/internal/event"
	"go-turret-arena/internal/participant"
)

// AutoMultiplySystem is a development aid that keeps charging participant
// A on a fixed interval without any panel input.
type AutoMultiplySystem struct {
	queue    *event.TriggerQueue
	interval float64
	timer    float64
}

func NewAutoMultiplySystem(queue *event.TriggerQueue, interval float64) *AutoMultiplySystem {
	return &AutoMultiplySystem{queue: queue, interval: interval}
}

// Update pushes one Multiply for A each time the timer completes.
func (s *AutoMultiplySystem) Update(deltaTime float64) {
	s.timer += deltaTime
	for s.timer >= s.interval {
		s.timer -= s.interval
		s.queue.Push(event.TriggerEvent{Participant: participant.A, Type: event.Multiply})
	}
}
