// internal/input/panel.go
package input

import (
	"fmt"

	"go-turret-arena/internal/event"
	"go-turret-arena/internal/participant"
)

// Binding maps one key to a trigger. Keys are named the way ebiten
// prints them ("Q", "Digit1", "ArrowUp").
type Binding struct {
	Key     string
	Trigger event.TriggerEvent
}

// DefaultBindings gives every participant a row of three keys:
// multiply, burst shot, charged shot.
func DefaultBindings() []Binding {
	rows := [participant.Count][3]string{
		{"Q", "W", "E"},
		{"R", "T", "Y"},
		{"U", "I", "O"},
		{"J", "K", "L"},
	}
	kinds := [3]event.TriggerType{event.Multiply, event.BurstShot, event.ChargedShot}

	var out []Binding
	for _, p := range participant.All() {
		for i, key := range rows[p.Index()] {
			out = append(out, Binding{Key: key, Trigger: event.TriggerEvent{Participant: p, Type: kinds[i]}})
		}
	}
	return out
}

// Panel turns pressed keys into trigger events on a queue.
type Panel struct {
	bindings []Binding
	queue    *event.TriggerQueue
}

// NewPanel rejects bindings that reuse a key.
func NewPanel(bindings []Binding, queue *event.TriggerQueue) (*Panel, error) {
	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		if b.Key == "" {
			return nil, fmt.Errorf("binding for %s %s has no key", b.Trigger.Participant, b.Trigger.Type)
		}
		if seen[b.Key] {
			return nil, fmt.Errorf("key %q bound twice", b.Key)
		}
		seen[b.Key] = true
	}
	return &Panel{bindings: bindings, queue: queue}, nil
}

// Poll pushes a trigger for every bound key justPressed reports, in
// binding order, and returns how many were pushed.
func (p *Panel) Poll(justPressed func(key string) bool) int {
	n := 0
	for _, b := range p.bindings {
		if justPressed(b.Key) {
			p.queue.Push(b.Trigger)
			n++
		}
	}
	return n
}
