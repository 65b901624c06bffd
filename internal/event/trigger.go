// internal/event/trigger.go
package event

import (
	"fmt"

	"go-turret-arena/internal/participant"
)

// TriggerType is the action an input panel requests from a turret.
type TriggerType int

const (
	Multiply TriggerType = iota
	BurstShot
	ChargedShot
)

func (t TriggerType) String() string {
	switch t {
	case Multiply:
		return "Multiply"
	case BurstShot:
		return "BurstShot"
	case ChargedShot:
		return "ChargedShot"
	default:
		return fmt.Sprintf("TriggerType(%d)", int(t))
	}
}

// TriggerEvent is one discrete input for a participant's turret.
type TriggerEvent struct {
	Participant participant.Participant
	Type        TriggerType
}

// TriggerQueue buffers trigger events between ticks in arrival order.
type TriggerQueue struct {
	pending []TriggerEvent
}

func NewTriggerQueue() *TriggerQueue {
	return &TriggerQueue{}
}

func (q *TriggerQueue) Push(e TriggerEvent) {
	q.pending = append(q.pending, e)
}

func (q *TriggerQueue) Len() int {
	return len(q.pending)
}

// Drain returns every pending event in FIFO order and empties the queue.
func (q *TriggerQueue) Drain() []TriggerEvent {
	out := q.pending
	q.pending = nil
	return out
}
