package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-turret-arena/internal/event"
	"go-turret-arena/internal/participant"
)

func TestAutoMultiplyFiresOnInterval(t *testing.T) {
	q := event.NewTriggerQueue()
	auto := NewAutoMultiplySystem(q, 1)

	auto.Update(0.5)
	assert.Zero(t, q.Len())
	auto.Update(0.5)
	assert.Equal(t, 1, q.Len())

	// A long frame catches up on every missed interval.
	auto.Update(2.25)
	got := q.Drain()
	assert.Len(t, got, 3)
	for _, e := range got {
		assert.Equal(t, event.TriggerEvent{Participant: participant.A, Type: event.Multiply}, e)
	}
}
