// internal/participant/participant.go
package participant

import "fmt"

// Participant is one of the four fixed arena identities.
type Participant uint8

const (
	A Participant = iota
	B
	C
	D
)

// Count is the number of participants in every match.
const Count = 4

var all = [Count]Participant{A, B, C, D}

// All returns the participants in A..D order.
func All() [Count]Participant {
	return all
}

// Index returns the position of p in All.
func (p Participant) Index() int {
	if p > D {
		panic(fmt.Sprintf("participant: invalid value %d", uint8(p)))
	}
	return int(p)
}

func (p Participant) String() string {
	switch p {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	default:
		return fmt.Sprintf("Participant(%d)", uint8(p))
	}
}

// Map stores one value per participant.
type Map[T any] struct {
	values [Count]T
}

// NewMap builds a Map from the A, B, C and D values.
func NewMap[T any](a, b, c, d T) Map[T] {
	return Map[T]{values: [Count]T{a, b, c, d}}
}

func (m *Map[T]) Get(p Participant) T {
	return m.values[p.Index()]
}

func (m *Map[T]) Set(p Participant, v T) {
	m.values[p.Index()] = v
}

// Each visits the entries in A..D order.
func (m *Map[T]) Each(fn func(Participant, T)) {
	for i, v := range m.values {
		fn(Participant(i), v)
	}
}
