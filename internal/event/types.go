// internal/event/types.go
package event

import (
	"go-turret-arena/internal/participant"
	"go-turret-arena/internal/types"
)

const (
	ChargeMultiplied      EventType = "ChargeMultiplied"      // turret charge doubled
	BulletFired           EventType = "BulletFired"           // a charged shot spawned a bullet
	ParticipantEliminated EventType = "ParticipantEliminated" // a turret was hit by an opponent
	GameOver              EventType = "GameOver"              // at most one participant left
)

// ChargeMultipliedData is the payload of ChargeMultiplied.
type ChargeMultipliedData struct {
	Participant participant.Participant
	Turret      types.EntityID
	Value       float64
	Level       float64
}

// BulletFiredData is the payload of BulletFired.
type BulletFiredData struct {
	Participant participant.Participant
	Bullet      types.EntityID
	Angle       float64
	Mass        float64
}

// EliminationData is the payload of ParticipantEliminated.
type EliminationData struct {
	Participant participant.Participant
	By          participant.Participant
	Bullet      types.EntityID
}

// GameOverData is the payload of GameOver. Winner is only meaningful when HasWinner is set.
type GameOverData struct {
	Winner    participant.Participant
	HasWinner bool
}
