// internal/participant/registry.go
package participant

import (
	"fmt"
	"image/color"

	"go-turret-arena/internal/types"
)

// Registry maps every participant to its resources: display color and
// name from configuration, plus the entity handles created at setup.
type Registry struct {
	Colors  Map[color.RGBA]
	Names   Map[string]
	turrets Map[types.EntityID]
	root    types.EntityID
}

// NewRegistry creates a registry with the given lookup tables and no entities.
func NewRegistry(colors [Count]color.RGBA, names [Count]string) *Registry {
	return &Registry{
		Colors: NewMap(colors[0], colors[1], colors[2], colors[3]),
		Names:  NewMap(names[0], names[1], names[2], names[3]),
	}
}

// SetTurret records the turret entity owned by p.
func (r *Registry) SetTurret(p Participant, id types.EntityID) {
	r.turrets.Set(p, id)
}

// Turret returns the turret entity of p. A participant without a turret
// means setup never ran, which the simulation cannot recover from.
func (r *Registry) Turret(p Participant) types.EntityID {
	id := r.turrets.Get(p)
	if id == 0 {
		panic(fmt.Sprintf("participant: no turret registered for %s", p))
	}
	return id
}

func (r *Registry) SetRoot(id types.EntityID) {
	r.root = id
}

// Root returns the battlefield root entity.
func (r *Registry) Root() types.EntityID {
	if r.root == 0 {
		panic("participant: battlefield root not set")
	}
	return r.root
}
