// internal/entity/ecs.go
package entity

import (
	"fmt"
	"math"
	"slices"

	"go-turret-arena/internal/component"
	"go-turret-arena/internal/participant"
	"go-turret-arena/internal/types"
)

// ECS holds every entity's components in side tables keyed by EntityID.
type ECS struct {
	NextID types.EntityID

	Names       map[types.EntityID]component.Name
	Transforms  map[types.EntityID]*component.Transform
	Renderables map[types.EntityID]*component.Renderable
	Texts       map[types.EntityID]*component.Text
	Owners      map[types.EntityID]participant.Participant
	Tiles       map[types.EntityID]*component.Tile
	Charges     map[types.EntityID]*component.Charge
	Turrets     map[types.EntityID]*component.Turret
	Platforms   map[types.EntityID]*component.TurretPlatform
	Heads       map[types.EntityID]*component.TurretHead
	Bullets     map[types.EntityID]*component.Bullet
	Balls       map[types.EntityID]*component.ChargeBall
	Colliders   map[types.EntityID]*component.Collider
	RigidBodies map[types.EntityID]*component.RigidBody

	// World is the resolved world-space transform cache, rebuilt by
	// ResolveWorldTransforms.
	World map[types.EntityID]component.Transform

	parents  map[types.EntityID]types.EntityID
	children map[types.EntityID][]types.EntityID

	changedCharges map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		NextID:         1,
		Names:          make(map[types.EntityID]component.Name),
		Transforms:     make(map[types.EntityID]*component.Transform),
		Renderables:    make(map[types.EntityID]*component.Renderable),
		Texts:          make(map[types.EntityID]*component.Text),
		Owners:         make(map[types.EntityID]participant.Participant),
		Tiles:          make(map[types.EntityID]*component.Tile),
		Charges:        make(map[types.EntityID]*component.Charge),
		Turrets:        make(map[types.EntityID]*component.Turret),
		Platforms:      make(map[types.EntityID]*component.TurretPlatform),
		Heads:          make(map[types.EntityID]*component.TurretHead),
		Bullets:        make(map[types.EntityID]*component.Bullet),
		Balls:          make(map[types.EntityID]*component.ChargeBall),
		Colliders:      make(map[types.EntityID]*component.Collider),
		RigidBodies:    make(map[types.EntityID]*component.RigidBody),
		World:          make(map[types.EntityID]component.Transform),
		parents:        make(map[types.EntityID]types.EntityID),
		children:       make(map[types.EntityID][]types.EntityID),
		changedCharges: make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Exists reports whether id still has a transform, which every spawned
// entity gets.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Transforms[id]
	return ok
}

// SetParent attaches child under parent, detaching it from any previous parent.
func (ecs *ECS) SetParent(child, parent types.EntityID) {
	if child == parent {
		panic(fmt.Sprintf("entity: %d cannot be its own parent", child))
	}
	for p := parent; p != 0; p = ecs.parents[p] {
		if p == child {
			panic(fmt.Sprintf("entity: parenting %d under %d creates a cycle", child, parent))
		}
	}
	ecs.detach(child)
	ecs.parents[child] = parent
	ecs.children[parent] = append(ecs.children[parent], child)
}

// Parent returns the parent of id, or 0 for roots.
func (ecs *ECS) Parent(id types.EntityID) types.EntityID {
	return ecs.parents[id]
}

// Children returns a copy of id's children in insertion order.
func (ecs *ECS) Children(id types.EntityID) []types.EntityID {
	return slices.Clone(ecs.children[id])
}

func (ecs *ECS) detach(child types.EntityID) {
	old, ok := ecs.parents[child]
	if !ok {
		return
	}
	siblings := ecs.children[old]
	if i := slices.Index(siblings, child); i >= 0 {
		ecs.children[old] = slices.Delete(siblings, i, i+1)
	}
	delete(ecs.parents, child)
}

// AddCharge attaches a charge to id and marks it changed so derived
// visuals are computed on the next sync.
func (ecs *ECS) AddCharge(id types.EntityID, c *component.Charge) {
	ecs.Charges[id] = c
	ecs.MarkChargeChanged(id)
}

// MarkChargeChanged flags id's charge for the visual sync step.
func (ecs *ECS) MarkChargeChanged(id types.EntityID) {
	ecs.changedCharges[id] = struct{}{}
}

// DrainChangedCharges returns the flagged entities in ascending id order
// and clears the flags.
func (ecs *ECS) DrainChangedCharges() []types.EntityID {
	if len(ecs.changedCharges) == 0 {
		return nil
	}
	ids := make([]types.EntityID, 0, len(ecs.changedCharges))
	for id := range ecs.changedCharges {
		ids = append(ids, id)
	}
	clear(ecs.changedCharges)
	slices.Sort(ids)
	return ids
}

// Despawn removes id and all of its descendants. The simulation core never
// calls it for bullets; it exists for collaborators that own their removal.
func (ecs *ECS) Despawn(id types.EntityID) {
	for _, child := range ecs.Children(id) {
		ecs.Despawn(child)
	}
	ecs.detach(id)
	delete(ecs.children, id)
	delete(ecs.Names, id)
	delete(ecs.Transforms, id)
	delete(ecs.Renderables, id)
	delete(ecs.Texts, id)
	delete(ecs.Owners, id)
	delete(ecs.Tiles, id)
	delete(ecs.Charges, id)
	delete(ecs.Turrets, id)
	delete(ecs.Platforms, id)
	delete(ecs.Heads, id)
	delete(ecs.Bullets, id)
	delete(ecs.Balls, id)
	delete(ecs.Colliders, id)
	delete(ecs.RigidBodies, id)
	delete(ecs.World, id)
	delete(ecs.changedCharges, id)
}

// ResolveWorldTransforms rebuilds the world cache top-down from every root.
func (ecs *ECS) ResolveWorldTransforms() {
	clear(ecs.World)
	for id, local := range ecs.Transforms {
		if _, hasParent := ecs.parents[id]; hasParent {
			continue
		}
		ecs.resolve(id, *local)
	}
}

func (ecs *ECS) resolve(id types.EntityID, world component.Transform) {
	ecs.World[id] = world
	for _, child := range ecs.children[id] {
		local, ok := ecs.Transforms[child]
		if !ok {
			continue
		}
		ecs.resolve(child, Compose(world, *local))
	}
}

// WorldTransform resolves id's world transform by walking up the tree.
// Use it between full resolutions, e.g. right after spawning.
func (ecs *ECS) WorldTransform(id types.EntityID) component.Transform {
	local, ok := ecs.Transforms[id]
	if !ok {
		panic(fmt.Sprintf("entity: %d has no transform", id))
	}
	parent, hasParent := ecs.parents[id]
	if !hasParent {
		return *local
	}
	return Compose(ecs.WorldTransform(parent), *local)
}

// Compose applies local on top of parent: scale, then rotate, then translate.
func Compose(parent, local component.Transform) component.Transform {
	lx := local.X * parent.ScaleX
	ly := local.Y * parent.ScaleY
	s, c := math.Sincos(parent.Rotation)
	return component.Transform{
		X:        parent.X + lx*c - ly*s,
		Y:        parent.Y + lx*s + ly*c,
		Z:        parent.Z + local.Z,
		Rotation: parent.Rotation + local.Rotation,
		ScaleX:   parent.ScaleX * local.ScaleX,
		ScaleY:   parent.ScaleY * local.ScaleY,
	}
}
