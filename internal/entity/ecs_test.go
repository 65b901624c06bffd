package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-turret-arena/internal/component"
	"go-turret-arena/internal/types"
)

func TestNewEntityIsSequential(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	assert.EqualValues(t, 1, a)
	assert.EqualValues(t, 2, b)
}

func TestSetParentReparents(t *testing.T) {
	ecs := NewECS()
	root, turret, ball := ecs.NewEntity(), ecs.NewEntity(), ecs.NewEntity()

	ecs.SetParent(ball, root)
	ecs.SetParent(ball, turret)

	assert.Empty(t, ecs.Children(root))
	assert.Equal(t, []types.EntityID{ball}, ecs.Children(turret))
	assert.Equal(t, turret, ecs.Parent(ball))
	assert.Zero(t, ecs.Parent(root))
}

func TestSetParentRejectsCycles(t *testing.T) {
	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	ecs.SetParent(b, a)

	assert.Panics(t, func() { ecs.SetParent(a, b) })
	assert.Panics(t, func() { ecs.SetParent(a, a) })
}

func TestResolveWorldTransforms(t *testing.T) {
	ecs := NewECS()
	root, turret, platform, head := ecs.NewEntity(), ecs.NewEntity(), ecs.NewEntity(), ecs.NewEntity()

	ecs.Transforms[root] = component.NewTransform(0, 0, 0)
	ecs.Transforms[turret] = component.NewTransform(350, 350, 20)
	ecs.Transforms[platform] = component.NewTransform(0, 0, -1)
	ecs.Transforms[platform].Rotation = math.Pi / 2
	ecs.Transforms[head] = &component.Transform{Y: 37.5, Z: -1, ScaleX: 2.5, ScaleY: 75}

	ecs.SetParent(turret, root)
	ecs.SetParent(platform, turret)
	ecs.SetParent(head, platform)

	ecs.ResolveWorldTransforms()
	require.Len(t, ecs.World, 4)

	w := ecs.World[head]
	assert.InDelta(t, 350-37.5, w.X, 1e-9)
	assert.InDelta(t, 350, w.Y, 1e-9)
	assert.InDelta(t, 18, w.Z, 1e-9)
	assert.InDelta(t, math.Pi/2, w.Rotation, 1e-12)
	assert.Equal(t, 2.5, w.ScaleX)
	assert.Equal(t, 75.0, w.ScaleY)

	assert.Equal(t, w, ecs.WorldTransform(head))
}

func TestChildScaleFollowsParent(t *testing.T) {
	ecs := NewECS()
	parent, child := ecs.NewEntity(), ecs.NewEntity()
	ecs.Transforms[parent] = &component.Transform{X: 10, ScaleX: 2, ScaleY: 3}
	ecs.Transforms[child] = &component.Transform{X: 1, Y: 1, ScaleX: 1, ScaleY: 1}
	ecs.SetParent(child, parent)

	w := ecs.WorldTransform(child)
	assert.InDelta(t, 12, w.X, 1e-12)
	assert.InDelta(t, 3, w.Y, 1e-12)
	assert.Equal(t, 2.0, w.ScaleX)
	assert.Equal(t, 3.0, w.ScaleY)
}

func TestChangedChargesDrainSortedAndOnce(t *testing.T) {
	ecs := NewECS()
	ecs.AddCharge(5, component.NewCharge(6))
	ecs.MarkChargeChanged(2)
	ecs.MarkChargeChanged(5)

	assert.Equal(t, []types.EntityID{2, 5}, ecs.DrainChangedCharges())
	assert.Nil(t, ecs.DrainChangedCharges())
}

func TestDespawnRemovesSubtree(t *testing.T) {
	ecs := NewECS()
	root, bullet, ball := ecs.NewEntity(), ecs.NewEntity(), ecs.NewEntity()
	for _, id := range []types.EntityID{root, bullet, ball} {
		ecs.Transforms[id] = component.NewTransform(0, 0, 0)
	}
	ecs.SetParent(bullet, root)
	ecs.SetParent(ball, bullet)
	ecs.AddCharge(bullet, component.NewCharge(ball))
	ecs.Bullets[bullet] = &component.Bullet{}

	ecs.Despawn(bullet)

	assert.False(t, ecs.Exists(bullet))
	assert.False(t, ecs.Exists(ball))
	assert.True(t, ecs.Exists(root))
	assert.Empty(t, ecs.Children(root))
	assert.NotContains(t, ecs.Charges, bullet)
	assert.Nil(t, ecs.DrainChangedCharges())
}

func TestWorldTransformPanicsWithoutTransform(t *testing.T) {
	ecs := NewECS()
	assert.Panics(t, func() { ecs.WorldTransform(99) })
}
