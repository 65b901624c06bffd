// internal/physics/world.go
package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"go-turret-arena/internal/types"
	"go-turret-arena/internal/utils"
)

// Kind tags shapes so collision handlers only see the pairs they care about.
type Kind cp.CollisionType

const (
	KindTile Kind = iota + 1
	KindTurret
	KindBullet
)

// BallSpec is a request to spawn a dynamic circular body.
type BallSpec struct {
	Position     utils.Vec2
	Radius       float64
	Mass         float64
	Restitution  float64
	LockRotation bool
	Impulse      utils.Vec2
}

// Contact is a bullet touching another tagged shape.
type Contact struct {
	Bullet types.EntityID
	Other  types.EntityID
	Kind   Kind
}

type sensor struct {
	shape  *cp.Shape
	center utils.Vec2
	radius float64 // zero for boxes
	kind   Kind
}

type ball struct {
	body        *cp.Body
	shape       *cp.Shape
	radius      float64
	restitution float64
}

// World wraps a Chipmunk space with zero gravity. Entity ids travel on the
// shapes' UserData.
type World struct {
	space    *cp.Space
	balls    map[types.EntityID]*ball
	sensors  map[types.EntityID]*sensor
	contacts []Contact
}

func NewWorld() *World {
	w := &World{
		space:   cp.NewSpace(),
		balls:   make(map[types.EntityID]*ball),
		sensors: make(map[types.EntityID]*sensor),
	}
	w.space.SetGravity(cp.Vector{})
	for _, other := range []Kind{KindTurret, KindTile} {
		handler := w.space.NewCollisionHandler(cp.CollisionType(KindBullet), cp.CollisionType(other))
		handler.BeginFunc = w.onBegin
	}
	return w
}

func (w *World) onBegin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	bullet, okA := a.UserData.(types.EntityID)
	other, okB := b.UserData.(types.EntityID)
	if !okA || !okB {
		return true
	}
	if _, isBall := w.balls[bullet]; !isBall {
		bullet, other = other, bullet
	}
	if s, ok := w.sensors[other]; ok {
		w.contacts = append(w.contacts, Contact{Bullet: bullet, Other: other, Kind: s.kind})
	}
	return true
}

// AddSensorBox registers a static axis-aligned sensor of size w x h centered at center.
func (w *World) AddSensorBox(id types.EntityID, center utils.Vec2, width, height float64, kind Kind) {
	bb := cp.BB{
		L: center.X - width/2,
		B: center.Y - height/2,
		R: center.X + width/2,
		T: center.Y + height/2,
	}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	w.addSensor(id, &sensor{shape: shape, center: center, kind: kind})
}

// AddSensorCircle registers a static circular sensor.
func (w *World) AddSensorCircle(id types.EntityID, center utils.Vec2, radius float64, kind Kind) {
	shape := cp.NewCircle(w.space.StaticBody, radius, cp.Vector{X: center.X, Y: center.Y})
	w.addSensor(id, &sensor{shape: shape, center: center, radius: radius, kind: kind})
}

func (w *World) addSensor(id types.EntityID, s *sensor) {
	if _, exists := w.sensors[id]; exists {
		panic(fmt.Sprintf("physics: sensor %d already registered", id))
	}
	s.shape.SetSensor(true)
	s.shape.SetCollisionType(cp.CollisionType(s.kind))
	s.shape.UserData = id
	w.space.AddShape(s.shape)
	w.sensors[id] = s
}

// AddBall spawns a dynamic ball and applies its initial impulse.
func (w *World) AddBall(id types.EntityID, spec BallSpec) {
	if _, exists := w.balls[id]; exists {
		panic(fmt.Sprintf("physics: body %d already registered", id))
	}
	moment := cp.MomentForCircle(spec.Mass, 0, spec.Radius, cp.Vector{})
	if spec.LockRotation {
		moment = math.Inf(1)
	}
	body := w.space.AddBody(cp.NewBody(spec.Mass, moment))
	body.SetPosition(cp.Vector{X: spec.Position.X, Y: spec.Position.Y})

	b := &ball{body: body, restitution: spec.Restitution}
	w.attachBallShape(id, b, spec.Radius)
	w.balls[id] = b

	body.ApplyImpulseAtLocalPoint(cp.Vector{X: spec.Impulse.X, Y: spec.Impulse.Y}, cp.Vector{})
}

func (w *World) attachBallShape(id types.EntityID, b *ball, radius float64) {
	shape := cp.NewCircle(b.body, radius, cp.Vector{})
	shape.SetElasticity(b.restitution)
	shape.SetCollisionType(cp.CollisionType(KindBullet))
	shape.UserData = id
	b.shape = w.space.AddShape(shape)
	b.radius = radius
}

// SetRadius resizes a ball or a circular sensor. Shapes are rebuilt since
// Chipmunk circles keep their radius once attached.
func (w *World) SetRadius(id types.EntityID, radius float64) {
	if b, ok := w.balls[id]; ok {
		w.space.RemoveShape(b.shape)
		w.attachBallShape(id, b, radius)
		return
	}
	s, ok := w.sensors[id]
	if !ok || s.radius == 0 {
		panic(fmt.Sprintf("physics: no circle shape for entity %d", id))
	}
	w.space.RemoveShape(s.shape)
	delete(w.sensors, id)
	w.AddSensorCircle(id, s.center, radius, s.kind)
}

// Radius returns the current collision radius of a ball or circular sensor.
func (w *World) Radius(id types.EntityID) (float64, bool) {
	if b, ok := w.balls[id]; ok {
		return b.radius, true
	}
	if s, ok := w.sensors[id]; ok && s.radius > 0 {
		return s.radius, true
	}
	return 0, false
}

// Remove drops a body or sensor from the world.
func (w *World) Remove(id types.EntityID) {
	if b, ok := w.balls[id]; ok {
		w.space.RemoveShape(b.shape)
		w.space.RemoveBody(b.body)
		delete(w.balls, id)
	}
	if s, ok := w.sensors[id]; ok {
		w.space.RemoveShape(s.shape)
		delete(w.sensors, id)
	}
}

func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// Position returns the center of a dynamic body.
func (w *World) Position(id types.EntityID) (utils.Vec2, bool) {
	b, ok := w.balls[id]
	if !ok {
		return utils.Vec2{}, false
	}
	p := b.body.Position()
	return utils.Vec2{X: p.X, Y: p.Y}, true
}

// Velocity returns the linear velocity of a dynamic body.
func (w *World) Velocity(id types.EntityID) (utils.Vec2, bool) {
	b, ok := w.balls[id]
	if !ok {
		return utils.Vec2{}, false
	}
	v := b.body.Velocity()
	return utils.Vec2{X: v.X, Y: v.Y}, true
}

// Mass returns the mass of a dynamic body.
func (w *World) Mass(id types.EntityID) (float64, bool) {
	b, ok := w.balls[id]
	if !ok {
		return 0, false
	}
	return b.body.Mass(), true
}

// DrainContacts returns the contacts begun since the previous call.
func (w *World) DrainContacts() []Contact {
	out := w.contacts
	w.contacts = nil
	return out
}
