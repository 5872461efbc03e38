package physics

import (
	"math"

	"github.com/veylan/strafe/parameter"
	"github.com/veylan/strafe/vmath"
)

// BodyID is a stable handle for a body, assigned at creation and never
// reused while the body is live. Zero is never a valid handle
type BodyID uint64

// Descriptor specifies a body to create. Use DefaultDescriptor as the base
// and override fields; a malformed descriptor is repaired with safe defaults
// rather than rejected
type Descriptor struct {
	Position    vmath.Vec2
	Velocity    vmath.Vec2
	Mass        float64
	Restitution float64
	Friction    float64
	Shape       Shape
	Static      bool
}

// DefaultDescriptor returns the baseline body: unit mass, unit circle,
// restitution 0.9, friction 0.1, dynamic, at the origin
func DefaultDescriptor() Descriptor {
	return Descriptor{
		Mass:        parameter.DefaultMass,
		Restitution: parameter.DefaultRestitution,
		Friction:    parameter.DefaultFriction,
		Shape:       Circle(parameter.DefaultRadius),
	}
}

// Body is a simulated rigid body. Position, velocity and material fields are
// exported for direct read/write by gameplay code; the force accumulator is
// owned by the body and reachable only through ApplyForce
type Body struct {
	Position vmath.Vec2
	Velocity vmath.Vec2

	// Orientation state, integrated but not consumed by collision
	// resolution (no rotational response)
	Angle           float64
	AngularVelocity float64

	Restitution float64
	Friction    float64 // stored, not applied by the solver
	Shape       Shape

	acceleration vmath.Vec2 // force accumulator, reset each Integrate

	id      BodyID
	mass    float64
	invMass float64
	static  bool
}

// newBody repairs the descriptor per the configuration-error policy
// (substitute defaults, never fail) and builds the body
func newBody(id BodyID, d Descriptor) *Body {
	mass := d.Mass
	if !(mass > 0) || math.IsInf(mass, 0) {
		mass = parameter.DefaultMass
	}

	restitution := d.Restitution
	if math.IsNaN(restitution) || restitution < 0 || restitution > 1 {
		restitution = parameter.DefaultRestitution
	}

	friction := d.Friction
	if math.IsNaN(friction) || friction < 0 || friction > 1 {
		friction = parameter.DefaultFriction
	}

	shape := d.Shape
	if shape.Kind == ShapeCircle && !(shape.Radius > 0) {
		shape = Circle(parameter.DefaultRadius)
	}

	position := d.Position
	if !position.IsFinite() {
		position = vmath.Vec2{}
	}
	velocity := d.Velocity
	if !velocity.IsFinite() {
		velocity = vmath.Vec2{}
	}

	invMass := 1.0 / mass
	if d.Static {
		// Immovable obstacle: infinite effective mass, mass field retained
		invMass = 0
	}

	return &Body{
		Position:    position,
		Velocity:    velocity,
		Restitution: restitution,
		Friction:    friction,
		Shape:       shape,
		id:          id,
		mass:        mass,
		invMass:     invMass,
		static:      d.Static,
	}
}

// ID returns the body's stable handle
func (b *Body) ID() BodyID {
	return b.id
}

// Mass returns the configured mass. For static bodies the value is carried
// but ignored by the solver
func (b *Body) Mass() float64 {
	return b.mass
}

// InvMass returns 1/mass, or 0 for static bodies
func (b *Body) InvMass() float64 {
	return b.invMass
}

// Static reports whether the body is an immovable obstacle
func (b *Body) Static() bool {
	return b.static
}

// ApplyForce accumulates f scaled by inverse mass into the acceleration
// accumulator. No-op for static bodies
func (b *Body) ApplyForce(f vmath.Vec2) {
	if b.static {
		return
	}
	b.acceleration = b.acceleration.Add(f.Scale(b.invMass))
}

// Integrate advances the body by dt seconds using semi-implicit Euler:
// velocity first, then position from the updated velocity. The force
// accumulator is cleared afterwards. No-op for static bodies.
// dt must be non-negative; negative values are not validated
func (b *Body) Integrate(dt float64) {
	if b.static {
		return
	}
	b.Velocity = b.Velocity.Add(b.acceleration.Scale(dt))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.Angle += b.AngularVelocity * dt
	b.acceleration = vmath.Vec2{}
}
