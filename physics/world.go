package physics

import (
	"math"

	"github.com/veylan/strafe/parameter"
	"github.com/veylan/strafe/vmath"
)

// ContactHandler receives every resolved contact, synchronously, before
// Step returns. Handlers must not call Step (reentrant steps are dropped)
// and should route body removal through Remove, which defers it safely
type ContactHandler func(Contact)

// World owns the flat collection of bodies and advances them each frame:
// integrate everything, then test and resolve every pair in ascending
// insertion order. Counts are assumed small; there is no broad-phase
// pruning beyond the shape dispatch table
type World struct {
	bodies []*Body
	nextID BodyID

	handler ContactHandler

	// Structural mutations requested mid-step are deferred to the next
	// step's housekeeping so pair enumeration never iterates a slice
	// that is being spliced
	pendingAdd    []*Body
	pendingRemove []BodyID
	pendingClear  bool

	stepping bool
}

// NewWorld returns an empty world
func NewWorld() *World {
	return &World{nextID: 1}
}

// SetContactHandler installs the synchronous contact callback.
// Pass nil to silence notifications
func (w *World) SetContactHandler(fn ContactHandler) {
	w.handler = fn
}

// Add creates a body from the descriptor and returns it. The handle is
// assigned immediately; if a step is in progress the body joins the
// collection at the next step's housekeeping
func (w *World) Add(d Descriptor) *Body {
	b := newBody(w.nextID, d)
	w.nextID++
	if w.stepping {
		w.pendingAdd = append(w.pendingAdd, b)
	} else {
		w.bodies = append(w.bodies, b)
	}
	return b
}

// Remove schedules the body for removal at the next step boundary.
// Unknown or already-removed handles are a no-op
func (w *World) Remove(id BodyID) {
	w.pendingRemove = append(w.pendingRemove, id)
}

// Clear drops every body. Mid-step the drop is deferred to the next
// step's housekeeping
func (w *World) Clear() {
	if w.stepping {
		w.pendingClear = true
		return
	}
	w.bodies = nil
	w.pendingAdd = nil
	w.pendingRemove = nil
}

// Body returns the live body for a handle, or nil if it is unknown,
// removed, or still pending insertion
func (w *World) Body(id BodyID) *Body {
	for _, b := range w.bodies {
		if b.id == id {
			return b
		}
	}
	return nil
}

// Bodies returns a snapshot of the live collection in insertion order
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Len returns the number of live bodies
func (w *World) Len() int {
	return len(w.bodies)
}

// housekeep applies structural mutations deferred from the previous step
// or queued between steps
func (w *World) housekeep() {
	if w.pendingClear {
		w.pendingClear = false
		w.bodies = nil
		w.pendingAdd = nil
		w.pendingRemove = nil
		return
	}
	if len(w.pendingRemove) > 0 {
		for _, id := range w.pendingRemove {
			for i, b := range w.bodies {
				if b.id == id {
					w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
					break
				}
			}
		}
		w.pendingRemove = w.pendingRemove[:0]
	}
	if len(w.pendingAdd) > 0 {
		w.bodies = append(w.bodies, w.pendingAdd...)
		w.pendingAdd = w.pendingAdd[:0]
	}
}

// Step advances the simulation by dt seconds: housekeeping, integration of
// every body, then all-pairs detection and resolution in ascending index
// order (outer loop over the lower index). Resolution mutates positions and
// velocities in place, so later pairs in the same step observe the effects
// of earlier resolutions. Contacts are reported synchronously per pair.
//
// Step never fails: malformed bodies were repaired at creation and the
// degenerate numeric cases are defined branches. A reentrant call from a
// contact handler is dropped
func (w *World) Step(dt float64) {
	if w.stepping {
		return
	}
	w.stepping = true
	defer func() { w.stepping = false }()

	w.housekeep()

	for _, b := range w.bodies {
		b.Integrate(dt)
	}

	for i := 0; i < len(w.bodies); i++ {
		a := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			if a.static && b.static {
				continue
			}
			collide := collideTable[a.Shape.Kind][b.Shape.Kind]
			if collide == nil {
				continue
			}
			contact, ok := collide(a, b)
			if !ok {
				continue
			}
			resolve(contact)
			if w.handler != nil {
				w.handler(contact)
			}
		}
	}
}

// collideCircleCircle registers a contact when the circles strictly overlap,
// or when the centers exactly coincide (degenerate case with the (1,0)
// fallback normal, handled explicitly to avoid dividing by zero distance)
func collideCircleCircle(a, b *Body) (Contact, bool) {
	d := a.Position.Distance(b.Position)
	r := a.Shape.Radius + b.Shape.Radius
	if d >= r && d != 0 {
		return Contact{}, false
	}

	normal := vmath.V(1, 0)
	if d != 0 {
		normal = b.Position.Sub(a.Position).Scale(1 / d)
	}

	return Contact{A: a, B: b, Normal: normal, Penetration: r - d}, true
}

// resolve applies partial positional correction followed by an impulse
// along the contact normal. Static bodies have zero inverse mass and are
// never displaced or accelerated
func resolve(c Contact) {
	invSum := c.A.invMass + c.B.invMass
	if invSum == 0 {
		return
	}

	// Positional correction: remove a fraction of the overlap, split in
	// proportion to inverse mass so the heavier body moves less
	correction := parameter.CorrectionFactor * c.Penetration / invSum
	c.A.Position = c.A.Position.Sub(c.Normal.Scale(correction * c.A.invMass))
	c.B.Position = c.B.Position.Add(c.Normal.Scale(correction * c.B.invMass))

	// Separating pairs keep their velocities; the correction above still
	// applies while they overlap
	velAlongNormal := c.B.Velocity.Sub(c.A.Velocity).Dot(c.Normal)
	if velAlongNormal > 0 {
		return
	}

	// The less bouncy material dominates
	e := math.Min(c.A.Restitution, c.B.Restitution)
	j := -(1 + e) * velAlongNormal / invSum

	impulse := c.Normal.Scale(j)
	c.A.Velocity = c.A.Velocity.Sub(impulse.Scale(c.A.invMass))
	c.B.Velocity = c.B.Velocity.Add(impulse.Scale(c.B.invMass))
}
