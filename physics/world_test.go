package physics

import (
	"math"
	"testing"

	"github.com/veylan/strafe/vmath"
)

func circleAt(x, y, radius float64) Descriptor {
	d := DefaultDescriptor()
	d.Position = vmath.V(x, y)
	d.Shape = Circle(radius)
	return d
}

func TestBilliardSwap(t *testing.T) {
	// Perfectly elastic equal-mass head-on hit: A's velocity transfers to B
	w := NewWorld()

	da := circleAt(0, 0, 1)
	da.Velocity = vmath.V(1, 0)
	da.Restitution = 1
	a := w.Add(da)

	db := circleAt(2.5, 0, 1)
	db.Restitution = 1
	b := w.Add(db)

	var contacts []Contact
	w.SetContactHandler(func(c Contact) { contacts = append(contacts, c) })

	const dt = 0.25
	w.Step(dt) // A at 0.25, distance 2.25: no contact
	w.Step(dt) // A at 0.5, distance 2.0: strict inequality, still no contact
	if len(contacts) != 0 {
		t.Fatalf("premature contact at distance >= sum of radii")
	}

	w.Step(dt) // A at 0.75, distance 1.75: overlap
	if len(contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(contacts))
	}

	c := contacts[0]
	if c.A != a || c.B != b {
		t.Fatal("contact pair does not match insertion order")
	}
	if c.Normal != vmath.V(1, 0) {
		t.Fatalf("normal = %v, want (1,0)", c.Normal)
	}
	if math.Abs(c.Penetration-0.25) > 1e-12 {
		t.Fatalf("penetration = %f, want 0.25", c.Penetration)
	}

	if math.Abs(a.Velocity.X) > 1e-12 || math.Abs(a.Velocity.Y) > 1e-12 {
		t.Fatalf("A velocity = %v, want (0,0)", a.Velocity)
	}
	if math.Abs(b.Velocity.X-1) > 1e-12 || math.Abs(b.Velocity.Y) > 1e-12 {
		t.Fatalf("B velocity = %v, want (1,0)", b.Velocity)
	}

	// Partial positional correction: 0.2 * 0.25 overlap split evenly
	if math.Abs(a.Position.X-0.725) > 1e-12 {
		t.Fatalf("A position = %v, want x=0.725", a.Position)
	}
	if math.Abs(b.Position.X-2.525) > 1e-12 {
		t.Fatalf("B position = %v, want x=2.525", b.Position)
	}
}

func TestMomentumConservation(t *testing.T) {
	// Mass-weighted momentum over a dynamic pair is unchanged by resolution
	w := NewWorld()

	da := circleAt(0, 0, 1)
	da.Mass = 2
	da.Velocity = vmath.V(3, 1)
	da.Restitution = 0.5
	a := w.Add(da)

	db := circleAt(1.5, 0.2, 1)
	db.Mass = 3
	db.Velocity = vmath.V(-2, 0)
	db.Restitution = 0.5
	b := w.Add(db)

	w.Step(0.01)

	px := a.Velocity.X*2 + b.Velocity.X*3
	py := a.Velocity.Y*2 + b.Velocity.Y*3
	wantX := 3.0*2 + (-2.0)*3
	wantY := 1.0*2 + 0.0*3
	if math.Abs(px-wantX) > 1e-9 || math.Abs(py-wantY) > 1e-9 {
		t.Fatalf("momentum after = (%f,%f), want (%f,%f)", px, py, wantX, wantY)
	}
}

func TestCorrectionNeverIncreasesOverlap(t *testing.T) {
	w := NewWorld()
	a := w.Add(circleAt(0, 0, 1))
	b := w.Add(circleAt(1.2, 0, 1))

	before := a.Position.Distance(b.Position)
	w.Step(0) // no integration motion, resolution only
	after := a.Position.Distance(b.Position)

	if after < before {
		t.Fatalf("correction deepened overlap: %f -> %f", before, after)
	}
	// 0.2 of the 0.8 overlap removed
	if math.Abs(after-(before+0.2*0.8)) > 1e-12 {
		t.Fatalf("separation after correction = %f, want %f", after, before+0.16)
	}
}

func TestSeparatingPairKeepsVelocity(t *testing.T) {
	// Overlapping but already separating: correction applies, impulse does not
	w := NewWorld()

	da := circleAt(0, 0, 1)
	a := w.Add(da)

	db := circleAt(1.5, 0, 1)
	db.Velocity = vmath.V(4, 0)
	b := w.Add(db)

	posBeforeA := a.Position

	w.Step(0)

	if !a.Velocity.IsZero() {
		t.Fatalf("A velocity = %v, want unchanged zero", a.Velocity)
	}
	if b.Velocity != vmath.V(4, 0) {
		t.Fatalf("B velocity = %v, want unchanged (4,0)", b.Velocity)
	}
	if a.Position == posBeforeA {
		t.Fatal("positional correction skipped for separating overlap")
	}
}

func TestCoincidentCenters(t *testing.T) {
	w := NewWorld()
	a := w.Add(circleAt(1, 1, 1))
	b := w.Add(circleAt(1, 1, 1))

	var got Contact
	events := 0
	w.SetContactHandler(func(c Contact) { got = c; events++ })

	w.Step(0)

	if events != 1 {
		t.Fatalf("events = %d, want 1", events)
	}
	if got.Normal != vmath.V(1, 0) {
		t.Fatalf("degenerate normal = %v, want fallback (1,0)", got.Normal)
	}
	if got.Penetration != 2 {
		t.Fatalf("penetration = %f, want 2 (sum of radii)", got.Penetration)
	}
	for _, body := range []*Body{a, b} {
		if !body.Position.IsFinite() || !body.Velocity.IsFinite() {
			t.Fatalf("degenerate resolution produced non-finite state: %+v", body)
		}
	}
	// Pushed apart along the fallback normal
	if !(a.Position.X < 1 && b.Position.X > 1) {
		t.Fatalf("no separation along fallback normal: a=%v b=%v", a.Position, b.Position)
	}
}

func TestStaticUnmovedByCollision(t *testing.T) {
	w := NewWorld()

	dw := circleAt(2, 0, 1)
	dw.Static = true
	dw.Restitution = 1
	wall := w.Add(dw)

	db := circleAt(0.6, 0, 1)
	db.Velocity = vmath.V(2, 0)
	db.Restitution = 1
	ball := w.Add(db)

	w.Step(0.1) // ball reaches 0.8, distance 1.2 < 2

	if wall.Position != vmath.V(2, 0) || !wall.Velocity.IsZero() {
		t.Fatalf("static body moved: pos=%v vel=%v", wall.Position, wall.Velocity)
	}
	// Elastic bounce off an immovable obstacle reverses the ball
	if math.Abs(ball.Velocity.X+2) > 1e-12 {
		t.Fatalf("ball velocity = %v, want (-2,0)", ball.Velocity)
	}
}

func TestStaticPairSkipped(t *testing.T) {
	w := NewWorld()
	da := circleAt(0, 0, 1)
	da.Static = true
	db := circleAt(0.5, 0, 1)
	db.Static = true
	w.Add(da)
	w.Add(db)

	events := 0
	w.SetContactHandler(func(Contact) { events++ })
	w.Step(0.1)

	if events != 0 {
		t.Fatalf("static-static pair produced %d events, want 0", events)
	}
}

func TestUnsupportedShapePairSkipped(t *testing.T) {
	w := NewWorld()
	a := w.Add(circleAt(0, 0, 1))

	db := DefaultDescriptor()
	db.Position = vmath.V(0.5, 0)
	db.Shape = Box(2, 2)
	b := w.Add(db)

	events := 0
	w.SetContactHandler(func(Contact) { events++ })
	w.Step(0.1)

	if events != 0 {
		t.Fatalf("circle-box pair produced %d events, want 0", events)
	}
	if !a.Velocity.IsZero() || !b.Velocity.IsZero() {
		t.Fatal("unsupported pair altered velocities")
	}
}

func TestPairEnumerationOrder(t *testing.T) {
	// Three mutually overlapping bodies: contacts arrive as (0,1), (0,2), (1,2)
	w := NewWorld()
	a := w.Add(circleAt(0, 0, 1))
	b := w.Add(circleAt(0.5, 0, 1))
	c := w.Add(circleAt(1.0, 0, 1))

	var order [][2]BodyID
	w.SetContactHandler(func(ct Contact) {
		order = append(order, [2]BodyID{ct.A.ID(), ct.B.ID()})
	})

	w.Step(0)

	want := [][2]BodyID{{a.ID(), b.ID()}, {a.ID(), c.ID()}, {b.ID(), c.ID()}}
	if len(order) != len(want) {
		t.Fatalf("contacts = %d, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("contact %d = %v, want %v", i, order[i], want[i])
		}
	}
}

func TestRemovalDeferredToStepBoundary(t *testing.T) {
	w := NewWorld()
	a := w.Add(circleAt(0, 0, 1))
	w.Add(circleAt(0.5, 0, 1))

	// Removal requested mid-step from the contact handler
	w.SetContactHandler(func(c Contact) {
		w.Remove(c.B.ID())
	})

	w.Step(0)
	if w.Len() != 2 {
		t.Fatalf("len after removing step = %d, removal must wait for housekeeping", w.Len())
	}

	w.SetContactHandler(nil)
	w.Step(0)
	if w.Len() != 1 {
		t.Fatalf("len after housekeeping = %d, want 1", w.Len())
	}
	if w.Body(a.ID()) == nil {
		t.Fatal("wrong body removed")
	}
}

func TestRemoveUnknownIsNoOp(t *testing.T) {
	w := NewWorld()
	w.Add(circleAt(0, 0, 1))

	w.Remove(999)
	w.Remove(999)
	w.Step(0.1)

	if w.Len() != 1 {
		t.Fatalf("len = %d, want 1", w.Len())
	}
}

func TestAddDuringStepDeferred(t *testing.T) {
	w := NewWorld()
	w.Add(circleAt(0, 0, 1))
	w.Add(circleAt(0.5, 0, 1))

	var spawned *Body
	w.SetContactHandler(func(Contact) {
		if spawned == nil {
			spawned = w.Add(circleAt(10, 10, 1))
		}
	})

	w.Step(0)
	if w.Len() != 2 {
		t.Fatalf("len during deferral = %d, want 2", w.Len())
	}
	if spawned.ID() == 0 {
		t.Fatal("deferred add must still assign a handle immediately")
	}

	w.Step(0)
	if w.Len() != 3 {
		t.Fatalf("len after housekeeping = %d, want 3", w.Len())
	}
}

func TestReentrantStepDropped(t *testing.T) {
	w := NewWorld()
	a := w.Add(circleAt(0, 0, 1))
	a.Velocity = vmath.V(1, 0)
	w.Add(circleAt(1.5, 0, 1))

	events := 0
	w.SetContactHandler(func(Contact) {
		events++
		w.Step(1) // must be ignored, not recurse
	})

	w.Step(0)

	if events != 1 {
		t.Fatalf("events = %d, reentrant step must not re-run the pair scan", events)
	}
}

func TestClearDuringStepDeferred(t *testing.T) {
	w := NewWorld()
	w.Add(circleAt(0, 0, 1))
	w.Add(circleAt(0.5, 0, 1))

	w.SetContactHandler(func(Contact) { w.Clear() })
	w.Step(0)

	if w.Len() != 2 {
		t.Fatalf("len = %d, clear must wait for housekeeping", w.Len())
	}
	w.Step(0)
	if w.Len() != 0 {
		t.Fatalf("len after housekeeping = %d, want 0", w.Len())
	}
}

func TestHandleLookup(t *testing.T) {
	w := NewWorld()
	a := w.Add(circleAt(1, 2, 1))
	if got := w.Body(a.ID()); got != a {
		t.Fatal("Body lookup by handle failed")
	}
	if got := w.Body(12345); got != nil {
		t.Fatal("unknown handle must return nil")
	}
}

func TestBodiesSnapshotInsertionOrder(t *testing.T) {
	w := NewWorld()
	a := w.Add(circleAt(0, 0, 1))
	b := w.Add(circleAt(5, 0, 1))
	c := w.Add(circleAt(10, 0, 1))

	got := w.Bodies()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatal("snapshot does not preserve insertion order")
	}

	// Snapshot is detached from the live collection
	got[0] = nil
	if w.Body(a.ID()) != a {
		t.Fatal("mutating the snapshot affected the world")
	}
}
