package physics

import "github.com/veylan/strafe/vmath"

// Contact describes one overlapping pair detected during a step.
// It is produced once per pair per step and consumed synchronously by the
// contact handler; nothing retains it afterwards
type Contact struct {
	A, B *Body

	// Normal is the unit collision normal pointing from A to B.
	// Coincident centers fall back to (1, 0)
	Normal vmath.Vec2

	// Penetration is the overlap depth along the normal at detection time
	Penetration float64
}
