package physics

import "github.com/veylan/strafe/parameter"

// ShapeKind discriminates collision shape variants
type ShapeKind uint8

const (
	// ShapeCircle is the only kind with a registered collision routine
	ShapeCircle ShapeKind = iota
	// ShapeBox is declared for forward compatibility; no routine collides it
	ShapeBox
	shapeKindCount
)

func (k ShapeKind) String() string {
	names := [...]string{"circle", "box"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Shape is a closed tagged variant over collision geometries
// Only the fields matching Kind are meaningful
type Shape struct {
	Kind   ShapeKind
	Radius float64 // circle
	HalfW  float64 // box
	HalfH  float64 // box
}

// Circle returns a circle shape; non-positive radii fall back to the unit circle
func Circle(radius float64) Shape {
	if !(radius > 0) {
		radius = parameter.DefaultRadius
	}
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Box returns an axis-aligned box shape. Declared but inert: no collision
// routine is registered for it, so box pairs resolve to "no interaction"
func Box(width, height float64) Shape {
	return Shape{Kind: ShapeBox, HalfW: width * 0.5, HalfH: height * 0.5}
}

// collideFunc computes the contact for an overlapping pair, or ok=false
type collideFunc func(a, b *Body) (Contact, bool)

// collideTable dispatches narrow-phase tests by shape kind pair.
// A nil entry is a defined "no interaction", not a missing case
var collideTable [shapeKindCount][shapeKindCount]collideFunc

func init() {
	collideTable[ShapeCircle][ShapeCircle] = collideCircleCircle
}
