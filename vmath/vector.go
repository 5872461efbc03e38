package vmath

import "math"

// Reflect returns velocity reflected off a surface with the given unit normal
// vel' = vel - 2 * dot(vel, normal) * normal
func Reflect(vel, normal Vec2) Vec2 {
	dot2 := 2 * vel.Dot(normal)
	return vel.Sub(normal.Scale(dot2))
}

// ClampMagnitude limits a vector to maxMag while preserving direction
// Returns the vector unchanged if its magnitude <= maxMag
func ClampMagnitude(v Vec2, maxMag float64) Vec2 {
	mag := v.Length()
	if mag <= maxMag || mag == 0 {
		return v
	}
	return v.Scale(maxMag / mag)
}

// Perpendicular returns the vector rotated 90° counter-clockwise
func Perpendicular(v Vec2) Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// FromAngle builds a vector from an angle (radians) and magnitude
func FromAngle(angle, magnitude float64) Vec2 {
	return Vec2{X: magnitude * math.Cos(angle), Y: magnitude * math.Sin(angle)}
}

// ReflectAxisX returns velocity reflected off a vertical wall (X axis boundary)
// Use for left/right arena edge collision
func ReflectAxisX(v Vec2) Vec2 {
	return Vec2{X: -v.X, Y: v.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall (Y axis boundary)
// Use for top/bottom arena edge collision
func ReflectAxisY(v Vec2) Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}
