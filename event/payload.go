package event

import (
	"github.com/veylan/strafe/physics"
	"github.com/veylan/strafe/vmath"
)

// CollisionPayload carries one resolved contact, re-published by the
// facade in the order the world reported it
type CollisionPayload struct {
	Contact physics.Contact
}

// BodyPayload identifies a body for spawn/remove notifications
type BodyPayload struct {
	ID physics.BodyID
}

// SpawnRequestPayload carries the descriptor seed for an externally
// requested body spawn
type SpawnRequestPayload struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
}
