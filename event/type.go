package event

import "time"

// Type identifies a simulation event
type Type int

const (
	// TypeCollision carries one resolved contact
	// Producer: physics relay | Payload: CollisionPayload
	TypeCollision Type = iota

	// TypeSimReady signals the facade finished initialization
	// Producer: sim.Initialize | Payload: nil
	TypeSimReady

	// TypeSimStarted signals stepping began
	TypeSimStarted

	// TypeSimPaused signals stepping halted, state preserved
	TypeSimPaused

	// TypeSimResumed signals stepping continued with no time makeup
	TypeSimResumed

	// TypeSimStopped signals teardown: all bodies dropped
	TypeSimStopped

	// TypeBodySpawned signals a body joined the world
	// Payload: BodyPayload
	TypeBodySpawned

	// TypeBodyRemoved signals a body removal was requested
	// Payload: BodyPayload
	TypeBodyRemoved

	// TypeSpawnRequest asks the owning loop to create a body
	// Producer: input goroutine | Payload: SpawnRequestPayload
	TypeSpawnRequest

	// TypePauseToggle asks the owning loop to pause or resume
	TypePauseToggle

	// TypeClearRequest asks the owning loop to drop all bodies
	TypeClearRequest

	// TypeQuitRequest asks the owning loop to tear down and exit
	TypeQuitRequest

	typeCount
)

func (t Type) String() string {
	names := [...]string{
		"collision",
		"sim_ready",
		"sim_started",
		"sim_paused",
		"sim_resumed",
		"sim_stopped",
		"body_spawned",
		"body_removed",
		"spawn_request",
		"pause_toggle",
		"clear_request",
		"quit_request",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// Event is one simulation event with an optional typed payload
type Event struct {
	Type    Type
	Time    time.Time
	Payload any
}
