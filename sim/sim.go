// Package sim is the lifecycle adapter between the physics world and the
// surrounding application: it binds the world to an external frame clock,
// exposes body management, and re-publishes collision outcomes to
// subscribers
package sim

import (
	"sync/atomic"
	"time"

	"github.com/veylan/strafe/event"
	"github.com/veylan/strafe/parameter"
	"github.com/veylan/strafe/physics"
)

// Target is the external container the simulation binds to. In the
// sandbox this is the terminal screen; tests use a fixed-size fake
type Target interface {
	Size() (width, height int)
}

// Simulation owns one physics world and its lifecycle. All methods are
// intended for the single goroutine driving frames; cross-goroutine
// signals should go through an event.Queue drained by that goroutine
type Simulation struct {
	world  *physics.World
	clock  *Clock
	router *event.Router[*Simulation]
	target Target

	running     atomic.Bool
	initialized bool
}

// New returns an uninitialized simulation. Initialize must succeed before
// bodies can be added or frames stepped
func New() *Simulation {
	return &Simulation{
		router: event.NewRouter[*Simulation](nil),
	}
}

// Initialize binds the simulation to its container, creates the world and
// signals readiness. Returns MissingTargetError when the container is
// absent; in that case stepping never starts
func (s *Simulation) Initialize(target Target) error {
	if target == nil {
		return &MissingTargetError{Reason: "nil render container"}
	}

	s.target = target
	s.world = physics.NewWorld()
	s.clock = NewClock()
	s.clock.Pause() // no sim time accumulates until Start
	s.world.SetContactHandler(func(c physics.Contact) {
		s.publish(event.TypeCollision, event.CollisionPayload{Contact: c})
	})
	s.initialized = true

	s.publish(event.TypeSimReady, nil)
	return nil
}

// Initialized reports whether Initialize has succeeded
func (s *Simulation) Initialized() bool {
	return s.initialized
}

// Target returns the bound container, or nil before initialization
func (s *Simulation) Target() Target {
	return s.target
}

// Subscribe registers a handler for its declared event types. Delivery is
// synchronous and in registration order
func (s *Simulation) Subscribe(h event.Handler[*Simulation]) {
	s.router.Register(h)
}

// SubscribeCollisions registers a plain function for collision events only
func (s *Simulation) SubscribeCollisions(fn func(physics.Contact)) {
	s.router.Register(event.FuncHandler[*Simulation]{
		Types: []event.Type{event.TypeCollision},
		Fn: func(_ *Simulation, ev event.Event) {
			fn(ev.Payload.(event.CollisionPayload).Contact)
		},
	})
}

// Start begins stepping. No-op before initialization or while running
func (s *Simulation) Start() {
	if !s.initialized {
		return
	}
	if s.running.CompareAndSwap(false, true) {
		s.clock.Resume()
		s.publish(event.TypeSimStarted, nil)
	}
}

// Pause halts stepping and preserves state. Frame notifications received
// while paused are accepted but ignored; no time accumulates
func (s *Simulation) Pause() {
	if s.running.CompareAndSwap(true, false) {
		s.clock.Pause()
		s.publish(event.TypeSimPaused, nil)
	}
}

// Resume continues stepping from current state. The skipped span is not
// made up: there is no compensating catch-up step
func (s *Simulation) Resume() {
	if !s.initialized {
		return
	}
	if s.running.CompareAndSwap(false, true) {
		s.clock.Resume()
		s.publish(event.TypeSimResumed, nil)
	}
}

// Running reports whether frames are currently stepped
func (s *Simulation) Running() bool {
	return s.running.Load()
}

// Stop tears the simulation down: stepping halts, all bodies are dropped
// and the world is released. Initialize must be called again before reuse
func (s *Simulation) Stop() {
	s.running.Store(false)
	if s.world != nil {
		s.world.Clear()
	}
	if s.clock != nil {
		s.clock.Pause()
	}
	s.publish(event.TypeSimStopped, nil)
	s.world = nil
	s.target = nil
	s.initialized = false
}

// OnFrame routes one frame delta (seconds) to the world. Zero delta means
// the driver omitted it and the default frame interval is used; deltas
// beyond MaxFrameDelta are clamped so a stalled driver cannot teleport
// bodies. Ignored while not running
func (s *Simulation) OnFrame(delta float64) {
	if !s.running.Load() || s.world == nil {
		return
	}
	if delta == 0 {
		delta = parameter.DefaultFrameDelta
	}
	if delta > parameter.MaxFrameDelta {
		delta = parameter.MaxFrameDelta
	}
	s.world.Step(delta)
}

// AddBody creates a body from the descriptor and returns its stable
// handle. Returns 0 when the simulation is not initialized
func (s *Simulation) AddBody(d physics.Descriptor) physics.BodyID {
	if s.world == nil {
		return 0
	}
	b := s.world.Add(d)
	s.publish(event.TypeBodySpawned, event.BodyPayload{ID: b.ID()})
	return b.ID()
}

// RemoveBody schedules removal of the body at the next step boundary.
// Idempotent: unknown or already-removed handles are a no-op
func (s *Simulation) RemoveBody(id physics.BodyID) {
	if s.world == nil {
		return
	}
	s.world.Remove(id)
	s.publish(event.TypeBodyRemoved, event.BodyPayload{ID: id})
}

// Body returns the live body for a handle, or nil
func (s *Simulation) Body(id physics.BodyID) *physics.Body {
	if s.world == nil {
		return nil
	}
	return s.world.Body(id)
}

// Bodies returns a snapshot of the live bodies in insertion order
func (s *Simulation) Bodies() []*physics.Body {
	if s.world == nil {
		return nil
	}
	return s.world.Bodies()
}

// Clear drops every body while keeping the simulation initialized
func (s *Simulation) Clear() {
	if s.world == nil {
		return
	}
	s.world.Clear()
}

// Elapsed returns accumulated simulation time, excluding paused spans
func (s *Simulation) Elapsed() time.Duration {
	if s.clock == nil {
		return 0
	}
	return s.clock.Elapsed()
}

func (s *Simulation) publish(t event.Type, payload any) {
	s.router.Dispatch(s, event.Event{Type: t, Time: time.Now(), Payload: payload})
}
