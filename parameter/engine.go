package parameter

import "time"

// Frame Loop & Engine Timing
const (
	// FrameUpdateInterval is the target frame interval for the sandbox loop (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFrameDelta is used when the frame driver omits the delta (seconds)
	DefaultFrameDelta = 1.0 / 60.0

	// MaxFrameDelta clamps runaway deltas after a stall so one late frame
	// does not teleport every body across the arena
	MaxFrameDelta = 0.25
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the signal ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
