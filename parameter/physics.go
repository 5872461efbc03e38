package parameter

// Physics resolution tuning
const (
	// CorrectionFactor is the fraction of interpenetration removed per step.
	// Partial correction (Baumgarte-style) keeps resting contacts from jittering
	CorrectionFactor = 0.2

	// DefaultMass is substituted for missing or non-positive body mass
	DefaultMass = 1.0

	// DefaultRestitution is the bounciness applied when a descriptor omits it
	DefaultRestitution = 0.9

	// DefaultFriction is stored on bodies but not consumed by resolution;
	// the field is reserved for a friction-aware solver
	DefaultFriction = 0.1

	// DefaultRadius is the radius of the fallback unit circle shape
	DefaultRadius = 1.0
)
