package sim

// MissingTargetError reports that Initialize was called without the
// required external container. Fatal to initialization only; a simulation
// that failed to initialize never steps
type MissingTargetError struct {
	Reason string
}

func (e *MissingTargetError) Error() string {
	if e.Reason == "" {
		return "sim: missing target container"
	}
	return "sim: missing target container: " + e.Reason
}
