package domain

// CaptureState is the state of a capture session
type CaptureState int

const (
	CaptureIdle CaptureState = iota
	CaptureRecording
	CaptureCommitting
	CaptureCancelling
)

func (s CaptureState) String() string {
	switch s {
	case CaptureIdle:
		return "idle"
	case CaptureRecording:
		return "recording"
	case CaptureCommitting:
		return "committing"
	case CaptureCancelling:
		return "cancelling"
	default:
		return "unknown"
	}
}

// CaptureResult tells how a key event ended (or did not end) a session
type CaptureResult string

const (
	CaptureContinued CaptureResult = "continued" // key accumulated, still recording
	CaptureCommitted CaptureResult = "committed" // enter with a pending binding
	CaptureEmpty     CaptureResult = "empty"     // enter with nothing held
	CaptureCancelled CaptureResult = "cancelled" // escape or teardown
)
