package ports

import "context"

// ListenerController pauses and resumes global hotkey interpretation.
// Both calls are best effort; callers never change state based on the result.
type ListenerController interface {
	Suspend(ctx context.Context) error
	Resume(ctx context.Context) error
}

// RecorderLock guards the "one recording at a time" rule across processes
type RecorderLock interface {
	// TryAcquire takes the lock without blocking. It returns false when
	// another holder already has it.
	TryAcquire() (bool, error)

	// Release gives the lock back
	Release() error
}
