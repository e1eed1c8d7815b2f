package domain

import "errors"

var (
	ErrCaptureInProgress = errors.New("a shortcut capture is already in progress")
	ErrInvalidBinding    = errors.New("invalid shortcut")
	ErrSessionClosed     = errors.New("capture session is not recording")
	ErrUnknownSlot       = errors.New("unknown shortcut")
)
