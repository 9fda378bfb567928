package engine

import "errors"

var (
	// ErrCancelled reports that the cancel key ended the session early.
	ErrCancelled = errors.New("engine: session cancelled")

	// ErrWindowClosed reports that the window was closed mid-session.
	ErrWindowClosed = errors.New("engine: window closed")
)
