package model

import "errors"

// Common errors used across the application
var (
	// Configuration errors
	ErrBoundsTooSmall  = errors.New("board bounds must be at least 10 units apart")
	ErrUnknownStrategy = errors.New("unknown strategy")

	// Move errors
	ErrUnknownMove = errors.New("unrecognized move token")
	ErrOutOfBounds = errors.New("move would leave the board")

	// Session errors
	ErrAborted = errors.New("session aborted")
)
