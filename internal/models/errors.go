package models

import "errors"

// Sentinel errors shared across packages.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyResolved indicates an attempt to resolve a bet that has
	// already reached a terminal status.
	ErrAlreadyResolved = errors.New("bet already resolved")

	// ErrNoGames indicates the schedule returned zero games. Callers
	// surface this as an empty result with a message, not a failure.
	ErrNoGames = errors.New("no games scheduled")
)
