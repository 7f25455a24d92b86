package engine

import "errors"

// Sentinel errors for engine failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrMissingTarget indicates a job was submitted without a target URL.
	ErrMissingTarget = errors.New("engine: missing required target")

	// ErrNoWordlists indicates a job was submitted with an empty wordlist
	// set. At least one source is required.
	ErrNoWordlists = errors.New("engine: at least one wordlist is required")

	// ErrNoResults indicates a report was requested before any result
	// was recorded.
	ErrNoResults = errors.New("engine: no results recorded yet")
)
