package model

import "errors"

// Error taxonomy. Layers wrap these with fmt.Errorf("...: %w") and callers
// classify with errors.Is at the HTTP boundary.
var (
	// ErrNotFound marks a lookup of a tote or item that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks invalid input (empty name, nonpositive quantity,
	// dangling tote reference). Surfaced before any store mutation.
	ErrValidation = errors.New("validation failed")

	// ErrStoreUnavailable marks a failed underlying store call. Operations
	// wrapping it return either a complete result or this error, never a
	// truncated result. Retry policy belongs to the caller.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrEncodingFailed marks a failed QR image generation.
	ErrEncodingFailed = errors.New("encoding failed")
)
