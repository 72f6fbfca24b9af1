package recommend

import "errors"

var (
	// ErrInvalidInput is returned for empty or whitespace-only problem text.
	ErrInvalidInput = errors.New("invalid input")
	// ErrModelUnavailable is returned when no rule matches and no trained
	// model artifact is loaded. It is surfaced distinctly so callers never
	// mistake it for a low-confidence result.
	ErrModelUnavailable = errors.New("model unavailable")
)
