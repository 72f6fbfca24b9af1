package feedback

import "errors"

// ErrInvalidInput is returned when a feedback submission is missing required
// fields or references an unknown component.
var ErrInvalidInput = errors.New("invalid feedback input")
