package kmp

import "errors"

// Sentinel errors for KMP searches. Every message is prefixed with "kmp: ".
// Callers match them with errors.Is; contextual detail is attached with %w.
var (
	// ErrNilSource is returned when a nil Cursor is passed to a search.
	ErrNilSource = errors.New("kmp: source cursor is nil")

	// ErrNilPattern is returned when a nil Sequence is passed as the pattern.
	ErrNilPattern = errors.New("kmp: pattern is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kmp: invalid option supplied")

	// ErrNegativeStart is returned for a negative start offset.
	// It always arrives wrapped together with ErrOptionViolation.
	ErrNegativeStart = errors.New("kmp: start offset must be non-negative")
)
