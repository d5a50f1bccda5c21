package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrParseFailure indicates a line is not a valid expression.
	// It covers unknown operators, unparsable operands and too many tokens;
	// callers do not distinguish between them.
	ErrParseFailure = errors.New("parse failure")

	// ErrUnknownMode indicates no message set exists for a mode.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrIncompleteMessages indicates a message set is missing entries.
	ErrIncompleteMessages = errors.New("incomplete message set")
)
