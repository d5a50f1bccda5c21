package driven

import "github.com/custodia-labs/calc/internal/core/domain"

// MessageProvider supplies the human-readable strings a session shows.
// Implementations may embed message sets in the binary or load them
// from configuration. The core never branches on message content.
type MessageProvider interface {
	// Messages returns the message set for a mode.
	// Returns domain.ErrUnknownMode if the mode has no message set.
	Messages(mode domain.Mode) (domain.MessageSet, error)

	// Modes lists the modes with a message set, in a stable order.
	Modes() []domain.Mode
}
