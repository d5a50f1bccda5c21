package domain

const unknownDescription = "Unknown"

// Mode selects which message set is shown to the user.
type Mode string

// Available modes.
const (
	// ModeSerious is the formal message set. It is the default.
	ModeSerious Mode = "serious"

	// ModeSilly is the casual message set.
	ModeSilly Mode = "silly"
)

// IsValid returns true if the mode is recognised.
func (m Mode) IsValid() bool {
	switch m {
	case ModeSerious, ModeSilly:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m Mode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m Mode) Description() string {
	switch m {
	case ModeSerious:
		return "Serious (formal messages)"
	case ModeSilly:
		return "Silly (casual messages)"
	default:
		return unknownDescription
	}
}

// MessageSet is the bundle of human-readable strings shown by a session.
type MessageSet struct {
	// License is the notice printed at startup unless suppressed.
	License string

	// Welcome is printed once when the session starts.
	Welcome string

	// Goodbye is printed when the session ends.
	Goodbye string

	// Error is printed when a line cannot be parsed.
	Error string

	// Info is printed for the info command.
	Info string
}

// IsComplete returns true if every message is set.
func (m MessageSet) IsComplete() bool {
	return m.License != "" && m.Welcome != "" && m.Goodbye != "" &&
		m.Error != "" && m.Info != ""
}
