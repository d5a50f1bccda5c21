package repl

// State is the position of a session in its prompt/dispatch cycle.
type State int

// Session states.
const (
	// StatePrompting means the prompt is shown and the session waits for input.
	StatePrompting State = iota

	// StateDispatching means a line was read and is being handled.
	StateDispatching

	// StateTerminated means the session has ended.
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateDispatching:
		return "dispatching"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
