package domain

import "strings"

// ExpressionSlots is the number of token slots in an expression line:
// first operand, operator and second operand.
const ExpressionSlots = 3

// Reserved command words recognised before expression parsing.
const (
	// CommandExit ends the session.
	CommandExit = "exit"

	// CommandInfo prints the informational message.
	CommandInfo = "info"
)

// Tokenize splits a line on runs of whitespace and pads the result with
// empty strings to ExpressionSlots. Lines with more tokens are returned
// untruncated so the parser can reject them.
func Tokenize(line string) []string {
	return PadTokens(strings.Fields(line))
}

// PadTokens returns tokens padded with empty strings to ExpressionSlots.
// The input slice is never modified.
func PadTokens(tokens []string) []string {
	if len(tokens) >= ExpressionSlots {
		return tokens
	}
	padded := make([]string, ExpressionSlots)
	copy(padded, tokens)
	return padded
}
