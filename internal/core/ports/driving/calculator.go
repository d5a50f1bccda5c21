package driving

import "github.com/custodia-labs/calc/internal/core/domain"

// Calculator parses and evaluates arithmetic expressions.
type Calculator interface {
	// Parse builds an expression from at most three tokens: first operand,
	// operator and second operand. Missing tokens are treated as empty.
	// Returns an error wrapping domain.ErrParseFailure if the tokens do
	// not form a valid expression.
	Parse(tokens []string) (domain.Expression, error)

	// Calculate tokenizes a line, parses it and evaluates the expression.
	// Returns an error wrapping domain.ErrParseFailure if the line is not
	// a valid expression. NaN and infinite results are not errors.
	Calculate(line string) (float64, error)
}
