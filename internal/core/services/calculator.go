package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/calc/internal/core/domain"
	"github.com/custodia-labs/calc/internal/core/ports/driving"
	"github.com/custodia-labs/calc/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.Calculator = (*CalculatorService)(nil)

// CalculatorService parses and evaluates two-operand expressions.
type CalculatorService struct {
	strictOperators bool
}

// NewCalculatorService creates a new calculator service.
// Operators are matched on their first character unless strict
// operator matching is enabled.
func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

// SetStrictOperators controls whether operator tokens must be exactly one
// character long. When disabled, "+5" is read as "+".
func (s *CalculatorService) SetStrictOperators(strict bool) {
	s.strictOperators = strict
}

// Parse builds an expression from the first operand, operator and second
// operand tokens.
func (s *CalculatorService) Parse(tokens []string) (domain.Expression, error) {
	if len(tokens) > domain.ExpressionSlots {
		return domain.Expression{}, fmt.Errorf("%w: %d tokens, at most %d allowed",
			domain.ErrParseFailure, len(tokens), domain.ExpressionSlots)
	}
	tokens = domain.PadTokens(tokens)

	op, opOK := s.operation(tokens[1])
	first := parseOperand(tokens[0])
	second := parseOperand(tokens[2])

	// Square root takes one operand; whatever follows the operator is ignored.
	if opOK && op.IsUnary() {
		second = 0
	}

	switch {
	case !opOK:
		return domain.Expression{}, fmt.Errorf("%w: unrecognised operator %q",
			domain.ErrParseFailure, tokens[1])
	case math.IsNaN(first):
		return domain.Expression{}, fmt.Errorf("%w: invalid first operand %q",
			domain.ErrParseFailure, tokens[0])
	case math.IsNaN(second):
		return domain.Expression{}, fmt.Errorf("%w: invalid second operand %q",
			domain.ErrParseFailure, tokens[2])
	}

	return domain.Expression{First: first, Operation: op, Second: second}, nil
}

// Calculate tokenizes, parses and evaluates a line.
func (s *CalculatorService) Calculate(line string) (float64, error) {
	expr, err := s.Parse(domain.Tokenize(line))
	if err != nil {
		logger.Debug("Parse failed for %q: %v", line, err)
		return 0, err
	}

	result := expr.Evaluate()
	logger.Debug("Evaluated %s(%g, %g) = %g", expr.Operation, expr.First, expr.Second, result)
	return result, nil
}

// operation maps an operator token to an operation by its first character.
func (s *CalculatorService) operation(token string) (domain.Operation, bool) {
	if token == "" {
		return "", false
	}
	symbol, size := utf8.DecodeRuneInString(token)
	if s.strictOperators && size != len(token) {
		return "", false
	}
	return domain.OperationForSymbol(symbol)
}

// parseOperand parses a decimal floating point token.
// Tokens that are not decimal numbers parse to NaN. Values too large
// for a float64 parse to ±Inf.
func parseOperand(token string) float64 {
	if token == "" || isHexLiteral(token) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

// isHexLiteral reports whether the token uses the 0x prefix, which
// strconv accepts but is not decimal syntax.
func isHexLiteral(token string) bool {
	token = strings.TrimLeft(token, "+-")
	return len(token) > 1 && token[0] == '0' && (token[1] == 'x' || token[1] == 'X')
}
