package domain

import (
	"math"
	"strconv"
)

// Expression is a parsed two-operand arithmetic expression.
// Operands are never NaN and Operation is always valid when the
// expression was produced by the parser.
type Expression struct {
	// First is the left operand.
	First float64

	// Operation is the operation to apply.
	Operation Operation

	// Second is the right operand. It is 0 for unary operations.
	Second float64
}

// Evaluate applies the operation to the operands.
// IEEE-754 rules apply: division by zero yields ±Inf or NaN and the
// square root of a negative number yields NaN.
func (e Expression) Evaluate() float64 {
	switch e.Operation {
	case OperationAdd:
		return e.First + e.Second
	case OperationSubtract:
		return e.First - e.Second
	case OperationMultiply:
		return e.First * e.Second
	case OperationDivide:
		return e.First / e.Second
	case OperationExponent:
		return math.Pow(e.First, e.Second)
	case OperationSquareRoot:
		return math.Sqrt(e.First)
	default:
		return math.NaN()
	}
}

// FormatResult renders a result as the shortest decimal string that
// round-trips, without exponent notation. Non-finite values are
// rendered as "inf", "-inf" and "NaN".
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}
