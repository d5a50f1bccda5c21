package domain

// Operation identifies one of the supported arithmetic operations.
type Operation string

// Available operations.
const (
	// OperationAdd adds the two operands.
	OperationAdd Operation = "add"

	// OperationSubtract subtracts the second operand from the first.
	OperationSubtract Operation = "subtract"

	// OperationMultiply multiplies the two operands.
	OperationMultiply Operation = "multiply"

	// OperationDivide divides the first operand by the second.
	OperationDivide Operation = "divide"

	// OperationExponent raises the first operand to the power of the second.
	OperationExponent Operation = "exponent"

	// OperationSquareRoot takes the square root of the first operand.
	// The second operand is ignored.
	OperationSquareRoot Operation = "square_root"
)

// operationSymbols maps operator characters to operations.
var operationSymbols = map[rune]Operation{
	'+': OperationAdd,
	'-': OperationSubtract,
	'*': OperationMultiply,
	'/': OperationDivide,
	'^': OperationExponent,
	'#': OperationSquareRoot,
}

// Operations returns every supported operation in display order.
func Operations() []Operation {
	return []Operation{
		OperationAdd,
		OperationSubtract,
		OperationMultiply,
		OperationDivide,
		OperationExponent,
		OperationSquareRoot,
	}
}

// OperationForSymbol returns the operation written as the given character.
// Matching is exact and case-sensitive.
func OperationForSymbol(symbol rune) (Operation, bool) {
	op, ok := operationSymbols[symbol]
	return op, ok
}

// IsValid returns true if the operation is recognised.
func (o Operation) IsValid() bool {
	switch o {
	case OperationAdd, OperationSubtract, OperationMultiply,
		OperationDivide, OperationExponent, OperationSquareRoot:
		return true
	default:
		return false
	}
}

// IsUnary returns true if the operation only uses its first operand.
func (o Operation) IsUnary() bool {
	return o == OperationSquareRoot
}

// Symbol returns the operator character, or 0 for an unknown operation.
func (o Operation) Symbol() rune {
	for symbol, op := range operationSymbols {
		if op == o {
			return symbol
		}
	}
	return 0
}

// String returns the string representation.
func (o Operation) String() string {
	return string(o)
}

// Description returns a human-readable description of the operation.
func (o Operation) Description() string {
	switch o {
	case OperationAdd:
		return "Addition (a + b)"
	case OperationSubtract:
		return "Subtraction (a - b)"
	case OperationMultiply:
		return "Multiplication (a * b)"
	case OperationDivide:
		return "Division (a / b)"
	case OperationExponent:
		return "Exponent (a ^ b)"
	case OperationSquareRoot:
		return "Square root (a #)"
	default:
		return unknownDescription
	}
}
