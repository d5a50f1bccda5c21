// Package domain defines the core types of the calculator.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Operation: One of the supported arithmetic operations
//   - Expression: Two operands and an operation, ready to evaluate
//   - MessageSet: The strings shown to the user for a Mode
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
