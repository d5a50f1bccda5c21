// Package services implements the driving port interfaces.
//
// CalculatorService is the expression parser: it turns the tokens of one
// input line into a domain.Expression and evaluates it.
package services
