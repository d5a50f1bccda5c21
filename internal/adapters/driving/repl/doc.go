// Package repl implements the interactive read-eval-print session.
//
// A Session prints a prompt, reads one line, and either handles a reserved
// command (exit, info) or hands the line to a driving.Calculator and prints
// the result. Every line is handled independently; nothing carries over
// between iterations except the session's message set.
package repl
