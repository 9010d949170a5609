// Package nfa provides the Thompson NFA: a shared state graph with
// multi-target and epsilon transitions, a compiler from expression
// trees, and subset construction to a DFA.
//
// An NFA is a start/end state pair. Acceptance is never stored on a
// state; a simulation accepts when it can reach the designated end
// state. Construction is single-goroutine; the finished automaton is
// immutable and safe to share.
package nfa

import (
	"errors"
	"fmt"
)

// Common compilation errors
var (
	// ErrEmptyPattern indicates a literal with no characters: there is no
	// transition to anchor a fragment on, so no automaton is produced.
	ErrEmptyPattern = errors.New("empty literal pattern")

	// ErrInvalidExpr indicates an expression tree with a malformed shape,
	// such as an unknown operation or a missing sub-expression.
	ErrInvalidExpr = errors.New("invalid expression")
)

// CompileError wraps compilation errors with the offending expression.
type CompileError struct {
	Expr string
	Err  error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Expr != "" {
		return fmt.Sprintf("nfa: cannot compile %q: %v", e.Expr, e.Err)
	}
	return fmt.Sprintf("nfa: compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
