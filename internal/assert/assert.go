// Package assert guards internal invariants that must never be false at
// runtime — broken ones are compiler bugs, not user errors, and are handled
// by aborting rather than by accumulating a diagnostic.
package assert

import "fmt"

// Violation is the panic value raised by a failed assertion.
type Violation struct {
	Message string
}

func (v *Violation) Error() string { return v.Message }

// That panics with a *Violation if cond is false.
func That(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(&Violation{Message: fmt.Sprintf(format, args...)})
}
