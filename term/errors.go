package term

import (
	"fmt"

	"github.com/pkg/errors"
)

// ContractViolation is what term constructors panic with when asked to build a term
// the model forbids, such as a wildcard without an upper bound.
// These are programming errors: they are never recovered by this module.
type ContractViolation struct {
	err error
}

func (c *ContractViolation) Error() string { return "term contract violation: " + c.err.Error() }
func (c *ContractViolation) Unwrap() error { return c.err }

// Format prints the stack of the violation with %+v
func (c *ContractViolation) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "term contract violation: %+v", c.err)
		return
	}
	_, _ = fmt.Fprint(s, c.Error())
}

func violation(format string, args ...any) {
	panic(&ContractViolation{err: errors.Errorf(format, args...)})
}

// UnsupportedShapeError is what the supertype resolver and the assignability engine panic
// with when handed a term whose capabilities match none of the known shapes
type UnsupportedShapeError struct {
	Type Type
	err  error
}

func (u *UnsupportedShapeError) Error() string { return u.err.Error() }
func (u *UnsupportedShapeError) Unwrap() error { return u.err }

// NewUnsupportedShape builds the error for t, recording the caller's stack
func NewUnsupportedShape(t Type, during string) *UnsupportedShapeError {
	return &UnsupportedShapeError{
		Type: t,
		err:  errors.Errorf("unsupported type shape %T (%s) during %s", t, t, during),
	}
}
