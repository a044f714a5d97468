package hints

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yourorg/mmrhints/pkg/felt"
)

var (
	ErrUnknownHint       = errors.New("hints: unknown hint")
	ErrUnknownOperand    = errors.New("hints: unknown operand")
	ErrExpectedInteger   = errors.New("hints: expected integer")
	ErrExpectedPointer   = errors.New("hints: expected pointer")
	ErrOutOfRange        = errors.New("hints: value out of range")
	ErrAssertion         = errors.New("hints: assertion failed")
	ErrMissingScopeValue = errors.New("hints: missing scope value")
	ErrDivisionByZero    = felt.ErrDivisionByZero
)

type UnknownHintError struct {
	Code string
}

func (e *UnknownHintError) Error() string {
	return fmt.Sprintf("hints: unknown hint %q", summary(e.Code))
}

func (e *UnknownHintError) Unwrap() error { return ErrUnknownHint }

// InvalidValueError reports an operand whose value the routine cannot
// interpret.
type InvalidValueError struct {
	Name   string
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("hints: %s=%s: %s", e.Name, e.Value, e.Reason)
}

func (e *InvalidValueError) Unwrap() error { return ErrOutOfRange }

type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string { return "hints: assertion failed: " + e.Msg }

func (e *AssertionError) Unwrap() error { return ErrAssertion }

// summary is the first line of a hint, used to keep messages short.
func summary(code string) string {
	line, _, more := strings.Cut(code, "\n")
	if more {
		return line + " ..."
	}
	return line
}
