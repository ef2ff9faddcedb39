package vector

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidCoordinate        = -2001
	CodeUnsupportedOperand       = -2002
	CodeMismatchedDimensionality = -2003
	CodeZeroVector               = -2004
	CodeUnknown                  = -9999
)

type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code, so the sentinels below work
// with errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

var (
	ErrInvalidCoordinate        = &Error{Code: CodeInvalidCoordinate, Message: "invalid coordinate"}
	ErrUnsupportedOperand       = &Error{Code: CodeUnsupportedOperand, Message: "unsupported operand"}
	ErrMismatchedDimensionality = &Error{Code: CodeMismatchedDimensionality, Message: "mismatched dimensionality"}
	ErrZeroVector               = &Error{Code: CodeZeroVector, Message: "zero vector cannot be normalised"}
)

func newInvalidCoordinateError(v any) *Error {
	return &Error{
		Code:    CodeInvalidCoordinate,
		Message: fmt.Sprintf("cannot convert value '%v' to float", v),
	}
}

func newUnsupportedOperandError(op, lhs string, rhs Operand) *Error {
	return &Error{
		Code:    CodeUnsupportedOperand,
		Message: fmt.Sprintf("unsupported operand type(s) for %s: '%s' and '%s'", op, lhs, rhs.TypeName()),
	}
}

func newMismatchedDimensionalityError(fn string, a, b Vector) *Error {
	return &Error{
		Code:    CodeMismatchedDimensionality,
		Message: fmt.Sprintf("mismatched dimensionality for %s: '%s' and '%s'", fn, typeName(a), typeName(b)),
	}
}

func IsInvalidCoordinate(err error) bool {
	return GetErrorCode(err) == CodeInvalidCoordinate
}

func IsUnsupportedOperand(err error) bool {
	return GetErrorCode(err) == CodeUnsupportedOperand
}

func IsMismatchedDimensionality(err error) bool {
	return GetErrorCode(err) == CodeMismatchedDimensionality
}

func IsZeroVector(err error) bool {
	return GetErrorCode(err) == CodeZeroVector
}

func GetErrorCode(err error) int {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Code
	}
	return CodeUnknown
}
