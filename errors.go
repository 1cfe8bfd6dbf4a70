package quantity

import (
	"fmt"
	"sort"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeInvalidUnit            Code = "INVALID_UNIT"
	CodeCategoryMismatch       Code = "CATEGORY_MISMATCH"
	CodeUnitMismatch           Code = "UNIT_MISMATCH"
	CodeIncompatibleConversion Code = "INCOMPATIBLE_CONVERSION"
	CodeInvalidExponent        Code = "INVALID_EXPONENT"
	CodeUnsupportedOperation   Code = "UNSUPPORTED_OPERATION"
	CodeUnknownTargetUnit      Code = "UNKNOWN_TARGET_UNIT"
)

// Sentinels for errors.Is. Matching is by code only.
var (
	ErrInvalidUnit            = &Error{Code: CodeInvalidUnit}
	ErrCategoryMismatch       = &Error{Code: CodeCategoryMismatch}
	ErrUnitMismatch           = &Error{Code: CodeUnitMismatch}
	ErrIncompatibleConversion = &Error{Code: CodeIncompatibleConversion}
	ErrInvalidExponent        = &Error{Code: CodeInvalidExponent}
	ErrUnsupportedOperation   = &Error{Code: CodeUnsupportedOperation}
	ErrUnknownTargetUnit      = &Error{Code: CodeUnknownTargetUnit}
)

// Error is returned by every failing Quantity operation.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string // operand units, categories and values
	Cause    error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	if len(e.Metadata) == 0 {
		return e.Message
	}
	keys := sortedKeys(e.Metadata)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Metadata[k])
	}
	return e.Message + " (" + strings.Join(parts, " ") + ")"
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func newError(code Code, metadata map[string]string, format string, args ...any) *Error {
	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Metadata: metadata,
	}
}

func categoryMismatch(op string, a, b Quantity) *Error {
	return newError(CodeCategoryMismatch, map[string]string{
		"left":  a.String(),
		"right": b.String(),
	}, "%s: %s and %s are not compatible", op, a.unit.Measures(), b.unit.Measures())
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
