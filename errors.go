package adql

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an operand, index or operand list is rejected.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when a parameter index is outside [0, count).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTranslation is returned when a query cannot be translated to SQL.
	ErrTranslation = errors.New("translation failure")
)

// ArgumentError describes a rejected function argument.
type ArgumentError struct {
	Function string
	Reason   string
	Index    int
	errs     []error
}

func (e *ArgumentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Function, e.Reason)
	}
	return fmt.Sprintf("%s: parameter %d: %s", e.Function, e.Index, e.Reason)
}

// Unwrap exposes the sentinel errors so callers can use errors.Is.
func (e *ArgumentError) Unwrap() []error {
	return e.errs
}

func invalidArgument(function string, index int, format string, args ...any) error {
	return &ArgumentError{
		Function: function,
		Index:    index,
		Reason:   fmt.Sprintf(format, args...),
		errs:     []error{ErrInvalidArgument},
	}
}

func indexOutOfRange(function string, index int, invalid bool) error {
	errs := []error{ErrIndexOutOfRange}
	if invalid {
		errs = append(errs, ErrInvalidArgument)
	}
	return &ArgumentError{
		Function: function,
		Index:    index,
		Reason:   "no such parameter",
		errs:     errs,
	}
}

// TranslationError reports why a query could not be rendered.
type TranslationError struct {
	Dialect string
	Reason  string
}

func (e *TranslationError) Error() string {
	if e.Dialect == "" {
		return fmt.Sprintf("translation failure: %s", e.Reason)
	}
	return fmt.Sprintf("%s: translation failure: %s", e.Dialect, e.Reason)
}

// Unwrap returns ErrTranslation.
func (e *TranslationError) Unwrap() error {
	return ErrTranslation
}

// NewTranslationError creates a TranslationError with a formatted reason.
func NewTranslationError(dialect, format string, args ...any) error {
	return &TranslationError{Dialect: dialect, Reason: fmt.Sprintf(format, args...)}
}
