package model

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every rejected input, including margin errors.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidMargin matches InvalidMarginError.
	ErrInvalidMargin = errors.New("invalid margin")
)

// ValidationError reports a malformed input value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidMarginError reports a margin outside [0, 100). A margin of exactly
// 100 would make the final price a division by zero.
type InvalidMarginError struct {
	Margin float64
}

func (e *InvalidMarginError) Error() string {
	return fmt.Sprintf("margin %g%% is outside [0, 100)", e.Margin)
}

// Unwrap lets errors.Is match both ErrInvalidMargin and ErrValidation.
func (e *InvalidMarginError) Unwrap() []error {
	return []error{ErrInvalidMargin, ErrValidation}
}
