// Package errors provides the structured error types for certforge.
//
// The generation pipeline distinguishes exactly two failure kinds:
//
//   - [ValidationError]: input records or a certificate identifier failed
//     structural rules. For record validation it carries a field→message map
//     enumerating every violated rule, not just the first.
//   - [GenerationError]: any failure downstream of validation (rendering,
//     encoding, I/O, unsupported formats), wrapping the underlying cause.
//
// Callers branch on kind via [IsValidation] / [IsGeneration] or errors.As,
// never on message strings. Validation failures are never downgraded; any
// unexpected internal error is wrapped as a GenerationError rather than
// escaping as a raw system error.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// GenerationError reports a pipeline failure downstream of validation.
type GenerationError struct {
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed: %s", e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// NewGeneration creates a GenerationError with a formatted message.
func NewGeneration(format string, args ...any) *GenerationError {
	return &GenerationError{Message: fmt.Sprintf(format, args...)}
}

// WrapGeneration creates a GenerationError wrapping an existing error.
// If cause is already a ValidationError or GenerationError it is returned
// unchanged, so stage helpers can wrap unconditionally without double-tagging.
func WrapGeneration(cause error, format string, args ...any) error {
	if cause == nil {
		return nil
	}
	var ve *ValidationError
	var ge *GenerationError
	if errors.As(cause, &ve) || errors.As(cause, &ge) {
		return cause
	}
	return &GenerationError{Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsGeneration reports whether err is (or wraps) a GenerationError.
func IsGeneration(err error) bool {
	var e *GenerationError
	return errors.As(err, &e)
}

// FieldErrors extracts the field→message map from a validation error.
// Returns nil if err is not a ValidationError.
func FieldErrors(err error) map[string]string {
	var e *ValidationError
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// joinFields formats a field map as "field: message" pairs in sorted field
// order, so error text is deterministic.
func joinFields(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fields[k]))
	}
	return strings.Join(parts, "; ")
}
