package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type returned by seqkit operations.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an AppError with the same code, so the
// exported sentinels work with the standard errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Sentinels for errors.Is matching. Never returned directly; the constructors
// below hand out fresh values so details can be attached safely.
var (
	ErrEmptySequence      = New(ErrCodeEmptySequence, "Empty sequence")
	ErrElementNotFound    = New(ErrCodeElementNotFound, "Element not found")
	ErrNotASingleSequence = New(ErrCodeNotASingleSequence, "Not a single sequence")
	ErrNegativeDropSize   = New(ErrCodeNegativeDropSize, "Negative drop size")
	ErrOutOfBounds        = New(ErrCodeOutOfBounds, "n out of bounds")
	ErrNonNumericSequence = New(ErrCodeNonNumericSequence, "Non-numeric sequence")
	ErrTypeNotIterable    = New(ErrCodeTypeNotIterable, "Type is not iterable")
	ErrItemNotIterable    = New(ErrCodeItemNotIterable, "Item is not iterable")
	ErrInvalidConfig      = New(ErrCodeInvalidConfig, "Invalid configuration")
)

// --- Constructors ---

// EmptySequence creates an error for a terminal operation that found no element.
func EmptySequence(operation string) *AppError {
	return &AppError{
		Code: ErrCodeEmptySequence, Message: "Empty sequence",
		Details: map[string]any{"operation": operation},
	}
}

// ElementNotFound creates an error for a lookup that found no element.
func ElementNotFound(operation string) *AppError {
	return &AppError{
		Code: ErrCodeElementNotFound, Message: "Element not found",
		Details: map[string]any{"operation": operation},
	}
}

// ElementNotFoundAt creates an error for a positional lookup past the end.
func ElementNotFoundAt(index int) *AppError {
	return ElementNotFound("elementAt").WithDetail("index", index)
}

// NotASingleSequence creates an error for a single-element lookup with several matches.
func NotASingleSequence() *AppError {
	return &AppError{Code: ErrCodeNotASingleSequence, Message: "Not a single sequence"}
}

// NegativeDropSize creates an error for a negative drop count.
func NegativeDropSize(n int) *AppError {
	return &AppError{
		Code: ErrCodeNegativeDropSize, Message: "Negative drop size",
		Details: map[string]any{"n": n},
	}
}

// OutOfBounds creates an error for a count or size argument outside its range.
func OutOfBounds(argument string, n int) *AppError {
	return &AppError{
		Code: ErrCodeOutOfBounds, Message: fmt.Sprintf("%s out of bounds", argument),
		Details: map[string]any{argument: n},
	}
}

// NonNumericSequence creates an error for a numeric fold over a non-numeric element.
func NonNumericSequence(value any) *AppError {
	return &AppError{
		Code: ErrCodeNonNumericSequence, Message: "Non-numeric sequence",
		Details: map[string]any{"type": fmt.Sprintf("%T", value)},
	}
}

// TypeNotIterable creates an error for a flat-map result that cannot be iterated.
func TypeNotIterable(value any) *AppError {
	return &AppError{
		Code: ErrCodeTypeNotIterable, Message: fmt.Sprintf("%T is not iterable", value),
		Details: map[string]any{"type": fmt.Sprintf("%T", value)},
	}
}

// ItemNotIterable creates an error for a flattened element that cannot be iterated.
func ItemNotIterable(value any) *AppError {
	return &AppError{
		Code: ErrCodeItemNotIterable, Message: "Item is not iterable",
		Details: map[string]any{"type": fmt.Sprintf("%T", value)},
	}
}

// InvalidConfig creates an error for settings that failed validation.
func InvalidConfig(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// Internal creates an error wrapping an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred", Cause: cause,
	}
}

// --- Inspection ---

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Wrap returns err as an AppError, wrapping foreign errors as internal ones.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}

// CodeOf returns the code of the first AppError in err's chain, or "" when
// there is none.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
