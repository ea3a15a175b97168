// Package errors provides the error taxonomy shared by the scheduler
// and validator CLIs, mapping each failure kind to its exit behavior.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a failure kind.
type Code string

const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	CodeConstraintViolation Code = "CONSTRAINT_VIOLATION"
	CodeNoFeasibleSolution  Code = "NO_FEASIBLE_SOLUTION"
	CodeScheduleConflict    Code = "SCHEDULE_CONFLICT"
	CodeInvalidDateRange    Code = "INVALID_DATE_RANGE"
	CodeValidationFail      Code = "VALIDATION_FAILED"
)

// ExitCode is the process exit code a Code maps to. Per spec §7 only
// input/parse failures and validator exceptions are non-zero; an
// infeasible solve or a validator VIOLATIONS result is a successful
// run reporting a FAILED/VIOLATIONS status in its JSON body.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeInvalidDateRange, CodeValidationFail, CodeInternal, CodeUnknown:
		return 1
	default:
		return 0
	}
}

// AppError is a structured error carrying a Code, human-readable
// message and optional cause, serialized directly into the CLI error
// envelope.
type AppError struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Details string                 `json:"details,omitempty"`
	Cause   error                  `json:"-"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// WithDetails attaches a details string.
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithCause attaches an underlying error.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New builds an AppError.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap builds an AppError around an existing error.
func Wrap(err error, code Code, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// Is reports whether err is an AppError with the given Code.
func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the Code from err, or CodeUnknown if it is not an
// AppError.
func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// InvalidInput builds an input-validation failure for one field.
func InvalidInput(field, reason string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("field %q invalid: %s", field, reason))
}

// NoFeasibleSolution builds a NO_FEASIBLE_SOLUTION error carrying the
// solver's explanation.
func NoFeasibleSolution(reason string) *AppError {
	return New(CodeNoFeasibleSolution, reason)
}

// ConstraintViolation builds a single rule-breach error.
func ConstraintViolation(rule, details string) *AppError {
	return New(CodeConstraintViolation, fmt.Sprintf("rule %q violated: %s", rule, details))
}

// ValidationErrors collects multiple field-level validation failures.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// ValidationError is one field-level failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (ve *ValidationErrors) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s - %s", ve.Errors[0].Field, ve.Errors[0].Message)
}

// Add appends one field-level failure.
func (ve *ValidationErrors) Add(field, message string) {
	ve.Errors = append(ve.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any failure was recorded.
func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Errors) > 0
}

// ToAppError folds the collected field failures into one AppError.
func (ve *ValidationErrors) ToAppError() *AppError {
	err := New(CodeValidationFail, "validation failed")
	err.Fields = make(map[string]interface{})
	for _, e := range ve.Errors {
		err.Fields[e.Field] = e.Message
	}
	return err
}
