package errors

import (
	"fmt"
)

// ErrorType represents the type of error.
type ErrorType string

const (
	ErrorTypeUsage           ErrorType = "USAGE_ERROR"
	ErrorTypeModelInit       ErrorType = "MODEL_INIT_ERROR"
	ErrorTypeSourceOpen      ErrorType = "SOURCE_OPEN_ERROR"
	ErrorTypeSinkUnavailable ErrorType = "SINK_UNAVAILABLE"
	ErrorTypeInference       ErrorType = "INFERENCE_ERROR"
	ErrorTypeInternal        ErrorType = "INTERNAL_ERROR"
)

// Process exit codes reported for each failure class. A usage error exits
// before any resource is acquired, so it gets its own code.
const (
	ExitCodeOK      = 0
	ExitCodeFailure = 1
	ExitCodeUsage   = 2
)

// AppError represents an application error with additional context.
type AppError struct {
	Type     ErrorType              `json:"type"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	ExitCode int                    `json:"-"`
	Err      error                  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError.
func New(errType ErrorType, message string, exitCode int) *AppError {
	return &AppError{
		Type:     errType,
		Message:  message,
		ExitCode: exitCode,
	}
}

// Wrap wraps an existing error.
func Wrap(err error, errType ErrorType, message string, exitCode int) *AppError {
	return &AppError{
		Type:     errType,
		Message:  message,
		ExitCode: exitCode,
		Err:      err,
	}
}

// Common error constructors.

// NewUsageError creates a malformed-invocation error. Raised before any
// resource is acquired, so no cleanup is required by the caller.
func NewUsageError(message string) *AppError {
	return New(ErrorTypeUsage, message, ExitCodeUsage)
}

// WrapModelInitError wraps a detector model initialization failure.
func WrapModelInitError(err error, modelPath string) *AppError {
	return Wrap(err, ErrorTypeModelInit, fmt.Sprintf("failed to initialize model %s", modelPath), ExitCodeFailure)
}

// WrapSourceOpenError wraps a frame source open failure.
func WrapSourceOpenError(err error, source string) *AppError {
	return Wrap(err, ErrorTypeSourceOpen, fmt.Sprintf("failed to open video source %s", source), ExitCodeFailure)
}

// NewSinkUnavailableError creates a sink-open error. Callers downgrade this
// to a warning: the run continues without persistence.
func NewSinkUnavailableError(path string) *AppError {
	return New(ErrorTypeSinkUnavailable, fmt.Sprintf("video writer failed to open %s", path), ExitCodeFailure)
}

// WrapInferenceError wraps a mid-stream detector failure. Fatal for the run,
// no retry.
func WrapInferenceError(err error, frame uint64) *AppError {
	appErr := Wrap(err, ErrorTypeInference, fmt.Sprintf("inference failed on frame %d", frame), ExitCodeFailure)
	return appErr.WithDetails(map[string]interface{}{"frame": frame})
}

// WrapInternalError wraps an unexpected error.
func WrapInternalError(err error, message string) *AppError {
	return Wrap(err, ErrorTypeInternal, message, ExitCodeFailure)
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts AppError from an error.
func GetAppError(err error) (*AppError, bool) {
	appErr, ok := err.(*AppError)
	return appErr, ok
}
