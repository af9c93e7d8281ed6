package errors

import (
	"github.com/sirupsen/logrus"
)

// ErrorHandler reports terminal pipeline errors and resolves their exit code.
type ErrorHandler struct {
	logger *logrus.Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// HandleError logs the error with its context and returns the process exit
// code the run should terminate with.
func (h *ErrorHandler) HandleError(err error) int {
	if err == nil {
		return ExitCodeOK
	}

	// Convert to AppError if it's not already
	appErr, ok := GetAppError(err)
	if !ok {
		appErr = WrapInternalError(err, "an unexpected error occurred")
	}

	logEntry := h.logger.WithFields(logrus.Fields{
		"error_type": appErr.Type,
		"exit_code":  appErr.ExitCode,
	})

	if appErr.Details != nil {
		logEntry = logEntry.WithField("details", appErr.Details)
	}

	if appErr.Err != nil {
		logEntry = logEntry.WithError(appErr.Err)
	}

	logEntry.Error(appErr.Message)

	return appErr.ExitCode
}

// ExitCode resolves the exit code for an error without logging it.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}

	if appErr, ok := GetAppError(err); ok {
		return appErr.ExitCode
	}

	return ExitCodeFailure
}
