package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/heainKang/daily-me-app/internal/logger"
)

// GenericMessage is shown in place of internal failures.
const GenericMessage = "something went wrong while saving or loading your journal, please try again"

// internalError hides its cause from the user but keeps it for logs and errors.Is.
type internalError struct {
	err error
}

func (e *internalError) Error() string { return e.err.Error() }
func (e *internalError) Unwrap() error { return e.err }

// Internal marks err as a storage or system failure whose details belong in
// the log only. Internal(nil) returns nil.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return &internalError{err: err}
}

// IsInternal reports whether err, or any error it wraps, was marked Internal.
func IsInternal(err error) bool {
	var ie *internalError
	return errors.As(err, &ie)
}

// UserMessage returns the text to show for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if IsInternal(err) {
		return GenericMessage
	}
	return err.Error()
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", UserMessage(err))
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
