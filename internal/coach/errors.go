package coach

import (
	"errors"
	"fmt"
	"strings"
)

// FailurePrefix starts the rendered text of every completion failure.
const FailurePrefix = "Error:"

// ValidationError is returned when a required input is missing.
// No completion request is made in that case.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// ExternalServiceError wraps a failed completion call. Its text starts with
// FailurePrefix so it can be shown to users as-is.
type ExternalServiceError struct {
	Op    string
	Cause error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s %v", FailurePrefix, e.Cause)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Cause
}

// IsExternalServiceError reports whether err came from the completion service.
func IsExternalServiceError(err error) bool {
	var svcErr *ExternalServiceError
	return errors.As(err, &svcErr)
}

// ErrorText renders err for display. The result always begins with "Error";
// a nil error renders as "".
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if strings.HasPrefix(msg, "Error") {
		return msg
	}
	return FailurePrefix + " " + msg
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "must not be empty"}
	}
	return nil
}
