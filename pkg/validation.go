package pkg

import (
	"errors"
	"fmt"
)

// ValidationError wraps a sentinel error with a message meant for the end user.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error, format string, args ...any) error {
	return &ValidationError{
		Err:     err,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidationMessage returns the user facing message if err carries one.
func ValidationMessage(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message, true
	}
	return "", false
}
