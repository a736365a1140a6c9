package triggers

import (
	"errors"
	"fmt"
)

// ValidationError is a field-shape problem the caller can fix; the HTTP layer maps it to 400.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string {
	return e.msg
}

// NewValidationError creates a new validation error.
func NewValidationError(format string, args ...any) error {
	return ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var vErr ValidationError
	return errors.As(err, &vErr)
}
