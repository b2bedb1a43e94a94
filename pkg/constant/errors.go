package constant

import "errors"

// ErrNotFound marks lookups that matched nothing. Handlers translate it to
// a 404 without logging.
var ErrNotFound = errors.New("resource not found")

// ErrConflict marks writes rejected by a uniqueness rule, such as enrolling
// in the same course twice.
var ErrConflict = errors.New("resource already exists")

// ValidationError rejects caller input. Handlers translate it to a 400 with
// the message as-is; it is never logged as a server fault.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
