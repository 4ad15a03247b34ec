package service

import "errors"

// ErrInvalidCredentials is returned for both unknown usernames and
// wrong passwords so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports a broken input rule. The message names the
// specific rule so the admin UI can surface it.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
