package core

import "github.com/pkg/errors"

// FieldError names one invalid input field and why it was rejected.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries input rejections back to the HTTP layer, which
// renders Fields as a field→message map. Validation never partially applies;
// a ValidationError always means nothing was mutated.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown marks an error the server cannot recover from; the error handler
// reacts by triggering a graceful shutdown.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown reports whether err (or its cause, however deep the wrapping)
// demands a shutdown.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
