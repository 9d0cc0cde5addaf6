package services

import "errors"

var (
	// ErrNotFound is returned when a referenced student or payment does not exist.
	ErrNotFound = errors.New("record not found")
)

// FieldError is used to indicate an error with a specific input field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError reports malformed or missing input. No partial writes occur
// when one is returned.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return "validation failed"
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FieldMap returns the field errors keyed by field name.
func (e *ValidationError) FieldMap() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Error
	}
	return m
}

// ConflictError reports a receipt-number collision lost under concurrent
// creation after retries were exhausted. The request is safe to resubmit.
type ConflictError struct {
	Err error
}

func (e *ConflictError) Error() string {
	if e.Err == nil {
		return "conflicting concurrent write"
	}
	return e.Err.Error()
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// AsValidationError unwraps err as a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsConflictError unwraps err as a *ConflictError if it is one.
func AsConflictError(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
