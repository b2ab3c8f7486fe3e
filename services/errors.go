package services

import "errors"

// ErrorKind is the machine-readable error taxonomy surfaced in API
// error envelopes.
type ErrorKind string

const (
	KindMissingScore       ErrorKind = "missing_score"
	KindScoreOutOfRange    ErrorKind = "score_out_of_range"
	KindMissingContext     ErrorKind = "missing_context"
	KindInvalidEmail       ErrorKind = "invalid_email"
	KindPersistenceFailure ErrorKind = "persistence_failure"
	KindNotFound           ErrorKind = "not_found"
)

// ValidationError carries the taxonomy kind plus the offending field
// so clients can correct their input.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(kind ErrorKind, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

// KindOf extracts the taxonomy kind from an error, or "" when the
// error is not a ValidationError.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
