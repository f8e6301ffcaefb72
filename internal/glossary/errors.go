package glossary

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("term not found")
	// ErrStoreUnavailable wraps every failure of the underlying store.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidRelation  = errors.New("invalid relation")
)

// ValidationError reports a field that failed validation before reaching the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err should be shown to the caller as a bad request.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr) || errors.Is(err, ErrInvalidRelation)
}
