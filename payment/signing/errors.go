package signing

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField     = errors.New("signing: missing required field")
	ErrMissingSecret    = errors.New("signing: missing secret")
	ErrUnknownAlgorithm = errors.New("signing: unknown algorithm")
)

// SigningError reports the canonical field that prevented a string from being built.
type SigningError struct {
	Field string
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing: missing required field %q", e.Field)
}

// Is lets callers match any SigningError with errors.Is(err, ErrMissingField).
func (e *SigningError) Is(target error) bool {
	return target == ErrMissingField
}
