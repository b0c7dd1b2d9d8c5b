package provider

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSecret    = errors.New("provider: missing secret")
	ErrUnknownProvider  = errors.New("provider: unknown provider")
	ErrUnknownOperation = errors.New("provider: unknown operation")
)

// ConfigError is a configuration problem of one provider. Ref names the secret or
// credential reference involved, never its value.
type ConfigError struct {
	Provider string
	Ref      string
	Err      error
}

func (e *ConfigError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Provider)
	}
	return fmt.Sprintf("%v: %s (%s)", e.Err, e.Provider, e.Ref)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
