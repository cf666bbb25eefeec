package trianglify

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every configuration error returned by the package.
var ErrConfig = errors.New("trianglify: invalid configuration")

// ConfigError reports an invalid generation parameter. It is returned
// before any geometry work is done.
type ConfigError struct {
	Field  string
	Reason string
}

func newConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("trianglify: invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
