package usage

import "fmt"

// InvalidConfigKey is returned when a config key is not recognized.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("cliform: '%s' is not a valid config key. See 'cliform config list'.", key),
	}
}
