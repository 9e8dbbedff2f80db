package cache

import "errors"

var (
	ErrInvalidCapacity = ConfigError("capacity must be a positive integer")
	ErrNotFound        = errors.New("cache: Key not found")
)

// ConfigError reports a Config that cannot produce a working cache.
type ConfigError string

func (e ConfigError) Error() string {
	return "cache: Invalid configuration: " + string(e)
}
