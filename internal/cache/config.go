package cache

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Config controls cache capacity and eviction reporting.
//
// Capacity is fixed for the lifetime of the cache and must be positive.
type Config[K comparable, V any] struct {
	Capacity int

	// OnEvict, if set, is called synchronously after a capacity eviction,
	// once the entry has left both the list and the index.
	OnEvict func(key K, value V)

	// Logger receives Debug events for evictions and purges.
	// Nil means logging is off.
	Logger *zerolog.Logger
}

// Validate reports a ConfigError wrapped with the offending value.
func (c Config[K, V]) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidCapacity, c.Capacity)
	}
	return nil
}
