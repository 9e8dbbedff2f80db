package cache

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"lrucache/internal/list"
)

// Cache is a fixed-capacity key–value cache with least-recently-used eviction.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and a doubly linked list maintains recency ordering.
// The list owns every node; the map only holds handles into it.
//
// Cache is not safe for concurrent use. See Locked.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]list.Handle
	order    *list.List[K, V] // Front = most recently used (MRU), Back = least recently used (LRU)

	onEvict func(K, V)
	log     zerolog.Logger
}

const preallocLimit = 1 << 10

// Entry is one key/value pair of an ordered view.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// New constructs an empty cache. It fails with ErrInvalidCapacity if
// cfg.Capacity is not positive.
func New[K comparable, V any](cfg Config[K, V]) (*Cache[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	// Storage grows with use; capacity only bounds it.
	hint := min(cfg.Capacity, preallocLimit)

	return &Cache[K, V]{
		capacity: cfg.Capacity,
		items:    make(map[K]list.Handle, hint),
		order:    list.New[K, V](hint),
		onEvict:  cfg.OnEvict,
		log:      log,
	}, nil
}

// MustNew is like New but panics on an invalid Config.
func MustNew[K comparable, V any](cfg Config[K, V]) *Cache[K, V] {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Put writes or overwrites key and marks it most recently used.
//
// Overwriting an existing key never evicts. Inserting a new key into a full
// cache evicts exactly one entry, the least recently used, and reports true.
func (c *Cache[K, V]) Put(key K, value V) (evicted bool) {
	if h, ok := c.items[key]; ok {
		c.order.SetValue(h, value)
		c.order.MoveToFront(h)
		return false
	}

	c.items[key] = c.order.PushFront(key, value)
	if len(c.items) <= c.capacity {
		return false
	}
	c.evictOldest()
	return true
}

// Get returns the value for key and marks it most recently used.
// A missing key returns the zero value and false, and changes nothing.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	h, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if h != c.order.Front() {
		c.order.MoveToFront(h)
	}
	return c.order.Value(h), true
}

// Lookup is Get in error form: a missing key yields an error wrapping ErrNotFound.
func (c *Cache[K, V]) Lookup(key K) (V, error) {
	v, ok := c.Get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	return v, nil
}

// Peek returns the value for key without touching its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	h, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.order.Value(h), true
}

// Contains reports whether key is cached, without touching its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Delete removes key if present. OnEvict is not called for explicit deletes.
func (c *Cache[K, V]) Delete(key K) bool {
	h, ok := c.items[key]
	if !ok {
		return false
	}
	delete(c.items, key)
	c.order.Remove(h)
	return true
}

// Purge removes every entry. OnEvict is not called.
func (c *Cache[K, V]) Purge() {
	n := len(c.items)
	clear(c.items)
	c.order.Clear()
	c.log.Debug().Int("removed", n).Msg("cache purged")
}

// Len returns the number of stored entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the configured capacity.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys returns keys in MRU -> LRU order.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, c.order.Len())
	for k := range c.order.Keys() {
		out = append(out, k)
	}
	return out
}

// Entries returns key/value pairs in MRU -> LRU order.
func (c *Cache[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, c.order.Len())
	for k, v := range c.order.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// Format renders every entry with fn, in MRU -> LRU order, joined by ", ".
func (c *Cache[K, V]) Format(fn func(key K, value V) string) string {
	var b strings.Builder
	for k, v := range c.order.All() {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fn(k, v))
	}
	return b.String()
}

// String renders the cache as "key: value" pairs in MRU -> LRU order.
// It is meant for logs and tests, not as a stable format.
func (c *Cache[K, V]) String() string {
	return c.Format(func(k K, v V) string {
		return fmt.Sprintf("%v: %v", k, v)
	})
}

func (c *Cache[K, V]) evictOldest() {
	key, value, ok := c.order.RemoveBack()
	if !ok {
		return
	}
	delete(c.items, key)

	c.log.Debug().
		Interface("key", key).
		Int("size", len(c.items)).
		Msg("evicted least recently used entry")

	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}
