package cache

import "sync"

// Locked serializes every operation on a Cache behind one mutex.
//
// A plain Mutex rather than an RWMutex: Get reorders the list, so there is no
// read-only fast path. OnEvict runs while the lock is held and must not call
// back into the same Locked.
type Locked[K comparable, V any] struct {
	mu sync.Mutex
	c  *Cache[K, V]
}

// NewLocked constructs a Cache from cfg and wraps it.
func NewLocked[K comparable, V any](cfg Config[K, V]) (*Locked[K, V], error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &Locked[K, V]{c: c}, nil
}

func (l *Locked[K, V]) Put(key K, value V) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Put(key, value)
}

func (l *Locked[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Get(key)
}

func (l *Locked[K, V]) Peek(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Peek(key)
}

func (l *Locked[K, V]) Lookup(key K) (V, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Lookup(key)
}

func (l *Locked[K, V]) Contains(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Contains(key)
}

func (l *Locked[K, V]) Delete(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Delete(key)
}

func (l *Locked[K, V]) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.Purge()
}

func (l *Locked[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Len()
}

// Cap needs no lock: capacity never changes after construction.
func (l *Locked[K, V]) Cap() int {
	return l.c.Cap()
}

func (l *Locked[K, V]) Keys() []K {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Keys()
}

func (l *Locked[K, V]) Entries() []Entry[K, V] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Entries()
}

func (l *Locked[K, V]) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.String()
}

// Do runs fn with exclusive access to the underlying Cache, so several calls
// can be observed as one operation. fn must not retain c.
func (l *Locked[K, V]) Do(fn func(c *Cache[K, V])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.c)
}
