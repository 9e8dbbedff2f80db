package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestNewLockedRejectsInvalidCapacity(t *testing.T) {
	if _, err := NewLocked(Config[string, int]{Capacity: -1}); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}
}

func TestLockedConcurrentReadersAndWriters(t *testing.T) {
	l, err := NewLocked(Config[string, int]{Capacity: 5})
	if err != nil {
		t.Fatalf("NewLocked: %v", err)
	}
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		key := string(rune('a' + i))
		l.Put(key, i)
	}

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			key := string(rune('a' + idx%5))
			l.Put(key, idx)
		}(i)

		go func(idx int) {
			defer wg.Done()
			key := string(rune('a' + idx%5))
			if _, ok := l.Get(key); !ok {
				t.Errorf("expected key %s to exist", key)
			}
		}(i)
	}

	wg.Wait()
	if l.Len() != 5 {
		t.Fatalf("expected 5 entries, got %d", l.Len())
	}
	l.Do(func(c *Cache[string, int]) {
		checkInvariants(t, c)
	})
}

func TestLockedEvictionUnderContention(t *testing.T) {
	l, err := NewLocked(Config[int, int]{Capacity: 8})
	if err != nil {
		t.Fatalf("NewLocked: %v", err)
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := base*1000 + i
				l.Put(k, i)
				l.Get(k - 1)
				if i%10 == 0 {
					l.Delete(k - 5)
				}
			}
		}(w)
	}
	wg.Wait()

	if l.Len() > 8 {
		t.Fatalf("cache size %d exceeds capacity", l.Len())
	}
	l.Do(func(c *Cache[int, int]) {
		checkInvariants(t, c)
	})
}

func TestLockedDelegates(t *testing.T) {
	l, err := NewLocked(Config[string, string]{Capacity: 2})
	if err != nil {
		t.Fatalf("NewLocked: %v", err)
	}
	l.Put("a", "A")
	l.Put("b", "B")

	if v, ok := l.Peek("a"); !ok || v != "A" {
		t.Fatalf("Peek(a) = (%q, %v)", v, ok)
	}
	if got := l.String(); got != "b: B, a: A" {
		t.Fatalf("String() = %q", got)
	}
	if keys := l.Keys(); len(keys) != 2 || keys[0] != "b" {
		t.Fatalf("Keys() = %v", keys)
	}
	if !l.Contains("a") || l.Contains("z") {
		t.Fatalf("Contains mismatch")
	}
	if v, err := l.Lookup("a"); err != nil || v != "A" {
		t.Fatalf("Lookup(a) = (%q, %v)", v, err)
	}
	if _, err := l.Lookup("z"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if l.Cap() != 2 {
		t.Fatalf("Cap() = %d", l.Cap())
	}
	// Lookup(a) promoted a.
	if entries := l.Entries(); len(entries) != 2 || entries[0] != (Entry[string, string]{"a", "A"}) {
		t.Fatalf("Entries() = %v", entries)
	}
	if !l.Delete("b") {
		t.Fatalf("Delete(b) = false")
	}
	l.Purge()
	if l.Len() != 0 {
		t.Fatalf("Len() = %d after Purge", l.Len())
	}
}
