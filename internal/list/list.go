package list

import "iter"

// Handle identifies a node slot in a List.
//
// The zero Handle never refers to a live node. A Handle stays valid until the
// node it names is removed; after that the slot may be reused by a later push.
type Handle int

// maxHint bounds the up-front arena allocation; larger lists grow on demand.
const maxHint = 1 << 10

// node is one arena slot. Slot 0 is reserved so that the zero Handle is nil.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  Handle
	next  Handle
	live  bool
}

// List is a doubly linked list of key/value nodes ordered from most recently
// used (front) to least recently used (back).
//
// The zero value is an empty list ready to use.
type List[K comparable, V any] struct {
	nodes []node[K, V]
	free  []Handle
	head  Handle
	tail  Handle
	size  int
}

// New returns an empty list with room for hint nodes, up to 1024, before the
// arena grows.
func New[K comparable, V any](hint int) *List[K, V] {
	hint = max(0, min(hint, maxHint))
	return &List[K, V]{
		nodes: make([]node[K, V], 1, hint+1),
	}
}

// Len returns the number of nodes in the list.
// Time complexity: O(1)
func (l *List[K, V]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no nodes.
func (l *List[K, V]) IsEmpty() bool {
	return l.size == 0
}

// Front returns the most recently used node, or the zero Handle if empty.
func (l *List[K, V]) Front() Handle {
	return l.head
}

// Back returns the least recently used node, or the zero Handle if empty.
func (l *List[K, V]) Back() Handle {
	return l.tail
}

// Next returns the node after h (towards the back), or the zero Handle.
func (l *List[K, V]) Next(h Handle) Handle {
	if !l.live(h) {
		return 0
	}
	return l.nodes[h].next
}

// Prev returns the node before h (towards the front), or the zero Handle.
func (l *List[K, V]) Prev(h Handle) Handle {
	if !l.live(h) {
		return 0
	}
	return l.nodes[h].prev
}

// Contains reports whether h names a node currently in the list.
func (l *List[K, V]) Contains(h Handle) bool {
	return l.live(h)
}

// Key returns the key stored at h. A handle that is not live yields the zero key.
func (l *List[K, V]) Key(h Handle) K {
	if !l.live(h) {
		var zero K
		return zero
	}
	return l.nodes[h].key
}

// Value returns the value stored at h. A handle that is not live yields the zero value.
func (l *List[K, V]) Value(h Handle) V {
	if !l.live(h) {
		var zero V
		return zero
	}
	return l.nodes[h].value
}

// SetValue replaces the value at h in place without changing its position.
// It reports false if h is not live.
func (l *List[K, V]) SetValue(h Handle, value V) bool {
	if !l.live(h) {
		return false
	}
	l.nodes[h].value = value
	return true
}

// PushFront inserts a new node at the front and returns its handle.
// Time complexity: O(1)
func (l *List[K, V]) PushFront(key K, value V) Handle {
	h := l.alloc(key, value)
	l.linkFront(h)
	l.size++
	return h
}

// PushBack inserts a new node at the back and returns its handle.
// Time complexity: O(1)
func (l *List[K, V]) PushBack(key K, value V) Handle {
	h := l.alloc(key, value)
	l.linkBack(h)
	l.size++
	return h
}

// Remove splices h out of the list and releases its slot.
// It is a no-op returning false if h is not live.
// Time complexity: O(1)
func (l *List[K, V]) Remove(h Handle) bool {
	if !l.live(h) {
		return false
	}
	l.unlink(h)
	l.release(h)
	l.size--
	return true
}

// RemoveKey removes the first node, scanning from the front, whose key equals key.
// Time complexity: O(n); callers holding a Handle should use Remove.
func (l *List[K, V]) RemoveKey(key K) bool {
	for h := l.head; h != 0; h = l.nodes[h].next {
		if l.nodes[h].key == key {
			return l.Remove(h)
		}
	}
	return false
}

// MoveToFront makes h the most recently used node.
// Moving the current front, or a handle that is not live, does nothing.
// Time complexity: O(1)
func (l *List[K, V]) MoveToFront(h Handle) {
	if h == l.head || !l.live(h) {
		return
	}
	l.unlink(h)
	l.linkFront(h)
}

// RemoveBack detaches the least recently used node and returns its key and value.
// ok is false if the list is empty.
// Time complexity: O(1)
func (l *List[K, V]) RemoveBack() (key K, value V, ok bool) {
	h := l.tail
	if h == 0 {
		return key, value, false
	}
	key, value = l.nodes[h].key, l.nodes[h].value
	l.Remove(h)
	return key, value, true
}

// Clear removes every node. Handles obtained before Clear are no longer live.
func (l *List[K, V]) Clear() {
	clear(l.nodes)
	if len(l.nodes) > 0 {
		l.nodes = l.nodes[:1]
	}
	l.free = l.free[:0]
	l.head, l.tail = 0, 0
	l.size = 0
}

// All yields key/value pairs from front to back.
//
// The list must not be modified while iterating, except for removing the
// node that was just yielded.
func (l *List[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for h := l.head; h != 0; {
			n := l.nodes[h]
			if !yield(n.key, n.value) {
				return
			}
			h = n.next
		}
	}
}

// Backward yields key/value pairs from back to front.
func (l *List[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for h := l.tail; h != 0; {
			n := l.nodes[h]
			if !yield(n.key, n.value) {
				return
			}
			h = n.prev
		}
	}
}

// Keys yields keys from front to back.
func (l *List[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range l.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (l *List[K, V]) live(h Handle) bool {
	return h > 0 && int(h) < len(l.nodes) && l.nodes[h].live
}

func (l *List[K, V]) alloc(key K, value V) Handle {
	n := node[K, V]{key: key, value: value, live: true}
	if last := len(l.free) - 1; last >= 0 {
		h := l.free[last]
		l.free = l.free[:last]
		l.nodes[h] = n
		return h
	}
	if len(l.nodes) == 0 {
		l.nodes = append(l.nodes, node[K, V]{})
	}
	l.nodes = append(l.nodes, n)
	return Handle(len(l.nodes) - 1)
}

// release zeroes the slot so the arena does not pin the old key and value.
func (l *List[K, V]) release(h Handle) {
	l.nodes[h] = node[K, V]{}
	l.free = append(l.free, h)
}

func (l *List[K, V]) linkFront(h Handle) {
	n := &l.nodes[h]
	n.prev = 0
	n.next = l.head
	if l.head != 0 {
		l.nodes[l.head].prev = h
	} else {
		l.tail = h
	}
	l.head = h
}

func (l *List[K, V]) linkBack(h Handle) {
	n := &l.nodes[h]
	n.next = 0
	n.prev = l.tail
	if l.tail != 0 {
		l.nodes[l.tail].next = h
	} else {
		l.head = h
	}
	l.tail = h
}

func (l *List[K, V]) unlink(h Handle) {
	n := &l.nodes[h]
	if n.prev != 0 {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != 0 {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = 0, 0
}
