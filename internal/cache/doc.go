// Package cache implements a fixed-capacity, in-memory least-recently-used cache.
//
// Goals for this package:
//   - Make the core data structures explicit (map index + doubly linked list)
//   - Provide O(1) Put/Get/Delete via the index and list handles
//   - Keep the index and the list in lock-step after every operation
//   - Evict exactly one least-recently-used entry when a Put overflows capacity
//
// Cache does no locking of its own. Callers that share one across goroutines
// must hold a single exclusive lock for each whole operation, or use Locked.
package cache
