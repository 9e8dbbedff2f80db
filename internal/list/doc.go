// Package list implements the recency-ordered doubly linked list behind the cache.
//
// Nodes are stored in an arena owned by the List and addressed through Handle
// values. Callers never see or touch prev/next links; every relink goes through
// PushFront, PushBack, Remove, MoveToFront or RemoveBack.
//
// Front is the most recently used end, Back the least recently used end.
//
// A List is not safe for concurrent use.
package list
