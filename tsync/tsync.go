// Package tsync contains type-safe wrappers around functionality from the sync packages in the standard library.
package tsync

import "sync/atomic"

// Value is a type-safe version of an atomic.Value. Unlike atomic.Value, a Value may hold interface values of
// differing dynamic types across successive Stores.
type Value[T any] struct {
	v atomic.Value
}

// box keeps the concrete type stored in the underlying atomic.Value constant.
type box[T any] struct {
	val T
}

// Store sets the value held by v. Store may be called concurrently with Load.
func (v *Value[T]) Store(val T) {
	v.v.Store(box[T]{val: val})
}

// Load returns the value most recently stored in v. The ok result is false if no Store has occurred.
func (v *Value[T]) Load() (val T, ok bool) {
	b, ok := v.v.Load().(box[T])
	if !ok {
		return val, false
	}
	return b.val, true
}
