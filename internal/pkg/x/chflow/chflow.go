// Package chflow holds small generic helpers for channel operations that
// must not block past a context or at all.
package chflow

import "context"

// Receive returns the next value from ch. ok is false when ch is closed or
// ctx ends first; the value is then the zero value.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T

	select {
	case <-ctx.Done():
		return zero, false
	case v, ok := <-ch:
		return v, ok
	}
}

// TrySend delivers v only if ch can take it right away. It reports whether
// the value was delivered.
func TrySend[T any](ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	default:
		return false
	}
}
