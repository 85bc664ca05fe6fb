package core

import "sync"

// Managed holds a value and triggers rebuilds when it changes.
// It is tied to a specific StateBase.
//
// Managed is NOT thread-safe. It must only be accessed from the UI thread.
// To update from a background goroutine, use platform.Dispatch:
//
//	go func() {
//	    result := doExpensiveWork()
//	    platform.Dispatch(func() {
//	        s.data.Set(result) // Safe - runs on UI thread
//	    })
//	}()
type Managed[T any] struct {
	base  *StateBase
	value T
}

// NewManaged creates a new managed state value.
// Changes to this value will automatically trigger a rebuild.
func NewManaged[T any](s StateHost, initial T) *Managed[T] {
	return &Managed[T]{
		base:  s.State(),
		value: initial,
	}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value and triggers a rebuild.
func (m *Managed[T]) Set(value T) {
	m.value = value
	m.base.SetState(nil)
}

// Update applies a transformation to the current value and triggers a rebuild.
func (m *Managed[T]) Update(transform func(T) T) {
	m.value = transform(m.value)
	m.base.SetState(nil)
}

// Ref is a mutable single-slot holder with stable identity.
//
// A hook stores its configured callback in a Ref and reads it at invocation
// time, so the controller never closes over a stale version of the callback:
// reconfiguring the hook replaces the slot contents, not the controller.
//
// Unlike Managed, replacing the value does not trigger a rebuild, and Ref is
// safe for concurrent use: the slot may be read from a background goroutine
// while the UI thread replaces it.
type Ref[T any] struct {
	mu    sync.Mutex
	value T
}

// NewRef creates a reference holding the given initial value.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{value: initial}
}

// Get returns the current value.
func (r *Ref[T]) Get() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Set replaces the current value.
func (r *Ref[T]) Set(value T) {
	r.mu.Lock()
	r.value = value
	r.mu.Unlock()
}
