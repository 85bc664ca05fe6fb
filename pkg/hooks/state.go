package hooks

import "github.com/go-drift/hooks/pkg/core"

// Toggle is a boolean state cell with flip semantics.
type Toggle struct {
	value *core.Managed[bool]
}

// UseToggle creates a toggle bound to the host's lifecycle.
func UseToggle(s core.StateHost, initial bool) *Toggle {
	return &Toggle{value: core.NewManaged(s, initial)}
}

// Value returns the current state.
func (t *Toggle) Value() bool {
	return t.value.Value()
}

// Toggle flips the state.
func (t *Toggle) Toggle() {
	t.value.Update(func(v bool) bool { return !v })
}

// Set stores the given state.
func (t *Toggle) Set(v bool) {
	t.value.Set(v)
}

// SetTrue sets the state to true.
func (t *Toggle) SetTrue() {
	t.value.Set(true)
}

// SetFalse sets the state to false.
func (t *Toggle) SetFalse() {
	t.value.Set(false)
}

// Previous tracks the prior value of a changing cell.
type Previous[T any] struct {
	base    *core.StateBase
	current T
	prev    T
	hasPrev bool
}

// UsePrevious creates a previous-value tracker seeded with initial.
func UsePrevious[T any](s core.StateHost, initial T) *Previous[T] {
	return &Previous[T]{
		base:    s.State(),
		current: initial,
	}
}

// Update stores a new current value; the old current value becomes the
// previous one.
func (p *Previous[T]) Update(value T) {
	p.base.SetState(func() {
		p.prev = p.current
		p.hasPrev = true
		p.current = value
	})
}

// Current returns the most recently stored value.
func (p *Previous[T]) Current() T {
	return p.current
}

// Previous returns the value stored before the current one. The second
// return value is false until Update has been called at least once.
func (p *Previous[T]) Previous() (T, bool) {
	return p.prev, p.hasPrev
}
