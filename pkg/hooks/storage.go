package hooks

import (
	"encoding/json"

	"github.com/go-drift/hooks/pkg/core"
	"github.com/go-drift/hooks/pkg/errors"
	"github.com/go-drift/hooks/pkg/platform"
)

// StoredState is a state cell persisted through platform storage.
// Values are JSON-encoded under the hook's key.
type StoredState[T any] struct {
	key     string
	initial T
	value   *core.Managed[T]
}

// UseStoredState creates a persisted state cell bound to the host's
// lifecycle. A value already stored under key seeds the cell; otherwise the
// cell starts at initial. Persistence is best-effort: storage failures are
// reported to the global error handler and never surface to the caller.
func UseStoredState[T any](s core.StateHost, key string, initial T) *StoredState[T] {
	st := &StoredState[T]{key: key, initial: initial}

	seed := initial
	raw, present, err := platform.Storage.GetString(key)
	switch {
	case err != nil:
		errors.Report(errors.Normalize("storage.load", errors.KindPlatform, err))
	case present:
		var decoded T
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			errors.Report(errors.Normalize("storage.load", errors.KindParsing, err))
		} else {
			seed = decoded
		}
	}

	st.value = core.NewManaged(s, seed)
	return st
}

// Value returns the current value.
func (s *StoredState[T]) Value() T {
	return s.value.Value()
}

// Set updates the cell and writes the value through to platform storage.
func (s *StoredState[T]) Set(value T) {
	s.value.Set(value)

	data, err := json.Marshal(value)
	if err != nil {
		errors.Report(errors.Normalize("storage.save", errors.KindParsing, err))
		return
	}
	if err := platform.Storage.SetString(s.key, string(data)); err != nil {
		errors.Report(errors.Normalize("storage.save", errors.KindPlatform, err))
	}
}

// Update applies a transformation to the current value and persists the
// result.
func (s *StoredState[T]) Update(transform func(T) T) {
	s.Set(transform(s.value.Value()))
}

// Clear removes the stored value and returns the cell to its initial value.
func (s *StoredState[T]) Clear() {
	s.value.Set(s.initial)
	if err := platform.Storage.Remove(s.key); err != nil {
		errors.Report(errors.Normalize("storage.clear", errors.KindPlatform, err))
	}
}
