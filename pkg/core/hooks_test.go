package core

import "testing"

// mockDisposable for testing UseController
type mockDisposable struct {
	disposed bool
}

func (m *mockDisposable) Dispose() {
	m.disposed = true
}

func TestUseController(t *testing.T) {
	base := &StateBase{}

	controller := UseController(base, func() *mockDisposable {
		return &mockDisposable{}
	})

	if controller.disposed {
		t.Error("Controller should not be disposed initially")
	}

	base.Dispose()

	if !controller.disposed {
		t.Error("Controller should be disposed when StateBase is disposed")
	}
}

func TestUseListenable(t *testing.T) {
	base := &StateBase{}
	notifier := NewNotifier()

	UseListenable(base, notifier)

	if notifier.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", notifier.ListenerCount())
	}

	rebuilds := 0
	base.SetRebuildNotifier(func() { rebuilds++ })
	notifier.Notify()

	if rebuilds != 1 {
		t.Errorf("Expected 1 rebuild from notification, got %d", rebuilds)
	}

	base.Dispose()

	if notifier.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after dispose, got %d", notifier.ListenerCount())
	}
}

func TestUseObservable(t *testing.T) {
	base := &StateBase{}
	obs := NewObservable(42)

	UseObservable(base, obs)

	if obs.Value() != 42 {
		t.Errorf("Expected 42, got %d", obs.Value())
	}

	rebuilds := 0
	base.SetRebuildNotifier(func() { rebuilds++ })
	obs.Set(100)

	if rebuilds != 1 {
		t.Errorf("Expected 1 rebuild from observable change, got %d", rebuilds)
	}
}

func TestUseObservable_Cleanup(t *testing.T) {
	base := &StateBase{}
	obs := NewObservable(0)

	UseObservable(base, obs)

	base.Dispose()

	if obs.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after dispose, got %d", obs.ListenerCount())
	}

	// After dispose, setting the observable should not panic
	obs.Set(999)
}

func TestManaged_Value(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 42)

	if state.Value() != 42 {
		t.Errorf("Expected 42, got %d", state.Value())
	}
}

func TestManaged_SetTriggersRebuild(t *testing.T) {
	base := &StateBase{}
	rebuilds := 0
	base.SetRebuildNotifier(func() { rebuilds++ })
	state := NewManaged(base, 0)

	state.Set(100)

	if state.Value() != 100 {
		t.Errorf("Expected 100, got %d", state.Value())
	}
	if rebuilds != 1 {
		t.Errorf("Expected 1 rebuild, got %d", rebuilds)
	}
}

func TestManaged_Update(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 10)

	state.Update(func(v int) int { return v * 2 })

	if state.Value() != 20 {
		t.Errorf("Expected 20, got %d", state.Value())
	}
}

func TestRef_LatestValueWins(t *testing.T) {
	ref := NewRef(func() string { return "old" })

	read := ref.Get()
	if read() != "old" {
		t.Errorf("Expected 'old', got %q", read())
	}

	ref.Set(func() string { return "new" })

	if ref.Get()() != "new" {
		t.Errorf("Expected 'new' after replacement, got %q", ref.Get()())
	}
}

func TestObservable_Unsubscribe(t *testing.T) {
	obs := NewObservable("a")
	seen := 0
	unsub := obs.AddListener(func(string) { seen++ })

	obs.Set("b")
	unsub()
	obs.Set("c")

	if seen != 1 {
		t.Errorf("Expected 1 notification, got %d", seen)
	}
}
