package core

// Disposable is anything that needs cleanup when its owner goes away.
type Disposable interface {
	Dispose()
}

// UseController creates a controller and registers it for automatic disposal.
// The controller will be disposed when the state is disposed.
//
// Example:
//
//	func (s *myState) InitState() {
//	    s.fetch = core.UseController(s, func() *myFetchController {
//	        return newMyFetchController()
//	    })
//	}
func UseController[C Disposable](s StateHost, create func() C) C {
	base := s.State()
	controller := create()
	base.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// UseListenable subscribes to a listenable and triggers rebuilds.
// The subscription is automatically cleaned up when the state is disposed.
func UseListenable(s StateHost, listenable Listenable) {
	base := s.State()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// UseObservable subscribes to an observable and triggers rebuilds when it changes.
// Call this once in InitState(). The subscription is automatically cleaned up
// when the state is disposed.
func UseObservable[T any](s StateHost, obs *Observable[T]) {
	base := s.State()
	unsub := obs.AddListener(func(T) {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}
