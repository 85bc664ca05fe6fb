// Package core provides the lifecycle host that hooks bind to.
//
// Every hook in this repository attaches a small controller to a stateful
// component. The component embeds [StateBase], which supplies the three
// things a hook needs from its host:
//
//   - a state cell with rebuild-on-change semantics ([Managed]),
//   - cleanup that runs when the component goes away ([StateBase.OnDispose]),
//   - a stable slot that always yields the latest configured value ([Ref]).
//
// A framework mounts a state by calling [StateBase.SetRebuildNotifier] so
// that SetState can schedule a rebuild, and calls [StateBase.Dispose] when
// the component is removed. Outside a framework (for example in tests) a
// bare StateBase works as-is: SetState simply applies the mutation.
//
// # Stateful components
//
//	type counterState struct {
//	    core.StateBase
//	    count *core.Managed[int]
//	}
//
//	func (s *counterState) InitState() {
//	    s.count = core.NewManaged(s, 0)
//	}
//
// State is NOT thread-safe. Mutations must happen on the UI thread; code
// running on another goroutine schedules them with platform.Dispatch.
package core
