// Package hooks is a collection of small reusable state utilities for
// stateful components.
//
// Each hook binds a controller to a component's lifecycle: create it in
// InitState, read it in Build, and forget about cleanup — teardown is
// registered on the host automatically. The controllers wrap exactly one
// concern each:
//
//   - [UseAsync] tracks a single asynchronous operation (status, result, error)
//   - [UseClipboard] wraps the system clipboard with copy bookkeeping
//   - [UseInterval] runs a callback on a fixed period
//   - [UseDebounce] coalesces bursts of calls into one trailing invocation
//   - [UseToggle] flips a boolean state cell
//   - [UsePrevious] remembers the prior value of a changing cell
//   - [UseStoredState] persists a state cell through platform storage
//
// Hooks never panic outward and never return errors from their trigger
// actions; failures surface through controller state and optional callbacks,
// and every failure is recoverable by re-invoking the action.
package hooks
