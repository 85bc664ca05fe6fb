package hooks

import (
	stderrors "errors"
	"sync"

	"github.com/go-drift/hooks/pkg/core"
	"github.com/go-drift/hooks/pkg/errors"
	"github.com/go-drift/hooks/pkg/platform"
)

// errNoOperation settles an Execute whose controller has no operation.
var errNoOperation = stderrors.New("no operation configured")

// AsyncStatus is the lifecycle marker of an asynchronous operation.
type AsyncStatus string

const (
	// StatusIdle indicates no invocation has happened since creation or reset.
	StatusIdle AsyncStatus = "idle"

	// StatusLoading indicates an invocation is in flight.
	StatusLoading AsyncStatus = "loading"

	// StatusSuccess indicates the last invocation produced a result.
	StatusSuccess AsyncStatus = "success"

	// StatusError indicates the last invocation failed.
	StatusError AsyncStatus = "error"
)

// AsyncSnapshot is a consistent read of an AsyncController's state.
type AsyncSnapshot[T any] struct {
	Status  AsyncStatus
	Data    T
	HasData bool
	Err     error
}

type asyncConfig struct {
	immediate bool
}

// AsyncOption configures UseAsync.
type AsyncOption func(*asyncConfig)

// WithImmediate controls whether the operation runs automatically once when
// the hook is created. The default is true.
func WithImmediate(immediate bool) AsyncOption {
	return func(c *asyncConfig) {
		c.immediate = immediate
	}
}

// AsyncController tracks a single asynchronous operation: its status, its
// last result, and its last error. All three reset together at the start of
// every invocation.
//
// Read methods must be called from the UI thread; settlements arrive there
// via platform.Dispatch.
type AsyncController[T any] struct {
	base *core.StateBase
	op   *core.Ref[func() (T, error)]

	mu         sync.Mutex
	status     AsyncStatus
	data       T
	hasData    bool
	err        error
	generation uint64
	live       bool
}

// UseAsync creates an async operation tracker bound to the host's lifecycle.
// Unless disabled with WithImmediate(false), the operation is executed once
// immediately.
//
// The controller always invokes the most recently supplied operation: use
// [AsyncController.SetOperation] to swap it without recreating the hook.
// After the host is disposed, settlements from in-flight invocations are
// silently dropped.
func UseAsync[T any](s core.StateHost, op func() (T, error), opts ...AsyncOption) *AsyncController[T] {
	cfg := asyncConfig{immediate: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &AsyncController[T]{
		base:   s.State(),
		op:     core.NewRef(op),
		status: StatusIdle,
		live:   true,
	}
	c.base.OnDispose(func() {
		c.mu.Lock()
		c.live = false
		c.mu.Unlock()
	})

	if cfg.immediate {
		c.Execute()
	}
	return c
}

// SetOperation replaces the wrapped operation. In-flight invocations keep
// the operation they started with; the next Execute uses the new one.
func (c *AsyncController[T]) SetOperation(op func() (T, error)) {
	c.op.Set(op)
}

// Execute starts a new invocation of the wrapped operation.
//
// Status moves to loading and data/error are cleared synchronously, before
// the operation runs. The operation runs on its own goroutine; its
// settlement is applied on the UI thread, and only if the controller is
// still live and no newer Execute or Reset has happened in the meantime.
//
// The returned channel is closed once the settlement has been applied or
// discarded. Concurrent invocations race freely; the newest one wins.
func (c *AsyncController[T]) Execute() <-chan struct{} {
	done := make(chan struct{})

	var zero T
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.status = StatusLoading
	c.data = zero
	c.hasData = false
	c.err = nil
	c.mu.Unlock()
	c.base.SetState(nil)

	op := c.op.Get()

	go func() {
		var value T
		var failure any
		if op == nil {
			failure = errNoOperation
		} else {
			value, failure = runOperation(op)
		}

		settle := func() {
			defer close(done)

			c.mu.Lock()
			if !c.live || c.generation != gen {
				c.mu.Unlock()
				return
			}
			if failure != nil {
				c.status = StatusError
				c.err = errors.Normalize("async.Execute", errors.KindOperation, failure)
			} else {
				c.status = StatusSuccess
				c.data = value
				c.hasData = true
			}
			c.mu.Unlock()
			c.base.SetState(nil)
		}
		if !platform.Dispatch(settle) {
			settle()
		}
	}()

	return done
}

// Reset synchronously returns the controller to idle and clears data and
// error. In-flight invocations started before the reset can no longer apply
// their settlement.
func (c *AsyncController[T]) Reset() {
	var zero T
	c.mu.Lock()
	c.generation++
	c.status = StatusIdle
	c.data = zero
	c.hasData = false
	c.err = nil
	c.mu.Unlock()
	c.base.SetState(nil)
}

// Status returns the current lifecycle status.
func (c *AsyncController[T]) Status() AsyncStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Loading reports whether an invocation is in flight. It is a derived view
// of Status.
func (c *AsyncController[T]) Loading() bool {
	return c.Status() == StatusLoading
}

// Data returns the last successful result. The second return value is false
// when no result is present.
func (c *AsyncController[T]) Data() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data, c.hasData
}

// Err returns the last failure, or nil. The error is always a
// *errors.OpError; failures that were not error values keep their string
// form as the message.
func (c *AsyncController[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Snapshot returns a consistent view of status, data, and error.
func (c *AsyncController[T]) Snapshot() AsyncSnapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return AsyncSnapshot[T]{
		Status:  c.status,
		Data:    c.data,
		HasData: c.hasData,
		Err:     c.err,
	}
}

// runOperation invokes op, converting a panic into a failure value.
func runOperation[T any](op func() (T, error)) (value T, failure any) {
	defer func() {
		if r := recover(); r != nil {
			failure = r
		}
	}()
	v, err := op()
	if err != nil {
		return value, err
	}
	return v, nil
}
