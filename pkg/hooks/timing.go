package hooks

import (
	"sync"
	"time"

	"github.com/go-drift/hooks/pkg/core"
	"github.com/go-drift/hooks/pkg/platform"
)

// IntervalController runs a callback on a fixed period.
// Callbacks run on the UI thread via platform.Dispatch when a dispatcher is
// registered, inline on the timer goroutine otherwise.
type IntervalController struct {
	interval time.Duration
	fn       *core.Ref[func()]

	mu     sync.Mutex
	active bool
	stop   chan struct{}
}

// UseInterval creates an interval bound to the host's lifecycle and starts
// it. The interval is stopped automatically when the host is disposed.
// A non-positive interval never fires.
func UseInterval(s core.StateHost, interval time.Duration, fn func()) *IntervalController {
	c := &IntervalController{
		interval: interval,
		fn:       core.NewRef(fn),
	}
	s.State().OnDispose(c.Stop)
	c.Start()
	return c
}

// SetCallback replaces the callback. The next tick uses the new one.
func (c *IntervalController) SetCallback(fn func()) {
	c.fn.Set(fn)
}

// Start activates the interval. Starting an active interval is a no-op.
func (c *IntervalController) Start() {
	c.mu.Lock()
	if c.active || c.interval <= 0 {
		c.mu.Unlock()
		return
	}
	c.active = true
	stop := make(chan struct{})
	c.stop = stop
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn := c.fn.Get()
				if fn == nil {
					continue
				}
				if !platform.Dispatch(fn) {
					fn()
				}
			case <-stop:
				return
			}
		}
	}()
}

// Stop deactivates the interval. Stopping an inactive interval is a no-op.
func (c *IntervalController) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return
	}
	c.active = false
	close(c.stop)
}

// IsActive returns whether the interval is currently running.
func (c *IntervalController) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Debouncer coalesces bursts of calls into a single trailing invocation.
type Debouncer struct {
	delay time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	pending  func()
	disposed bool
}

// UseDebounce creates a debouncer bound to the host's lifecycle. A pending
// invocation is canceled when the host is disposed.
func UseDebounce(s core.StateHost, delay time.Duration) *Debouncer {
	d := &Debouncer{delay: delay}
	s.State().OnDispose(func() {
		d.mu.Lock()
		d.disposed = true
		d.mu.Unlock()
		d.Cancel()
	})
	return d
}

// Call schedules fn to run after the debounce delay, replacing any pending
// invocation. Only the last call of a burst fires.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed {
		return
	}
	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// fire runs the pending invocation, on the UI thread when possible.
func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if fn == nil {
		return
	}
	if !platform.Dispatch(fn) {
		fn()
	}
}

// Flush runs the pending invocation immediately, if there is one.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.fire()
}

// Cancel drops the pending invocation, if there is one.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// Pending reports whether an invocation is waiting to fire.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}
