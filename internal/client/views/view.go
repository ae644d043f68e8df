package views

import (
	"context"
	"errors"
	"sync"
	"time"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

type Route string

const (
	RouteLogin    Route = "login"
	RouteRegister Route = "register"
	RouteUsers    Route = "users"
)

var (
	ErrBusy             = errors.New("another request is in flight")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrNoSelection      = errors.New("no user selected")
	ErrEmptyUpdate      = errors.New("nothing to update")
	ErrCancelled        = errors.New("cancelled by user")
)

// Navigator changes the active route. It may be called from a timer
// goroutine.
type Navigator interface {
	Navigate(route Route)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string) bool
}

// Status is what a view currently shows.
type Status struct {
	State   State
	Error   string
	Success string
}

type display struct {
	mu     sync.Mutex
	status Status
}

func (d *display) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// begin moves to submitting unless a request is already running.
func (d *display) begin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.status.State == StateSubmitting {
		return ErrBusy
	}
	d.status = Status{State: StateSubmitting}
	return nil
}

func (d *display) succeed(msg string) {
	d.mu.Lock()
	d.status = Status{State: StateSucceeded, Success: msg}
	d.mu.Unlock()
}

func (d *display) fail(msg string) {
	d.mu.Lock()
	d.status = Status{State: StateFailed, Error: msg}
	d.mu.Unlock()
}

func (d *display) update(fn func(*Status)) {
	d.mu.Lock()
	fn(&d.status)
	d.mu.Unlock()
}

// Timer is the part of *time.Timer the views use.
type Timer interface {
	Stop() bool
}

// afterFunc is a test seam for time.AfterFunc.
var afterFunc = func(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// timers tracks pending delayed actions by name. Scheduling a name again
// replaces the earlier action.
type timers struct {
	mu      sync.Mutex
	pending map[string]Timer
	closed  bool
}

func (t *timers) schedule(name string, d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	if t.pending == nil {
		t.pending = make(map[string]Timer)
	}
	if old, ok := t.pending[name]; ok {
		old.Stop()
	}
	t.pending[name] = afterFunc(d, fn)
}

func (t *timers) cancel(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if old, ok := t.pending[name]; ok {
		old.Stop()
		delete(t.pending, name)
	}
}

// reset cancels everything pending; later schedules still run.
func (t *timers) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// stopAll cancels everything pending and refuses later schedules.
func (t *timers) stopAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.stopLocked()
}

func (t *timers) stopLocked() {
	for name, tm := range t.pending {
		tm.Stop()
		delete(t.pending, name)
	}
}

// Delays configures the delayed actions of the views.
type Delays struct {
	Redirect time.Duration
	Close    time.Duration
	Clear    time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Redirect: 2 * time.Second,
		Close:    1500 * time.Millisecond,
		Clear:    3 * time.Second,
	}
}
