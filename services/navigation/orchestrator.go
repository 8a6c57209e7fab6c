// Package navigation sequences page switches. Every location change runs a
// strictly ordered exit-then-enter cycle: the outgoing page finishes its exit
// before the incoming page mounts and starts its enter animation.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"legal_ai_site/logger"
	"legal_ai_site/services/broadcast"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound   = errors.New("navigation: no route for path")
	ErrClosed     = errors.New("navigation: orchestrator closed")
	ErrNotMounted = errors.New("navigation: no page mounted")
	// ErrSuperseded is returned by Visit when a newer navigation replaced
	// the requested page before it could be shown.
	ErrSuperseded = errors.New("navigation: superseded by a newer navigation")
)

// MountError reports a page that failed or panicked while mounting.
type MountError struct {
	Path string
	Err  error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("mount %s: %v", e.Path, e.Err)
}

func (e *MountError) Unwrap() error {
	return e.Err
}

// ErrorBoundary receives mount failures.
type ErrorBoundary func(path string, err error)

// State is a snapshot of the orchestrator.
type State struct {
	Path    string
	Phase   Phase
	Pending string
}

type Option func(*Orchestrator)

// WithErrorBoundary installs the handler for mount failures.
func WithErrorBoundary(b ErrorBoundary) Option {
	return func(o *Orchestrator) {
		o.boundary = b
	}
}

// WithObserver is called after every completed cycle with the target path
// and the mount error, if any.
func WithObserver(fn func(path string, err error)) Option {
	return func(o *Orchestrator) {
		o.observer = fn
	}
}

// Orchestrator owns the navigation state of one visitor.
type Orchestrator struct {
	table      *Table
	transition Transition
	boundary   ErrorBoundary
	observer   func(path string, err error)
	state      *broadcast.Value[State]

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	phase   Phase
	current string
	view    View
	target  *Match
	pending *Match
	failure *MountError
	idle    chan struct{}
	closed  bool
}

// New creates an idle orchestrator with nothing mounted.
func New(table *Table, transition Transition, opts ...Option) *Orchestrator {
	ctx, cancel := context.WithCancel(context.Background())
	o := &Orchestrator{
		table:      table,
		transition: transition,
		state:      broadcast.New(State{}),
		ctx:        ctx,
		cancel:     cancel,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.boundary == nil {
		o.boundary = func(path string, err error) {
			logger.WithFields(logrus.Fields{"path": path}).WithError(err).Error("page mount failed")
		}
	}
	return o
}

// States exposes state changes to subscribers.
func (o *Orchestrator) States() *broadcast.Value[State] {
	return o.state
}

// State returns the current snapshot.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

// Navigate requests a switch to path. It reports whether a cycle was started
// or retargeted; navigating to the mounted page is a no-op.
func (o *Orchestrator) Navigate(path string, payload Payload) (bool, error) {
	m, ok := o.table.Resolve(path)
	if !ok {
		return false, ErrNotFound
	}
	m.Payload = payload

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return false, ErrClosed
	}

	if o.target == nil {
		if m.Key() == o.current && o.view != nil {
			o.mu.Unlock()
			return false, nil
		}
		o.target = &m
		o.failure = nil
		o.idle = make(chan struct{})
		snap := o.snapshotLocked()
		o.mu.Unlock()

		o.state.Store(snap)
		go o.run()
		return true, nil
	}

	// A cycle is running: only the newest request survives.
	if m.Key() == o.target.Key() {
		o.pending = nil
	} else {
		o.pending = &m
	}
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.state.Store(snap)
	return true, nil
}

// Wait blocks until no cycle is running.
func (o *Orchestrator) Wait(ctx context.Context) error {
	for {
		o.mu.Lock()
		if o.target == nil {
			o.mu.Unlock()
			return nil
		}
		idle := o.idle
		o.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Visit navigates to path, waits for the orchestrator to settle and returns
// the mounted view with its key. The view is always the one for path: a
// failed mount of path returns its error and a newer navigation that won
// the race returns ErrSuperseded.
func (o *Orchestrator) Visit(ctx context.Context, path string, payload Payload) (View, string, error) {
	m, ok := o.table.Resolve(path)
	if !ok {
		return nil, "", ErrNotFound
	}
	want := m.Key()

	if _, err := o.Navigate(path, payload); err != nil {
		return nil, "", err
	}
	for {
		if err := o.Wait(ctx); err != nil {
			return nil, "", err
		}

		o.mu.Lock()
		if o.target != nil {
			// Another request started a cycle in between.
			o.mu.Unlock()
			continue
		}
		view, key, failure, closed := o.view, o.current, o.failure, o.closed
		o.mu.Unlock()

		switch {
		case closed:
			return nil, "", ErrClosed
		case view != nil && key == want:
			return view, key, nil
		case failure != nil && failure.Path == want:
			return nil, "", failure
		case view == nil && failure == nil:
			return nil, "", ErrNotMounted
		default:
			return nil, "", ErrSuperseded
		}
	}
}

// Current returns the mounted view and its key, or nil when nothing is mounted.
func (o *Orchestrator) Current() (View, string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view, o.current
}

// Close stops accepting navigation and unmounts the current page once any
// running cycle has finished.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.pending = nil
	o.mu.Unlock()

	o.cancel()
	_ = o.Wait(context.Background())

	o.mu.Lock()
	view := o.view
	o.view = nil
	o.current = ""
	o.mu.Unlock()

	if view != nil {
		view.Unmount()
	}
}

func (o *Orchestrator) run() {
	for {
		o.mu.Lock()
		m := *o.target
		oldView, oldKey := o.view, o.current
		o.phase = PhaseExiting
		snap := o.snapshotLocked()
		o.mu.Unlock()
		o.state.Store(snap)

		if oldView != nil {
			if err := o.transition.Exit(o.ctx, oldKey); err != nil {
				logger.WithFields(logrus.Fields{"path": oldKey}).WithError(err).Debug("exit animation interrupted")
			}
			oldView.Unmount()
		}

		o.mu.Lock()
		o.view = nil
		o.current = ""
		o.phase = PhaseEntering
		snap = o.snapshotLocked()
		o.mu.Unlock()
		o.state.Store(snap)

		view, err := o.mount(m)
		if err == nil {
			if enterErr := o.transition.Enter(o.ctx, m.Key()); enterErr != nil {
				logger.WithFields(logrus.Fields{"path": m.Key()}).WithError(enterErr).Debug("enter animation interrupted")
			}
		} else {
			o.boundary(m.Key(), err)
		}
		if o.observer != nil {
			o.observer(m.Key(), err)
		}

		o.mu.Lock()
		if err != nil {
			var me *MountError
			if errors.As(err, &me) {
				o.failure = me
			}
		} else {
			o.view = view
			o.current = m.Key()
		}

		next := o.pending
		o.pending = nil
		if next != nil && !o.closed && (next.Key() != o.current || o.view == nil) {
			o.target = next
			o.failure = nil
			o.mu.Unlock()
			continue
		}

		o.target = nil
		o.phase = PhaseIdle
		close(o.idle)
		snap = o.snapshotLocked()
		o.mu.Unlock()
		o.state.Store(snap)
		return
	}
}

// mount runs Page.Mount and converts errors and panics into *MountError.
func (o *Orchestrator) mount(m Match) (view View, err error) {
	defer func() {
		if r := recover(); r != nil {
			view = nil
			err = &MountError{Path: m.Key(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	view, err = m.Route.Page.Mount(o.ctx, m)
	if err != nil {
		return nil, &MountError{Path: m.Key(), Err: err}
	}
	if view == nil {
		return nil, &MountError{Path: m.Key(), Err: ErrNotMounted}
	}
	return view, nil
}

func (o *Orchestrator) snapshotLocked() State {
	s := State{Path: o.current, Phase: o.phase}
	if o.pending != nil {
		s.Pending = o.pending.Key()
	}
	return s
}
