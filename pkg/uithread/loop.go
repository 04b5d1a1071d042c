package uithread

import (
	"context"
	"sync"

	"github.com/go-drift/binder/pkg/errors"
)

// Loop runs posted callbacks one at a time, in submission order, on a
// single goroutine.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	ready   chan struct{}
	done    chan struct{}
	stopped bool
}

// NewLoop creates a loop. Call Run to start processing.
func NewLoop() *Loop {
	return &Loop{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Post enqueues fn without blocking. Returns false once the loop is stopped.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
	select {
	case l.ready <- struct{}{}:
	default:
	}
	return true
}

// Do runs fn on the loop and waits for it to finish. Called from the loop
// itself, fn runs inline.
func (l *Loop) Do(fn func()) bool {
	if Claimed() && OnThread() {
		fn()
		return true
	}
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return false
	}
	select {
	case <-finished:
		return true
	case <-l.done:
		return false
	}
}

// Install registers the loop as the package dispatch target.
func (l *Loop) Install() {
	RegisterDispatch(func(cb func()) { l.Post(cb) })
}

// Run claims the calling goroutine as the UI thread and processes callbacks
// until ctx is done or Stop is called. Panics in callbacks are reported and
// do not stop the loop.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)
	release := Enter()
	defer release()

	for {
		l.mu.Lock()
		batch := l.pending
		l.pending = nil
		stopped := l.stopped
		l.mu.Unlock()

		for _, fn := range batch {
			l.run(fn)
		}
		if stopped {
			return
		}
		if len(batch) > 0 {
			continue
		}

		select {
		case <-l.ready:
		case <-ctx.Done():
			l.Stop()
		}
	}
}

func (l *Loop) run(fn func()) {
	defer errors.Recover("uithread.Loop")
	fn()
}

// Stop stops accepting callbacks. Callbacks already posted still run.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()
	select {
	case l.ready <- struct{}{}:
	default:
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
