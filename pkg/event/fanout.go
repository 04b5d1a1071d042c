package event

import (
	"sync"
	"sync/atomic"
)

// Handler receives events from a Fanout.
type Handler func(e Event)

// Subscription represents an active Fanout listener.
type Subscription struct {
	fanout   *Fanout
	handler  Handler
	canceled atomic.Bool
}

// Cancel stops receiving events on this subscription.
func (s *Subscription) Cancel() {
	if s.canceled.CompareAndSwap(false, true) {
		s.fanout.remove(s)
	}
}

// IsCanceled returns true if this subscription has been canceled.
func (s *Subscription) IsCanceled() bool {
	return s.canceled.Load()
}

// Fanout is a Sink that hands each event to every subscriber synchronously,
// in subscription order. Handlers must not block.
type Fanout struct {
	mu            sync.Mutex
	subscriptions []*Subscription
}

// Listen subscribes h to every subsequent event.
func (f *Fanout) Listen(h Handler) *Subscription {
	sub := &Subscription{fanout: f, handler: h}
	f.mu.Lock()
	f.subscriptions = append(f.subscriptions, sub)
	f.mu.Unlock()
	return sub
}

func (f *Fanout) remove(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.subscriptions {
		if s == sub {
			f.subscriptions = append(f.subscriptions[:i], f.subscriptions[i+1:]...)
			return
		}
	}
}

// Push sends e to all active subscribers.
func (f *Fanout) Push(e Event) {
	f.mu.Lock()
	subs := make([]*Subscription, len(f.subscriptions))
	copy(subs, f.subscriptions)
	f.mu.Unlock()

	for _, sub := range subs {
		if !sub.IsCanceled() && sub.handler != nil {
			sub.handler(e)
		}
	}
}
