package bind

import (
	"sync"

	"github.com/go-drift/binder/pkg/widget"
)

// attachment is the primary listener attached to one component, together
// with the native calls that attach and detach it.
type attachment struct {
	listener any
	attach   func()
	detach   func()
}

// Slots is the side table mapping a component to its attached primary
// listener. Components are keyed by identity.
type Slots struct {
	mu    sync.Mutex
	slots map[widget.Component]*attachment
}

func newSlots() *Slots {
	return &Slots{slots: make(map[widget.Component]*attachment)}
}

func (s *Slots) get(c widget.Component) (*attachment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.slots[c]
	return a, ok
}

func (s *Slots) put(c widget.Component, a *attachment) {
	s.mu.Lock()
	s.slots[c] = a
	s.mu.Unlock()
}

func (s *Slots) remove(c widget.Component) (*attachment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.slots[c]
	if ok {
		delete(s.slots, c)
	}
	return a, ok
}

// Listener returns the primary listener stored for c.
func (s *Slots) Listener(c widget.Component) (any, bool) {
	a, ok := s.get(c)
	if !ok {
		return nil, false
	}
	return a.listener, true
}

// Len returns the number of components with an attached listener.
func (s *Slots) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}
