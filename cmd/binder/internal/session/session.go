// Package session builds a scene, binds it and collects its events for the
// CLI commands.
package session

import (
	"fmt"
	"io"

	"github.com/go-drift/binder/pkg/bind"
	"github.com/go-drift/binder/pkg/config"
	"github.com/go-drift/binder/pkg/event"
	"github.com/go-drift/binder/pkg/scene"
	"github.com/go-drift/binder/pkg/widget"
)

// Session is a bound component tree.
type Session struct {
	Settings *config.Settings
	Root     widget.Component
	Binder   *bind.Binder
	Focus    *widget.FocusManager

	events *event.Fanout
	queue  *event.Queue
	log    io.Writer
}

// Open loads the scene at path and binds it. log, when non-nil, receives
// trace lines and warnings.
func Open(path string, settings *config.Settings, log io.Writer) (*Session, error) {
	doc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	root, err := scene.NewRegistry().Build(doc)
	if err != nil {
		return nil, err
	}
	return New(root, settings, log), nil
}

// New binds root.
func New(root widget.Component, settings *config.Settings, log io.Writer) *Session {
	if settings == nil {
		settings = (&config.Config{}).Settings()
	}
	opts := bind.Options{CheckThread: settings.CheckThread}
	if settings.Verbose {
		opts.Trace = log
	}
	s := &Session{
		Settings: settings,
		Root:     root,
		Binder:   bind.New(opts),
		Focus:    widget.NewFocusManager(root),
		events:   &event.Fanout{},
		queue:    event.NewQueue(),
		log:      log,
	}
	s.events.Listen(s.queue.Push)
	s.Binder.Bind(root, s.events)
	return s
}

// Listen registers h for every emitted event, in addition to the queue.
func (s *Session) Listen(h event.Handler) *event.Subscription {
	return s.events.Listen(h)
}

// Drain returns the events emitted since the last call.
func (s *Session) Drain() []event.Event {
	if n := s.queue.Len(); n > s.Settings.WarnLen && s.log != nil {
		fmt.Fprintf(s.log, "binder: event backlog %d exceeds %d\n", n, s.Settings.WarnLen)
	}
	return s.queue.Drain()
}

// Find returns the component named name.
func (s *Session) Find(name string) (widget.Component, error) {
	c := widget.Find(s.Root, name)
	if c == nil {
		return nil, fmt.Errorf("no component named %q", name)
	}
	return c, nil
}

// Set applies a property through the component's setter map.
func (s *Session) Set(name string, prop bind.Property, v any) error {
	c, err := s.Find(name)
	if err != nil {
		return err
	}
	return s.Binder.SetterFns(c).Set(prop, v)
}

// Close detaches every listener and closes the queue.
func (s *Session) Close() {
	s.Binder.Unbind(s.Root)
	s.queue.Close()
}
