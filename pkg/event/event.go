// Package event defines the outbound event record produced by the binding
// layer and the channels that carry it to application code.
package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies what sort of user interaction an event describes.
type Kind string

const (
	// KindAction is emitted when an action-trigger component fires.
	KindAction Kind = "action"
	// KindSelection is emitted when a list or table selection settles.
	KindSelection Kind = "selection"
	// KindText is emitted when the content of an editable-text component changes.
	KindText Kind = "text"
	// KindClose is emitted when the user asks a frame to close.
	KindClose Kind = "close"
)

// Action qualifies an event kind. Most events carry ActionNone.
type Action string

const (
	// ActionNone means the event has no action qualifier.
	ActionNone Action = ""
	// ActionUpdate marks a content update.
	ActionUpdate Action = "update"
)

// Event is an immutable record of one user interaction.
type Event struct {
	// ID uniquely identifies the event for log correlation.
	ID string
	// Source is the name of the component the interaction happened on.
	Source string
	// Kind is the interaction category.
	Kind Kind
	// Action optionally qualifies Kind.
	Action Action
	// Payload is a selection index sequence ([]int), the full text (string), or nil.
	Payload any
	// Time is when the event was constructed.
	Time time.Time
}

// Option customizes an event under construction.
type Option func(*Event)

// WithAction sets the action qualifier.
func WithAction(a Action) Option {
	return func(e *Event) { e.Action = a }
}

// WithPayload sets the payload.
func WithPayload(p any) Option {
	return func(e *Event) { e.Payload = p }
}

// New builds an event from a source id and kind.
func New(source string, kind Kind, opts ...Option) Event {
	e := Event{
		ID:     uuid.NewString(),
		Source: source,
		Kind:   kind,
		Time:   time.Now(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Selection returns the payload as an index sequence.
func (e Event) Selection() ([]int, bool) {
	s, ok := e.Payload.([]int)
	return s, ok
}

// Text returns the payload as text.
func (e Event) Text() (string, bool) {
	s, ok := e.Payload.(string)
	return s, ok
}

// String renders the event in a compact single-line form.
func (e Event) String() string {
	s := string(e.Kind)
	if e.Action != ActionNone {
		s += "/" + string(e.Action)
	}
	if e.Payload == nil {
		return fmt.Sprintf("%s %s", e.Source, s)
	}
	if text, ok := e.Payload.(string); ok {
		return fmt.Sprintf("%s %s %q", e.Source, s, text)
	}
	return fmt.Sprintf("%s %s %v", e.Source, s, e.Payload)
}
