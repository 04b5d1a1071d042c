package widget

// ActionEvent describes an activation of an action-trigger component.
type ActionEvent struct {
	Source  Component
	Command string
}

// ActionListener is notified when a button fires.
type ActionListener interface {
	ActionPerformed(e ActionEvent)
}

// WindowEvent describes a frame lifecycle change.
type WindowEvent struct {
	Source *Frame
}

// WindowListener is notified about frame close requests and disposal.
type WindowListener interface {
	// WindowClosing is called when the user asks the frame to close.
	WindowClosing(e WindowEvent)
	// WindowClosed is called after the frame has been disposed.
	WindowClosed(e WindowEvent)
}

// SelectionEvent reports the selection state of a list or table after a change.
type SelectionEvent struct {
	Source Component
	// Min and Max are the selected index bounds, or -1 when nothing is selected.
	Min, Max int
	// Adjusting is true while a multi-step adjustment (e.g. a drag) is in progress.
	Adjusting bool
}

// SelectionListener is notified when a selection model changes.
type SelectionListener interface {
	ValueChanged(e SelectionEvent)
}

// DocumentEventType identifies a document mutation.
type DocumentEventType int

const (
	DocumentInsert DocumentEventType = iota
	DocumentRemove
	DocumentChange
)

func (t DocumentEventType) String() string {
	switch t {
	case DocumentInsert:
		return "insert"
	case DocumentRemove:
		return "remove"
	default:
		return "change"
	}
}

// DocumentEvent describes a mutation of a text document.
type DocumentEvent struct {
	Document *Document
	Type     DocumentEventType
	Offset   int
	Length   int
}

// DocumentListener is notified about document mutations.
type DocumentListener interface {
	InsertUpdate(e DocumentEvent)
	RemoveUpdate(e DocumentEvent)
	ChangedUpdate(e DocumentEvent)
}

// listeners keeps registered listeners in attachment order. Listener values
// must be comparable (pointer receivers) so they can be removed by identity.
type listeners[T comparable] struct {
	items []T
}

func (l *listeners[T]) add(v T) {
	l.items = append(l.items, v)
}

func (l *listeners[T]) remove(v T) bool {
	for i, item := range l.items {
		if item == v {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *listeners[T]) len() int {
	return len(l.items)
}

// snapshot returns a copy so listeners may detach themselves while firing.
func (l *listeners[T]) snapshot() []T {
	if len(l.items) == 0 {
		return nil
	}
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
