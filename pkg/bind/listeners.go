package bind

import (
	"github.com/go-drift/binder/pkg/event"
	"github.com/go-drift/binder/pkg/widget"
)

type actionListener struct {
	b      *Binder
	source string
	sink   event.Sink
}

func (l *actionListener) ActionPerformed(widget.ActionEvent) {
	l.b.emit(l.sink, l.source, event.KindAction)
}

// closeListener reports user close requests only; disposal is programmatic
// and not observed.
type closeListener struct {
	b      *Binder
	source string
	sink   event.Sink
}

func (l *closeListener) WindowClosing(widget.WindowEvent) {
	l.b.emit(l.sink, l.source, event.KindClose)
}

func (l *closeListener) WindowClosed(widget.WindowEvent) {}

// selectionListener reports settled selections. Intermediate states of a
// multi-step adjustment are swallowed.
type selectionListener struct {
	b      *Binder
	source string
	sink   event.Sink
}

func (l *selectionListener) ValueChanged(e widget.SelectionEvent) {
	if e.Adjusting {
		return
	}
	l.b.emit(l.sink, l.source, event.KindSelection, event.WithPayload(ToRange(e.Min, e.Max)))
}

// documentListener reports the full text after any content change.
type documentListener struct {
	b      *Binder
	c      widget.TextComponent
	source string
	sink   event.Sink
}

func (l *documentListener) InsertUpdate(widget.DocumentEvent)  { l.changed() }
func (l *documentListener) RemoveUpdate(widget.DocumentEvent)  { l.changed() }
func (l *documentListener) ChangedUpdate(widget.DocumentEvent) { l.changed() }

func (l *documentListener) changed() {
	l.b.emit(l.sink, l.source, event.KindText,
		event.WithAction(event.ActionUpdate),
		event.WithPayload(l.c.Text()))
}

func registerDefaultBinds(b *Binder) {
	RegisterBind(b, func(b *Binder, c *widget.Button, sink event.Sink) {
		l := &actionListener{b: b, source: c.Name(), sink: sink}
		b.store(c, &attachment{
			listener: l,
			attach:   func() { c.AddActionListener(l) },
			detach:   func() { c.RemoveActionListener(l) },
		})
	})
	RegisterBind(b, func(b *Binder, c *widget.Frame, sink event.Sink) {
		l := &closeListener{b: b, source: c.Name(), sink: sink}
		b.store(c, &attachment{
			listener: l,
			attach:   func() { c.AddWindowListener(l) },
			detach:   func() { c.RemoveWindowListener(l) },
		})
		if content := c.Content(); content != nil {
			b.Bind(content, sink)
		}
	})
	RegisterBind(b, func(b *Binder, c widget.Selectable, sink event.Sink) {
		l := &selectionListener{b: b, source: c.Name(), sink: sink}
		b.store(c, &attachment{
			listener: l,
			attach:   func() { c.AddSelectionListener(l) },
			detach:   func() { c.RemoveSelectionListener(l) },
		})
	})
	RegisterBind(b, func(b *Binder, c *widget.ScrollPane, sink event.Sink) {
		if view := c.View(); view != nil {
			b.Bind(view, sink)
		}
	})
	RegisterBind(b, func(b *Binder, c widget.Container, sink event.Sink) {
		b.BindChildren(c, sink)
	})
	RegisterBind(b, func(b *Binder, c widget.TextComponent, sink event.Sink) {
		l := &documentListener{b: b, c: c, source: c.Name(), sink: sink}
		doc := c.Document()
		b.store(c, &attachment{
			listener: l,
			attach:   func() { doc.AddDocumentListener(l) },
			detach:   func() { doc.RemoveDocumentListener(l) },
		})
	})
}

func registerDefaults(b *Binder) {
	registerDefaultSetters(b)
	registerDefaultBinds(b)
}
