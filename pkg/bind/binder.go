package bind

import (
	stderrors "errors"
	"fmt"
	"io"
	"reflect"

	"github.com/go-drift/binder/pkg/errors"
	"github.com/go-drift/binder/pkg/event"
	"github.com/go-drift/binder/pkg/uithread"
	"github.com/go-drift/binder/pkg/widget"
)

// Options configures a Binder.
type Options struct {
	// CheckThread reports a KindThread error whenever a binding operation
	// runs off the claimed UI thread.
	CheckThread bool
	// Trace, when set, receives one line per emitted event.
	Trace io.Writer
}

// SetterFunc adds the type-specific properties of c to s.
type SetterFunc func(b *Binder, c widget.Component, s Setters)

// BindFunc attaches the type-specific listeners of c, pushing events to sink.
type BindFunc func(b *Binder, c widget.Component, sink event.Sink)

// Binder owns the capability and listener-wiring tables and the side
// table of attached listeners.
type Binder struct {
	opts    Options
	slots   *Slots
	setters *registry[SetterFunc]
	binders *registry[BindFunc]
}

// New creates a Binder with the built-in widget kinds registered.
func New(opts Options) *Binder {
	b := NewEmpty(opts)
	registerDefaults(b)
	return b
}

// NewEmpty creates a Binder with no registered kinds.
func NewEmpty(opts Options) *Binder {
	return &Binder{
		opts:    opts,
		slots:   newSlots(),
		setters: newRegistry[SetterFunc](),
		binders: newRegistry[BindFunc](),
	}
}

// Default is the Binder used by the package-level functions.
var Default = New(Options{})

// SetterFns returns the setters of c using Default.
func SetterFns(c widget.Component) Setters {
	return Default.SetterFns(c)
}

// Bind wires c using Default.
func Bind(c widget.Component, sink event.Sink) {
	Default.Bind(c, sink)
}

// RegisterSetters registers fn as the setter builder for components of type C.
// C may be a concrete type or an interface.
func RegisterSetters[C widget.Component](b *Binder, fn func(b *Binder, c C, s Setters)) {
	b.setters.register(reflect.TypeOf((*C)(nil)).Elem(), func(b *Binder, c widget.Component, s Setters) {
		fn(b, c.(C), s)
	})
}

// RegisterBind registers fn as the listener wiring for components of type C.
// C may be a concrete type or an interface.
func RegisterBind[C widget.Component](b *Binder, fn func(b *Binder, c C, sink event.Sink)) {
	b.binders.register(reflect.TypeOf((*C)(nil)).Elem(), func(b *Binder, c widget.Component, sink event.Sink) {
		fn(b, c.(C), sink)
	})
}

// Slots exposes the side table of attached listeners.
func (b *Binder) Slots() *Slots {
	return b.slots
}

// SetterFns returns a fresh map of property setters for c. Every supported
// component gets enabled and visible; unsupported components get an empty map.
// With CheckThread set, each setter reports a KindThread error named
// "bind.<property>" when it runs off the UI thread.
func (b *Binder) SetterFns(c widget.Component) Setters {
	fn, ok := b.setters.lookup(c)
	if !ok {
		return Setters{}
	}
	s := Setters{
		PropEnabled: func(v any) { c.SetEnabled(toBool(v)) },
		PropVisible: func(v any) { c.SetVisible(toBool(v)) },
	}
	fn(b, c, s)
	for p, set := range s {
		set := set
		op := "bind." + string(p)
		s[p] = func(v any) {
			b.checkThread(op, c)
			set(v)
		}
	}
	return s
}

// Bind attaches listeners to c and, for containers, to its descendants.
// Unsupported components are ignored. A nil sink discards events.
func (b *Binder) Bind(c widget.Component, sink event.Sink) {
	fn, ok := b.binders.lookup(c)
	if !ok {
		return
	}
	if sink == nil {
		sink = event.Discard
	}
	b.checkThread("bind.Bind", c)
	fn(b, c, sink)
}

// BindChildren binds every child of c in order.
func (b *Binder) BindChildren(c widget.Container, sink event.Sink) {
	for _, child := range c.Children() {
		b.Bind(child, sink)
	}
}

// Unbind detaches every listener Bind attached to c and its descendants.
func (b *Binder) Unbind(c widget.Component) {
	widget.Walk(c, func(n widget.Component) bool {
		if a, ok := b.slots.remove(n); ok {
			a.detach()
		}
		return true
	})
}

// store attaches a and records it as the primary listener of c, detaching
// any listener a previous Bind left behind.
func (b *Binder) store(c widget.Component, a *attachment) {
	if old, ok := b.slots.get(c); ok {
		old.detach()
	}
	a.attach()
	b.slots.put(c, a)
}

func (b *Binder) emit(sink event.Sink, source string, kind event.Kind, opts ...event.Option) {
	e := event.New(source, kind, opts...)
	if b.opts.Trace != nil {
		fmt.Fprintf(b.opts.Trace, "bind: %s\n", e)
	}
	sink.Push(e)
}

func (b *Binder) checkThread(op string, c widget.Component) {
	if !b.opts.CheckThread {
		return
	}
	var be *errors.BindError
	if err := uithread.AssertOnThread(op, c.Name()); stderrors.As(err, &be) {
		errors.Report(be)
	}
}
