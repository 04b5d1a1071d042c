package bind

import (
	"reflect"

	"github.com/go-drift/binder/pkg/widget"
)

// registry maps component types to values. Concrete types are looked up
// exactly; interface types are tried most specific first.
type registry[T any] struct {
	exact  map[reflect.Type]T
	ifaces []ifaceEntry[T]
}

type ifaceEntry[T any] struct {
	typ   reflect.Type
	value T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{exact: make(map[reflect.Type]T)}
}

// register adds or replaces the entry for typ.
func (r *registry[T]) register(typ reflect.Type, v T) {
	if typ.Kind() != reflect.Interface {
		r.exact[typ] = v
		return
	}
	for i, e := range r.ifaces {
		if e.typ == typ {
			r.ifaces[i].value = v
			return
		}
	}
	// An interface that embeds another is more specific and goes first.
	at := len(r.ifaces)
	for i, e := range r.ifaces {
		if typ.Implements(e.typ) {
			at = i
			break
		}
	}
	r.ifaces = append(r.ifaces, ifaceEntry[T]{})
	copy(r.ifaces[at+1:], r.ifaces[at:])
	r.ifaces[at] = ifaceEntry[T]{typ: typ, value: v}
}

func (r *registry[T]) lookup(c widget.Component) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	t := reflect.TypeOf(c)
	if v, ok := r.exact[t]; ok {
		return v, true
	}
	for _, e := range r.ifaces {
		if t.Implements(e.typ) {
			return e.value, true
		}
	}
	return zero, false
}
