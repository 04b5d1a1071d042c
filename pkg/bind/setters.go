package bind

import (
	"fmt"
	"reflect"
	"sort"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/go-drift/binder/pkg/errors"
	"github.com/go-drift/binder/pkg/widget"
)

// Property names a settable component property.
type Property string

const (
	PropEnabled   Property = "enabled"
	PropVisible   Property = "visible"
	PropText      Property = "text"
	PropTitle     Property = "title"
	PropEditable  Property = "editable"
	PropSelection Property = "selection"
	PropItems     Property = "items"
)

// Setter applies a value to one property of a component.
type Setter func(v any)

// Setters maps property names to setters. Properties a component does not
// support are absent.
type Setters map[Property]Setter

// Has reports whether p is supported.
func (s Setters) Has(p Property) bool {
	_, ok := s[p]
	return ok
}

// Properties returns the supported property names, sorted.
func (s Setters) Properties() []Property {
	out := make([]Property, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Set applies v to p. An unsupported property yields a KindProperty error
// naming the closest supported property.
func (s Setters) Set(p Property, v any) error {
	set, ok := s[p]
	if !ok {
		return &errors.BindError{
			Op:   "bind.Setters.Set",
			Kind: errors.KindProperty,
			Err:  &errors.PropertyError{Property: string(p), Suggestion: s.suggest(p)},
		}
	}
	set(v)
	return nil
}

// suggest returns the supported property nearest to p by edit distance, if
// it is within half the length of the longer name.
func (s Setters) suggest(p Property) string {
	best, bestDist := "", -1
	for _, cand := range s.Properties() {
		d := levenshtein.ComputeDistance(string(p), string(cand))
		if bestDist < 0 || d < bestDist {
			best, bestDist = string(cand), d
		}
	}
	if best == "" {
		return ""
	}
	limit := max(len(p), len(best)) / 2
	if limit < 1 {
		limit = 1
	}
	if bestDist > limit {
		return ""
	}
	return best
}

func registerDefaultSetters(b *Binder) {
	RegisterSetters(b, func(b *Binder, c *widget.Button, s Setters) {
		s[PropText] = func(v any) { c.SetText(toText(v)) }
	})
	RegisterSetters(b, func(b *Binder, c *widget.Frame, s Setters) {
		s[PropTitle] = func(v any) { c.SetTitle(toText(v)) }
	})
	RegisterSetters(b, func(b *Binder, c *widget.Label, s Setters) {
		s[PropText] = func(v any) { c.SetText(toText(v)) }
	})
	RegisterSetters(b, func(b *Binder, c *widget.List, s Setters) {
		s[PropSelection] = func(v any) { b.selectIndex(c, toIndex(v)) }
		s[PropItems] = func(v any) {
			c.SetItems(toItems(v))
			r := c.VisibleRange()
			c.RepaintRange(r.First, r.Last)
		}
	})
	RegisterSetters(b, func(b *Binder, c *widget.Table, s Setters) {
		s[PropSelection] = func(v any) { b.selectIndex(c, toIndex(v)) }
		s[PropItems] = func(v any) {
			c.SetRows(toRows(v))
			c.Redraw()
		}
	})
	RegisterSetters(b, func(b *Binder, c widget.Container, s Setters) {})
	RegisterSetters(b, func(b *Binder, c widget.TextComponent, s Setters) {
		s[PropEditable] = func(v any) { c.SetEditable(toBool(v)) }
		s[PropText] = func(v any) { b.setTextSilently(c, toText(v)) }
	})
}

// SelectIndex selects the single row index of c without notifying the
// listener Bind attached to it.
func (b *Binder) SelectIndex(c widget.Selectable, index int) {
	b.checkThread("bind.selection", c)
	b.selectIndex(c, index)
}

func (b *Binder) selectIndex(c widget.Selectable, index int) {
	b.WithoutListener(c, func() {
		c.SetSelectionInterval(index, index)
	})
}

// SetTextSilently replaces the content of c without notifying the listener
// Bind attached to it. The write is skipped while c has focus so text the
// user is typing is never clobbered. The caret keeps its position, clamped
// to the new content.
func (b *Binder) SetTextSilently(c widget.TextComponent, text string) {
	b.checkThread("bind.text", c)
	b.setTextSilently(c, text)
}

func (b *Binder) setTextSilently(c widget.TextComponent, text string) {
	if c.HasFocus() {
		return
	}
	caret := c.Caret()
	b.WithoutListener(c, func() {
		c.SetText(text)
	})
	c.SetCaret(min(utf8.RuneCountInString(text), caret))
}

// toBool treats nil as false and any other non-bool value as true.
func toBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case *bool:
		return x != nil && *x
	default:
		return true
	}
}

func toText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// toIndex accepts a single index or an index sequence (first element). Empty
// or unusable values select row 0.
func toIndex(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case int32:
		return int(x)
	case float64:
		return int(x)
	case []int:
		if len(x) > 0 {
			return x[0]
		}
	case []any:
		if len(x) > 0 {
			return toIndex(x[0])
		}
	}
	return 0
}

func toItems(v any) []any {
	switch x := v.(type) {
	case nil:
		return []any{}
	case []any:
		return x
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// toRows accepts [][]any, [][]string, or a sequence of items that are each
// turned into a row.
func toRows(v any) [][]any {
	switch x := v.(type) {
	case nil:
		return [][]any{}
	case [][]any:
		return x
	case [][]string:
		out := make([][]any, len(x))
		for i, row := range x {
			out[i] = toItems(row)
		}
		return out
	}
	items := toItems(v)
	out := make([][]any, len(items))
	for i, item := range items {
		rv := reflect.ValueOf(item)
		if item != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			out[i] = toItems(item)
		} else {
			out[i] = []any{item}
		}
	}
	return out
}
