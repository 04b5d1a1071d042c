package widget

// Component is a node in the visual tree.
type Component interface {
	// Name returns the stable identifier used as event source id.
	Name() string
	// Kind returns the type tag (e.g. "button", "list").
	Kind() string

	Enabled() bool
	SetEnabled(enabled bool)
	Visible() bool
	SetVisible(visible bool)
}

// Container is a component with ordered children.
type Container interface {
	Component
	Children() []Component
}

// base provides the common component state.
type base struct {
	name    string
	kind    string
	enabled bool
	visible bool
}

func newBase(kind, name string) base {
	return base{name: name, kind: kind, enabled: true, visible: true}
}

func (b *base) Name() string { return b.name }
func (b *base) Kind() string { return b.kind }

func (b *base) Enabled() bool           { return b.enabled }
func (b *base) SetEnabled(enabled bool) { b.enabled = enabled }
func (b *base) Visible() bool           { return b.visible }
func (b *base) SetVisible(visible bool) { b.visible = visible }

// Walk visits c and all of its descendants depth-first, in child order.
// Returning false from fn skips the children of that component.
func Walk(c Component, fn func(Component) bool) {
	if c == nil || !fn(c) {
		return
	}
	if ct, ok := c.(Container); ok {
		for _, child := range ct.Children() {
			Walk(child, fn)
		}
	}
}

// Find returns the first component named name in the tree rooted at c.
func Find(c Component, name string) Component {
	var found Component
	Walk(c, func(n Component) bool {
		if found != nil {
			return false
		}
		if n.Name() == name {
			found = n
			return false
		}
		return true
	})
	return found
}
