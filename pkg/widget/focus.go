package widget

// Focusable is implemented by components that can own keyboard focus.
type Focusable interface {
	Component
	HasFocus() bool
	setFocus(focused bool)
}

// TraversalDirection indicates the focus traversal direction.
type TraversalDirection int

const (
	// TraversalNext moves focus to the next focusable component.
	TraversalNext TraversalDirection = iota
	// TraversalPrevious moves focus to the previous focusable component.
	TraversalPrevious
)

// FocusManager tracks which component in a tree owns keyboard focus.
type FocusManager struct {
	root    Component
	focused Focusable

	// OnFocusChange is called after focus moves, with the old and new owners.
	OnFocusChange func(from, to Component)
}

// NewFocusManager creates a manager for the tree rooted at root.
func NewFocusManager(root Component) *FocusManager {
	return &FocusManager{root: root}
}

// Focused returns the current focus owner, or nil.
func (m *FocusManager) Focused() Component {
	if m.focused == nil {
		return nil
	}
	return m.focused
}

// Candidates returns the visible, enabled focusable components in tree order.
func (m *FocusManager) Candidates() []Component {
	var out []Component
	Walk(m.root, func(c Component) bool {
		if !c.Visible() {
			return false
		}
		if _, ok := c.(Focusable); ok && c.Enabled() {
			out = append(out, c)
		}
		return true
	})
	return out
}

// TabStops returns the interactive components in tree order: text
// components, buttons and selectables. Hidden subtrees are skipped.
func (m *FocusManager) TabStops() []Component {
	var out []Component
	Walk(m.root, func(c Component) bool {
		if !c.Visible() {
			return false
		}
		if !c.Enabled() {
			return true
		}
		switch c.(type) {
		case Focusable, *Button, Selectable:
			out = append(out, c)
		}
		return true
	})
	return out
}

// Request gives focus to c. Non-focusable components clear focus.
func (m *FocusManager) Request(c Component) {
	var next Focusable
	if f, ok := c.(Focusable); ok {
		next = f
	}
	if next == m.focused {
		return
	}
	prev := m.focused
	if prev != nil {
		prev.setFocus(false)
	}
	m.focused = next
	if next != nil {
		next.setFocus(true)
	}
	if m.OnFocusChange != nil {
		var from, to Component
		if prev != nil {
			from = prev
		}
		if next != nil {
			to = next
		}
		m.OnFocusChange(from, to)
	}
}

// Traverse moves focus to the next or previous candidate, wrapping around.
func (m *FocusManager) Traverse(dir TraversalDirection) Component {
	cands := m.Candidates()
	if len(cands) == 0 {
		m.Clear()
		return nil
	}
	idx := -1
	for i, c := range cands {
		if m.focused != nil && c == Component(m.focused) {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && dir == TraversalPrevious:
		idx = len(cands) - 1
	case idx < 0:
		idx = 0
	case dir == TraversalPrevious:
		idx = (idx - 1 + len(cands)) % len(cands)
	default:
		idx = (idx + 1) % len(cands)
	}
	m.Request(cands[idx])
	return cands[idx]
}

// Clear removes focus from the current owner.
func (m *FocusManager) Clear() {
	m.Request(nil)
}
