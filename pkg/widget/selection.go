package widget

// SelectionModel tracks a contiguous selected index range.
type SelectionModel struct {
	owner     Component
	min, max  int
	adjusting bool
	listeners listeners[SelectionListener]
}

func newSelectionModel(owner Component) *SelectionModel {
	return &SelectionModel{owner: owner, min: -1, max: -1}
}

// MinSelectionIndex returns the smallest selected index, or -1.
func (m *SelectionModel) MinSelectionIndex() int { return m.min }

// MaxSelectionIndex returns the largest selected index, or -1.
func (m *SelectionModel) MaxSelectionIndex() int { return m.max }

// IsSelectionEmpty reports whether nothing is selected.
func (m *SelectionModel) IsSelectionEmpty() bool { return m.min < 0 }

// SelectedIndices returns the selected indices in ascending order.
func (m *SelectionModel) SelectedIndices() []int {
	if m.min < 0 {
		return []int{}
	}
	out := make([]int, 0, m.max-m.min+1)
	for i := m.min; i <= m.max; i++ {
		out = append(out, i)
	}
	return out
}

// ValueIsAdjusting reports whether a multi-step change is in progress.
func (m *SelectionModel) ValueIsAdjusting() bool { return m.adjusting }

// SetSelectionInterval selects [a, b] (in either order) and notifies listeners.
// A negative bound clears the selection.
func (m *SelectionModel) SetSelectionInterval(a, b int) {
	if a < 0 || b < 0 {
		m.ClearSelection()
		return
	}
	if a > b {
		a, b = b, a
	}
	if a == m.min && b == m.max {
		return
	}
	m.min, m.max = a, b
	m.fire()
}

// ClearSelection deselects everything and notifies listeners.
func (m *SelectionModel) ClearSelection() {
	if m.min < 0 {
		return
	}
	m.min, m.max = -1, -1
	m.fire()
}

// SetValueIsAdjusting marks the start or end of a multi-step change. Ending
// an adjustment notifies listeners with the settled selection.
func (m *SelectionModel) SetValueIsAdjusting(adjusting bool) {
	if m.adjusting == adjusting {
		return
	}
	m.adjusting = adjusting
	if !adjusting {
		m.fire()
	}
}

func (m *SelectionModel) fire() {
	e := SelectionEvent{Source: m.owner, Min: m.min, Max: m.max, Adjusting: m.adjusting}
	for _, l := range m.listeners.snapshot() {
		l.ValueChanged(e)
	}
}

// selectable is embedded by components that own a selection model.
type selectable struct {
	sel *SelectionModel
}

// SelectionModel returns the component's selection model.
func (s *selectable) SelectionModel() *SelectionModel { return s.sel }

// AddSelectionListener attaches l to the selection model.
func (s *selectable) AddSelectionListener(l SelectionListener) { s.sel.listeners.add(l) }

// RemoveSelectionListener detaches l from the selection model.
func (s *selectable) RemoveSelectionListener(l SelectionListener) { s.sel.listeners.remove(l) }

// SelectionListenerCount returns the number of attached selection listeners.
func (s *selectable) SelectionListenerCount() int { return s.sel.listeners.len() }

// SetSelectionInterval forwards to the selection model.
func (s *selectable) SetSelectionInterval(a, b int) { s.sel.SetSelectionInterval(a, b) }

// SelectedIndices forwards to the selection model.
func (s *selectable) SelectedIndices() []int { return s.sel.SelectedIndices() }

// Select simulates a user click on row i.
func (s *selectable) Select(i int) {
	s.sel.SetValueIsAdjusting(true)
	s.sel.SetSelectionInterval(i, i)
	s.sel.SetValueIsAdjusting(false)
}

// Drag simulates a user dragging a selection from row from to row to. Every
// intermediate step fires an adjusting event; releasing fires the final one.
func (s *selectable) Drag(from, to int) {
	s.sel.SetValueIsAdjusting(true)
	step := 1
	if to < from {
		step = -1
	}
	for i := from; ; i += step {
		s.sel.SetSelectionInterval(from, i)
		if i == to {
			break
		}
	}
	s.sel.SetValueIsAdjusting(false)
}

// Selectable is implemented by components with a selection model.
type Selectable interface {
	Component
	SelectionModel() *SelectionModel
	AddSelectionListener(l SelectionListener)
	RemoveSelectionListener(l SelectionListener)
	SetSelectionInterval(a, b int)
	SelectedIndices() []int
}
