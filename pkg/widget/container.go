package widget

// Panel is a plain container.
type Panel struct {
	base
	children []Component
}

// NewPanel creates a panel holding children in order.
func NewPanel(name string, children ...Component) *Panel {
	p := &Panel{base: newBase("panel", name)}
	p.Add(children...)
	return p
}

// Add appends children, skipping nil values.
func (p *Panel) Add(children ...Component) {
	for _, c := range children {
		if c != nil {
			p.children = append(p.children, c)
		}
	}
}

// Remove detaches child from the panel.
func (p *Panel) Remove(child Component) {
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i:i], p.children[i+1:]...)
			return
		}
	}
}

// Children returns the panel children in order.
func (p *Panel) Children() []Component { return p.children }

// ScrollPane is a viewport that shows a single viewed component.
type ScrollPane struct {
	base
	view Component
}

// NewScrollPane wraps view in a viewport.
func NewScrollPane(name string, view Component) *ScrollPane {
	return &ScrollPane{base: newBase("scroll", name), view: view}
}

// View returns the viewed component.
func (s *ScrollPane) View() Component { return s.view }

// SetView replaces the viewed component.
func (s *ScrollPane) SetView(view Component) { s.view = view }

// Children returns the viewed component as the single child.
func (s *ScrollPane) Children() []Component {
	if s.view == nil {
		return nil
	}
	return []Component{s.view}
}
