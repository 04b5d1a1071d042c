package widget

// Button is an action-trigger component.
type Button struct {
	base
	text    string
	actions listeners[ActionListener]
}

// NewButton creates a button with the given label.
func NewButton(name, text string) *Button {
	return &Button{base: newBase("button", name), text: text}
}

// Text returns the button label.
func (b *Button) Text() string { return b.text }

// SetText updates the button label.
func (b *Button) SetText(text string) { b.text = text }

// AddActionListener attaches l.
func (b *Button) AddActionListener(l ActionListener) { b.actions.add(l) }

// RemoveActionListener detaches l.
func (b *Button) RemoveActionListener(l ActionListener) { b.actions.remove(l) }

// ActionListenerCount returns the number of attached action listeners.
func (b *Button) ActionListenerCount() int { return b.actions.len() }

// Click simulates a user activation. Disabled buttons ignore clicks.
func (b *Button) Click() {
	if !b.enabled {
		return
	}
	e := ActionEvent{Source: b, Command: b.text}
	for _, l := range b.actions.snapshot() {
		l.ActionPerformed(e)
	}
}

// Label is a static text component.
type Label struct {
	base
	text string
}

// NewLabel creates a label.
func NewLabel(name, text string) *Label {
	return &Label{base: newBase("label", name), text: text}
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText updates the label text.
func (l *Label) SetText(text string) { l.text = text }
