package widget

// TextComponent is implemented by editable-text components.
type TextComponent interface {
	Component
	Focusable
	Document() *Document
	Text() string
	SetText(text string)
	Caret() int
	SetCaret(pos int)
	Editable() bool
	SetEditable(editable bool)
	// Type inserts s at the caret as if the user typed it.
	Type(s string)
	// Backspace deletes the rune before the caret as if the user pressed it.
	Backspace()
}

// textBase carries the state shared by TextField and TextArea.
type textBase struct {
	base
	doc      Document
	caret    int
	editable bool
	focused  bool
}

func newTextBase(kind, name, text string) textBase {
	t := textBase{base: newBase(kind, name), editable: true}
	t.doc.text = []rune(text)
	t.caret = len(t.doc.text)
	return t
}

// Document returns the backing document.
func (t *textBase) Document() *Document { return &t.doc }

// Text returns the full content.
func (t *textBase) Text() string { return t.doc.Text() }

// SetText replaces the full content. Like a native toolkit this is a remove
// followed by an insert, and the caret ends up after the inserted text.
func (t *textBase) SetText(text string) {
	t.doc.Replace(0, t.doc.Len(), text)
	t.caret = t.doc.Len()
}

// Caret returns the caret position in runes.
func (t *textBase) Caret() int { return t.caret }

// SetCaret moves the caret, clamped to the content bounds.
func (t *textBase) SetCaret(pos int) { t.caret = clamp(pos, 0, t.doc.Len()) }

// Editable reports whether the user may change the content.
func (t *textBase) Editable() bool { return t.editable }

// SetEditable toggles user editing.
func (t *textBase) SetEditable(editable bool) { t.editable = editable }

// HasFocus reports whether the component owns keyboard focus.
func (t *textBase) HasFocus() bool { return t.focused }

func (t *textBase) setFocus(focused bool) { t.focused = focused }

func (t *textBase) acceptsInput() bool {
	return t.editable && t.enabled
}

// Type simulates the user typing s at the caret.
func (t *textBase) Type(s string) {
	if !t.acceptsInput() {
		return
	}
	t.doc.Insert(t.caret, s)
	t.caret = clamp(t.caret+len([]rune(s)), 0, t.doc.Len())
}

// Backspace simulates the user deleting the rune before the caret.
func (t *textBase) Backspace() {
	if !t.acceptsInput() || t.caret == 0 {
		return
	}
	t.doc.Remove(t.caret-1, 1)
	t.caret--
}

// TextField is a single-line editable-text component.
type TextField struct {
	textBase
}

// NewTextField creates a text field holding text.
func NewTextField(name, text string) *TextField {
	return &TextField{textBase: newTextBase("textfield", name, text)}
}

// TextArea is a multi-line editable-text component.
type TextArea struct {
	textBase
}

// NewTextArea creates a text area holding text.
func NewTextArea(name, text string) *TextArea {
	return &TextArea{textBase: newTextBase("textarea", name, text)}
}

// Append simulates the user typing s at the end of the content.
func (t *TextArea) Append(s string) {
	t.caret = t.doc.Len()
	t.Type(s)
}

// Lines returns the number of lines of content.
func (t *TextArea) Lines() int {
	n := 1
	for _, r := range t.doc.text {
		if r == '\n' {
			n++
		}
	}
	return n
}
