package widget

// Frame is a top-level window with a title and a content container.
type Frame struct {
	base
	title    string
	content  Container
	windows  listeners[WindowListener]
	disposed bool
}

// NewFrame creates a frame around content.
func NewFrame(name, title string, content Container) *Frame {
	return &Frame{base: newBase("frame", name), title: title, content: content}
}

// Title returns the window title.
func (f *Frame) Title() string { return f.title }

// SetTitle updates the window title.
func (f *Frame) SetTitle(title string) { f.title = title }

// Content returns the content container.
func (f *Frame) Content() Container { return f.content }

// SetContent replaces the content container.
func (f *Frame) SetContent(c Container) { f.content = c }

// Children returns the content container as the single child.
func (f *Frame) Children() []Component {
	if f.content == nil {
		return nil
	}
	return []Component{f.content}
}

// AddWindowListener attaches l.
func (f *Frame) AddWindowListener(l WindowListener) { f.windows.add(l) }

// RemoveWindowListener detaches l.
func (f *Frame) RemoveWindowListener(l WindowListener) { f.windows.remove(l) }

// WindowListenerCount returns the number of attached window listeners.
func (f *Frame) WindowListenerCount() int { return f.windows.len() }

// Disposed reports whether the frame has been closed.
func (f *Frame) Disposed() bool { return f.disposed }

// RequestClose simulates the user clicking the window close control.
// Listeners see WindowClosing, then the frame disposes itself.
func (f *Frame) RequestClose() {
	if f.disposed {
		return
	}
	e := WindowEvent{Source: f}
	for _, l := range f.windows.snapshot() {
		l.WindowClosing(e)
	}
	f.Dispose()
}

// Dispose closes the frame programmatically. Listeners only see WindowClosed.
func (f *Frame) Dispose() {
	if f.disposed {
		return
	}
	f.disposed = true
	f.visible = false
	e := WindowEvent{Source: f}
	for _, l := range f.windows.snapshot() {
		l.WindowClosed(e)
	}
}
