// Package tui hosts a bound component tree in a terminal program. The
// program's update loop is the UI thread: every key press is turned into a
// native interaction on the focused component, and the events the binding
// layer emits are echoed back into the tree through property setters.
package tui

import (
	stderrors "errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/binder/cmd/binder/internal/session"
	"github.com/go-drift/binder/pkg/bind"
	"github.com/go-drift/binder/pkg/errors"
	"github.com/go-drift/binder/pkg/event"
	"github.com/go-drift/binder/pkg/widget"
)

// StatusLabel is the name of the label that receives echoed events.
const StatusLabel = "status"

// logLines is the number of events kept in the log pane.
const logLines = 6

// DispatchMsg runs a callback inside Update.
type DispatchMsg func()

// Model is the bubbletea model wrapping a session.
type Model struct {
	s      *session.Session
	styles styles
	cursor int
	log    []string
	closed bool
	err    error
}

// New creates a model over s.
func New(s *session.Session) *Model {
	m := &Model{s: s, styles: newStyles(s.Settings.Theme)}
	m.focusStop(0)
	return m
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error { return m.err }

// Log returns the echoed event lines, oldest first.
func (m *Model) Log() []string { return m.log }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	model = m
	defer errors.RecoverWithCallback("tui.Update", func(r any) {
		m.err = fmt.Errorf("panic in update: %v", r)
		cmd = tea.Quit
	})

	switch msg := msg.(type) {
	case DispatchMsg:
		msg()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.key(msg)
	}

	for _, e := range m.s.Drain() {
		m.echo(e)
	}
	if m.closed {
		return m, tea.Quit
	}
	return m, nil
}

// stops returns the components reachable with tab.
func (m *Model) stops() []widget.Component {
	return m.s.Focus.TabStops()
}

// Current returns the component under the cursor, or nil.
func (m *Model) Current() widget.Component {
	stops := m.stops()
	if len(stops) == 0 {
		return nil
	}
	return stops[m.cursor%len(stops)]
}

func (m *Model) focusStop(i int) {
	stops := m.stops()
	if len(stops) == 0 {
		m.cursor = 0
		m.s.Focus.Clear()
		return
	}
	m.cursor = (i%len(stops) + len(stops)) % len(stops)
	m.s.Focus.Request(stops[m.cursor])
}

type userSelectable interface {
	widget.Selectable
	Select(i int)
}

func (m *Model) key(msg tea.KeyMsg) {
	switch msg.String() {
	case "tab":
		m.focusStop(m.cursor + 1)
		return
	case "shift+tab":
		m.focusStop(m.cursor - 1)
		return
	case "esc":
		if f, ok := m.s.Root.(*widget.Frame); ok {
			f.RequestClose()
		} else {
			m.closed = true
		}
		return
	}

	switch c := m.Current().(type) {
	case *widget.Button:
		if msg.String() == "enter" || msg.String() == " " {
			c.Click()
		}
	case widget.TextComponent:
		switch {
		case msg.Type == tea.KeyBackspace:
			c.Backspace()
		case msg.Type == tea.KeyEnter:
			if _, multi := c.(*widget.TextArea); multi {
				c.Type("\n")
			}
		case msg.Type == tea.KeySpace:
			c.Type(" ")
		case msg.Type == tea.KeyRunes:
			c.Type(string(msg.Runes))
		}
	case userSelectable:
		m.moveSelection(c, msg.String())
	}
}

func (m *Model) moveSelection(c userSelectable, key string) {
	n := rowCount(c)
	if n == 0 {
		return
	}
	cur := c.SelectionModel().MinSelectionIndex()
	switch key {
	case "up", "k":
		cur--
	case "down", "j":
		cur++
	default:
		return
	}
	if cur < 0 {
		cur = 0
	}
	if cur >= n {
		cur = n - 1
	}
	c.Select(cur)
}

func rowCount(c widget.Component) int {
	switch c := c.(type) {
	case *widget.List:
		return len(c.Items())
	case *widget.Table:
		return len(c.Rows())
	}
	return 0
}

// echo records e and reflects it into the status label.
func (m *Model) echo(e event.Event) {
	m.log = append(m.log, e.String())
	if len(m.log) > logLines {
		m.log = m.log[len(m.log)-logLines:]
	}
	if e.Kind == event.KindClose {
		m.closed = true
		return
	}
	if status := widget.Find(m.s.Root, StatusLabel); status != nil {
		var be *errors.BindError
		if err := m.s.Binder.SetterFns(status).Set(bind.PropText, e.String()); stderrors.As(err, &be) {
			if be.Component == "" {
				be.Component = status.Name()
			}
			errors.Report(be)
		}
	}
}
