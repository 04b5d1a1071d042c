package tui

import (
	stderrors "errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/binder/cmd/binder/internal/session"
	"github.com/go-drift/binder/pkg/errors"
	"github.com/go-drift/binder/pkg/widget"
)

type fixture struct {
	m      *Model
	name   *widget.TextField
	people *widget.List
	ok     *widget.Button
	status *widget.Label
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		name:   widget.NewTextField("name", ""),
		people: widget.NewList("people", []any{"a", "b", "c"}),
		ok:     widget.NewButton("ok", "OK"),
		status: widget.NewLabel(StatusLabel, ""),
	}
	root := widget.NewFrame("main", "Main", widget.NewPanel("body", f.name, f.people, f.ok, f.status))
	f.m = New(session.New(root, nil, nil))
	return f
}

func (f *fixture) press(keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = f.m.Update(k)
	}
	return cmd
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestStartsOnFirstStop(t *testing.T) {
	f := newFixture(t)
	if f.m.Current() != widget.Component(f.name) {
		t.Errorf("Current() = %v, want name", f.m.Current())
	}
	if !f.name.HasFocus() {
		t.Error("name does not have focus")
	}
}

func TestTypingEchoesToStatus(t *testing.T) {
	f := newFixture(t)
	f.press(runes("hi"), key(tea.KeySpace), key(tea.KeyBackspace))

	if f.name.Text() != "hi" {
		t.Errorf("name = %q, want %q", f.name.Text(), "hi")
	}
	if want := `name text/update "hi"`; f.status.Text() != want {
		t.Errorf("status = %q, want %q", f.status.Text(), want)
	}
	if got := len(f.m.Log()); got != 3 {
		t.Errorf("log has %d lines, want 3", got)
	}
}

func TestSelectionKeys(t *testing.T) {
	f := newFixture(t)
	f.press(key(tea.KeyTab), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyUp))

	if got := f.people.SelectedIndices(); len(got) != 1 || got[0] != 1 {
		t.Errorf("selection = %v, want [1]", got)
	}
	if f.name.HasFocus() {
		t.Error("name kept focus after tab")
	}
	if want := "people selection [1]"; f.status.Text() != want {
		t.Errorf("status = %q, want %q", f.status.Text(), want)
	}
}

func TestButtonAndShiftTab(t *testing.T) {
	f := newFixture(t)
	f.press(key(tea.KeyShiftTab), key(tea.KeyShiftTab))
	if f.m.Current() != widget.Component(f.people) {
		t.Fatalf("Current() = %v, want people", f.m.Current())
	}
	f.press(key(tea.KeyTab), key(tea.KeyEnter))
	if want := "ok action"; f.status.Text() != want {
		t.Errorf("status = %q, want %q", f.status.Text(), want)
	}
}

func TestEscClosesFrame(t *testing.T) {
	f := newFixture(t)
	cmd := f.press(key(tea.KeyEsc))
	if cmd == nil {
		t.Fatal("esc did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not return tea.Quit")
	}
	log := f.m.Log()
	if len(log) != 1 || log[0] != "main close" {
		t.Errorf("log = %v, want [main close]", log)
	}
}

func TestDispatchMsg(t *testing.T) {
	f := newFixture(t)
	f.m.Update(DispatchMsg(func() { f.ok.Click() }))
	if want := "ok action"; f.status.Text() != want {
		t.Errorf("status = %q, want %q", f.status.Text(), want)
	}
}

type errorLog []*errors.BindError

func (l *errorLog) HandleError(err *errors.BindError) { *l = append(*l, err) }
func (l *errorLog) HandlePanic(*errors.PanicError)    {}

func TestEchoToStatusWithoutTextReportsOnce(t *testing.T) {
	var log errorLog
	errors.SetHandler(&log)
	defer errors.SetHandler(nil)

	ok := widget.NewButton("ok", "OK")
	status := widget.NewList(StatusLabel, nil)
	m := New(session.New(widget.NewPanel("body", ok, status), nil, nil))
	m.Update(DispatchMsg(func() { ok.Click() }))

	if len(log) != 1 {
		t.Fatalf("reported %d errors, want 1", len(log))
	}
	got := log[0]
	if got.Op != "bind.Setters.Set" || got.Kind != errors.KindProperty || got.Component != StatusLabel {
		t.Errorf("reported %+v, want bind.Setters.Set property error on status", got)
	}
	var pe *errors.PropertyError
	if !stderrors.As(got.Err, &pe) || pe.Property != "text" {
		t.Errorf("Err = %v, want PropertyError for text", got.Err)
	}
	var inner *errors.BindError
	if stderrors.As(got.Err, &inner) {
		t.Errorf("error wraps another BindError: %v", inner)
	}
}

func TestPanicInUpdateQuits(t *testing.T) {
	f := newFixture(t)
	_, cmd := f.m.Update(DispatchMsg(func() { panic("boom") }))
	if cmd == nil {
		t.Fatal("panic did not quit")
	}
	if err := f.m.Err(); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Err() = %v, want boom", err)
	}
}

func TestView(t *testing.T) {
	f := newFixture(t)
	f.press(runes("x"))
	v := f.m.View()
	for _, want := range []string{"Main", "[ OK ]", "a", "name text/update"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q:\n%s", want, v)
		}
	}
}
