package bind

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/binder/pkg/errors"
	"github.com/go-drift/binder/pkg/event"
	"github.com/go-drift/binder/pkg/uithread"
	"github.com/go-drift/binder/pkg/widget"
)

// unknownWidget is a component type no registry knows about.
type unknownWidget struct {
	name    string
	enabled bool
}

func (u *unknownWidget) Name() string      { return u.name }
func (u *unknownWidget) Kind() string      { return "unknown" }
func (u *unknownWidget) Enabled() bool     { return u.enabled }
func (u *unknownWidget) SetEnabled(v bool) { u.enabled = v }
func (u *unknownWidget) Visible() bool     { return true }
func (u *unknownWidget) SetVisible(bool)   {}

func supportedComponents() []widget.Component {
	return []widget.Component{
		widget.NewButton("button", "OK"),
		widget.NewFrame("frame", "Title", widget.NewPanel("content")),
		widget.NewLabel("label", "text"),
		widget.NewList("list", nil),
		widget.NewTable("table", nil, nil),
		widget.NewPanel("panel"),
		widget.NewScrollPane("scroll", nil),
		widget.NewTextField("field", ""),
		widget.NewTextArea("area", ""),
	}
}

func TestSetterFnsAlwaysHasEnabledAndVisible(t *testing.T) {
	b := New(Options{})
	for _, c := range supportedComponents() {
		s := b.SetterFns(c)
		require.True(t, s.Has(PropEnabled), "%s should support enabled", c.Kind())
		require.True(t, s.Has(PropVisible), "%s should support visible", c.Kind())
	}
}

func TestSetterFnsUnsupportedType(t *testing.T) {
	b := New(Options{})
	s := b.SetterFns(&unknownWidget{name: "x"})
	require.NotNil(t, s)
	require.Empty(t, s)
	require.Empty(t, b.SetterFns(nil))
}

func TestSetterFnsPerKind(t *testing.T) {
	b := New(Options{})
	tests := []struct {
		c    widget.Component
		want []Property
	}{
		{widget.NewButton("b", ""), []Property{PropEnabled, PropText, PropVisible}},
		{widget.NewFrame("f", "", nil), []Property{PropEnabled, PropTitle, PropVisible}},
		{widget.NewLabel("l", ""), []Property{PropEnabled, PropText, PropVisible}},
		{widget.NewList("l", nil), []Property{PropEnabled, PropItems, PropSelection, PropVisible}},
		{widget.NewTable("t", nil, nil), []Property{PropEnabled, PropItems, PropSelection, PropVisible}},
		{widget.NewPanel("p"), []Property{PropEnabled, PropVisible}},
		{widget.NewScrollPane("s", nil), []Property{PropEnabled, PropVisible}},
		{widget.NewTextField("t", ""), []Property{PropEditable, PropEnabled, PropText, PropVisible}},
		{widget.NewTextArea("t", ""), []Property{PropEditable, PropEnabled, PropText, PropVisible}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, b.SetterFns(tt.c).Properties(), tt.c.Kind())
	}
}

func TestSetterFnsFreshMap(t *testing.T) {
	b := New(Options{})
	l := widget.NewLabel("l", "")
	first := b.SetterFns(l)
	delete(first, PropText)
	require.True(t, b.SetterFns(l).Has(PropText))
}

func TestEnabledVisibleNilIsFalse(t *testing.T) {
	b := New(Options{})
	for _, c := range supportedComponents() {
		s := b.SetterFns(c)
		s[PropEnabled](nil)
		s[PropVisible](nil)
		require.False(t, c.Enabled(), "%s enabled", c.Kind())
		require.False(t, c.Visible(), "%s visible", c.Kind())

		s[PropEnabled](true)
		require.True(t, c.Enabled())
	}
}

func TestTextAndTitleSetters(t *testing.T) {
	b := New(Options{})
	btn := widget.NewButton("b", "old")
	frame := widget.NewFrame("f", "old", nil)
	label := widget.NewLabel("l", "old")

	b.SetterFns(btn)[PropText]("Save")
	b.SetterFns(frame)[PropTitle](42)
	b.SetterFns(label)[PropText](nil)

	require.Equal(t, "Save", btn.Text())
	require.Equal(t, "42", frame.Title())
	require.Equal(t, "", label.Text())
}

func TestTextSetterDoesNotEcho(t *testing.T) {
	b := New(Options{})
	var rec event.Recorder
	tf := widget.NewTextField("name", "")
	b.Bind(tf, &rec)

	b.SetterFns(tf)[PropText]("hello")

	require.Equal(t, "hello", tf.Text())
	require.Zero(t, rec.Len(), "programmatic text write must not emit")
	require.Equal(t, 1, tf.Document().DocumentListenerCount(), "listener must be reattached")

	tf.SetCaret(5)
	tf.Type("!")
	require.Equal(t, 1, rec.Len())
	e := rec.Events()[0]
	require.Equal(t, event.KindText, e.Kind)
	require.Equal(t, event.ActionUpdate, e.Action)
	require.Equal(t, "hello!", e.Payload)
	require.Equal(t, "name", e.Source)
}

func TestTextSetterSkippedWhileFocused(t *testing.T) {
	b := New(Options{})
	tf := widget.NewTextField("name", "typing")
	fm := widget.NewFocusManager(tf)
	fm.Request(tf)

	b.SetterFns(tf)[PropText]("clobber")

	require.Equal(t, "typing", tf.Text())
}

func TestTextSetterClampsCaret(t *testing.T) {
	b := New(Options{})
	tf := widget.NewTextField("name", "a long line of text")
	tf.SetCaret(12)

	b.SetterFns(tf)[PropText]("short")
	require.Equal(t, 5, tf.Caret())

	tf.SetCaret(2)
	b.SetterFns(tf)[PropText]("much longer text")
	require.Equal(t, 2, tf.Caret(), "caret keeps its position when it fits")
}

func TestEditableSetter(t *testing.T) {
	b := New(Options{})
	ta := widget.NewTextArea("notes", "")
	s := b.SetterFns(ta)

	s[PropEditable](false)
	require.False(t, ta.Editable())
	s[PropEditable](nil)
	require.False(t, ta.Editable())
	s[PropEditable](true)
	require.True(t, ta.Editable())
}

func TestSelectionSetterRoundTrip(t *testing.T) {
	b := New(Options{})
	var rec event.Recorder
	list := widget.NewList("fruit", []any{"a", "b", "c", "d"})
	b.Bind(list, &rec)

	b.SetterFns(list)[PropSelection](2)

	m := list.SelectionModel()
	require.Equal(t, []int{2}, ToRange(m.MinSelectionIndex(), m.MaxSelectionIndex()))
	require.Zero(t, rec.Len(), "programmatic selection must not emit")
	require.Equal(t, 1, list.SelectionListenerCount())
}

func TestSelectionSetterDefaults(t *testing.T) {
	b := New(Options{})
	tests := []struct {
		in   any
		want []int
	}{
		{nil, []int{0}},
		{[]int{}, []int{0}},
		{[]int{3, 4}, []int{3}},
		{[]any{1}, []int{1}},
		{int64(2), []int{2}},
		{"nonsense", []int{0}},
	}
	for _, tt := range tests {
		table := widget.NewTable("t", []string{"c"}, nil)
		b.SetterFns(table)[PropSelection](tt.in)
		require.Equal(t, tt.want, table.SelectedIndices(), "input %#v", tt.in)
	}
}

func TestItemsSetters(t *testing.T) {
	b := New(Options{})

	list := widget.NewList("l", nil)
	list.SetVisibleRows(2)
	b.SetterFns(list)[PropItems]([]string{"x", "y", "z"})
	require.Equal(t, []any{"x", "y", "z"}, list.Items())
	require.Equal(t, []widget.Range{{First: 0, Last: 1}}, list.Repaints())

	table := widget.NewTable("t", []string{"name", "age"}, nil)
	b.SetterFns(table)[PropItems]([][]string{{"ann", "30"}})
	require.Equal(t, [][]any{{"ann", "30"}}, table.Rows())
	require.Equal(t, 1, table.RedrawCount())

	b.SetterFns(table)[PropItems](nil)
	require.Empty(t, table.Rows())
	require.Equal(t, 2, table.RedrawCount())
}

func TestSettersSet(t *testing.T) {
	b := New(Options{})
	s := b.SetterFns(widget.NewFrame("f", "", nil))

	require.NoError(t, s.Set(PropTitle, "ok"))

	err := s.Set("titel", "x")
	var be *errors.BindError
	require.True(t, stderrors.As(err, &be))
	require.Equal(t, errors.KindProperty, be.Kind)
	var pe *errors.PropertyError
	require.True(t, stderrors.As(err, &pe))
	require.Equal(t, "title", pe.Suggestion)

	err = s.Set("items", nil)
	require.True(t, stderrors.As(err, &pe))
	require.Empty(t, pe.Suggestion)
}

func TestSettersSetOnEmptyMap(t *testing.T) {
	err := Setters{}.Set(PropText, "x")
	var pe *errors.PropertyError
	require.True(t, stderrors.As(err, &pe))
	require.Empty(t, pe.Suggestion)
}

func TestBindUnsupportedIsNoop(t *testing.T) {
	b := New(Options{})
	var rec event.Recorder
	b.Bind(&unknownWidget{name: "x"}, &rec)
	b.Bind(widget.NewLabel("l", ""), &rec)
	b.Bind(nil, &rec)
	require.Zero(t, b.Slots().Len())
}

func TestBindButton(t *testing.T) {
	b := New(Options{})
	var rec event.Recorder
	btn := widget.NewButton("save", "Save")
	b.Bind(btn, &rec)

	btn.Click()

	require.Equal(t, 1, rec.Len())
	e := rec.Events()[0]
	require.Equal(t, "save", e.Source)
	require.Equal(t, event.KindAction, e.Kind)
	require.Equal(t, event.ActionNone, e.Action)
	require.Nil(t, e.Payload)
}

func TestBindFrameClose(t *testing.T) {
	b := New(Options{})
	var rec event.Recorder
	frame := widget.NewFrame("main", "Main", widget.NewPanel("content"))
	b.Bind(frame, &rec)

	frame.RequestClose()
	frame.RequestClose()

	require.Equal(t, 1, rec.Len())
	require.Equal(t, event.KindClose, rec.Events()[0].Kind)
	require.Equal(t, "main", rec.Events()[0].Source)
}

func TestBindFrameProgrammaticCloseIsSilent(t *testing.T) {
	b := New(Options{})
	var rec event.Recorder
	frame := widget.NewFrame("main", "Main", nil)
	b.Bind(frame, &rec)

	frame.Dispose()

	require.Zero(t, rec.Len())
}

func TestBindSelection(t *testing.T) {
	b := New(Options{})
	var rec event.Recorder
	list := widget.NewList("n", []any{0, 1, 2, 3, 4, 5})
	b.Bind(list, &rec)

	list.Drag(2, 4)
	list.SelectionModel().ClearSelection()

	events := rec.Events()
	require.Len(t, events, 2, "adjusting states must be swallowed")
	require.Equal(t, []int{2, 3, 4}, events[0].Payload)
	require.Equal(t, []int{}, events[1].Payload)
	require.Equal(t, event.KindSelection, events[0].Kind)
}

func TestSelectionListenerAdjusting(t *testing.T) {
	b := New(Options{})
	var rec event.Recorder
	l := &selectionListener{b: b, source: "s", sink: &rec}

	l.ValueChanged(widget.SelectionEvent{Min: 2, Max: 4})
	l.ValueChanged(widget.SelectionEvent{Min: -1, Max: -1})
	l.ValueChanged(widget.SelectionEvent{Min: 1, Max: 1, Adjusting: true})

	events := rec.Events()
	require.Len(t, events, 2)
	require.Equal(t, []int{2, 3, 4}, events[0].Payload)
	require.Equal(t, []int{}, events[1].Payload)
}

func TestBindRecursesInOrder(t *testing.T) {
	b := New(Options{})
	var rec event.Recorder

	ok := widget.NewButton("ok", "OK")
	cancel := widget.NewButton("cancel", "Cancel")
	list := widget.NewList("items", []any{"a", "b"})
	table := widget.NewTable("grid", []string{"c"}, [][]any{{1}})
	name := widget.NewTextField("name", "")
	notes := widget.NewTextArea("notes", "")
	frame := widget.NewFrame("main", "Main", widget.NewPanel("content",
		widget.NewLabel("title", "Hello"),
		widget.NewPanel("form", name, widget.NewScrollPane("notes-scroll", notes)),
		widget.NewScrollPane("items-scroll", list),
		widget.NewScrollPane("grid-scroll", table),
		widget.NewPanel("buttons", ok, cancel),
	))

	b.Bind(frame, &rec)
	require.Equal(t, 7, b.Slots().Len())

	name.Type("x")
	notes.Type("y")
	list.Select(1)
	table.Select(0)
	ok.Click()
	cancel.Click()
	frame.RequestClose()

	var got []string
	for _, e := range rec.Events() {
		got = append(got, e.Source+":"+string(e.Kind))
	}
	require.Equal(t, []string{
		"name:text", "notes:text", "items:selection", "grid:selection",
		"ok:action", "cancel:action", "main:close",
	}, got)
}

func TestRebindReplacesListener(t *testing.T) {
	b := New(Options{})
	var first, second event.Recorder
	btn := widget.NewButton("b", "B")

	b.Bind(btn, &first)
	b.Bind(btn, &second)
	btn.Click()

	require.Equal(t, 1, btn.ActionListenerCount())
	require.Zero(t, first.Len())
	require.Equal(t, 1, second.Len())
}

func TestUnbind(t *testing.T) {
	b := New(Options{})
	var rec event.Recorder
	btn := widget.NewButton("b", "B")
	tf := widget.NewTextField("t", "")
	panel := widget.NewPanel("p", btn, tf)

	b.Bind(panel, &rec)
	b.Unbind(panel)

	btn.Click()
	tf.Type("x")
	require.Zero(t, rec.Len())
	require.Zero(t, b.Slots().Len())
	require.Zero(t, btn.ActionListenerCount())
}

func TestWithoutListenerReattachesOnPanic(t *testing.T) {
	b := New(Options{})
	tf := widget.NewTextField("t", "")
	b.Bind(tf, event.Discard)

	require.Panics(t, func() {
		b.WithoutListener(tf, func() { panic("widget failure") })
	})
	require.Equal(t, 1, tf.Document().DocumentListenerCount())
}

func TestWithoutListenerUnbound(t *testing.T) {
	b := New(Options{})
	ran := false
	b.WithoutListener(widget.NewLabel("l", ""), func() { ran = true })
	require.True(t, ran)
}

func TestSlotsListener(t *testing.T) {
	b := New(Options{})
	list := widget.NewList("l", nil)
	b.Bind(list, event.Discard)

	l, ok := b.Slots().Listener(list)
	require.True(t, ok)
	require.IsType(t, &selectionListener{}, l)

	_, ok = b.Slots().Listener(widget.NewList("other", nil))
	require.False(t, ok)
}

func TestBindNilSinkDiscards(t *testing.T) {
	b := New(Options{})
	btn := widget.NewButton("b", "B")
	b.Bind(btn, nil)
	require.NotPanics(t, btn.Click)
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	b := New(Options{Trace: &buf})
	btn := widget.NewButton("go", "Go")
	b.Bind(btn, event.Discard)

	btn.Click()

	require.Equal(t, "bind: go action\n", buf.String())
}

func TestPackageDefault(t *testing.T) {
	var rec event.Recorder
	btn := widget.NewButton("pkg", "Pkg")
	Bind(btn, &rec)
	SetterFns(btn)[PropText]("Renamed")
	btn.Click()

	require.Equal(t, "Renamed", btn.Text())
	require.Equal(t, 1, rec.Len())
	Default.Unbind(btn)
}

type recordingHandler struct {
	errs []*errors.BindError
}

func (h *recordingHandler) HandleError(err *errors.BindError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(*errors.PanicError)    {}

// claimThread makes another goroutine the UI thread, so the test goroutine
// runs off-thread until release is called.
func claimThread(t *testing.T) {
	t.Helper()
	claimed := make(chan func())
	go func() { claimed <- uithread.Enter() }()
	release := <-claimed
	t.Cleanup(release)
}

func TestSettersReportOffThread(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)
	claimThread(t)

	b := New(Options{CheckThread: true})
	values := map[Property]any{
		PropEnabled:   true,
		PropVisible:   true,
		PropText:      "x",
		PropTitle:     "x",
		PropEditable:  true,
		PropSelection: 0,
		PropItems:     []string{"a"},
	}
	components := []widget.Component{
		widget.NewButton("button", "OK"),
		widget.NewFrame("frame", "Title", widget.NewPanel("content")),
		widget.NewLabel("label", "text"),
		widget.NewList("list", nil),
		widget.NewTable("table", nil, nil),
		widget.NewTextField("field", ""),
	}
	for _, c := range components {
		s := b.SetterFns(c)
		for _, p := range s.Properties() {
			h.errs = nil
			require.NoError(t, s.Set(p, values[p]))
			require.Len(t, h.errs, 1, "%s.%s", c.Name(), p)
			require.Equal(t, errors.KindThread, h.errs[0].Kind)
			require.Equal(t, "bind."+string(p), h.errs[0].Op)
			require.Equal(t, c.Name(), h.errs[0].Component)
		}
	}
}

func TestSilentWritesReportOffThreadOnce(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)
	claimThread(t)

	b := New(Options{CheckThread: true})
	b.SelectIndex(widget.NewList("list", []any{"a"}), 0)
	b.SetTextSilently(widget.NewTextField("field", ""), "x")

	require.Len(t, h.errs, 2)
	require.Equal(t, "bind.selection", h.errs[0].Op)
	require.Equal(t, "bind.text", h.errs[1].Op)
}

func TestSettersOnThreadReportNothing(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)
	release := uithread.Enter()
	defer release()

	b := New(Options{CheckThread: true})
	require.NoError(t, b.SetterFns(widget.NewLabel("label", "")).Set(PropText, "x"))
	require.Empty(t, h.errs)
}
