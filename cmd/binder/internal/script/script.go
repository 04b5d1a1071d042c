// Package script replays user interactions against a bound component tree.
//
// A script has one interaction per line; blank lines and lines starting
// with '#' are ignored:
//
//	click ok
//	select people 2
//	drag people 1 3
//	clear people
//	type name "Ann\n"
//	backspace name 2
//	focus name
//	tab
//	set status text Saved
//	close main
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/binder/cmd/binder/internal/session"
	"github.com/go-drift/binder/pkg/bind"
	"github.com/go-drift/binder/pkg/widget"
)

// Step is one parsed script line.
type Step struct {
	Line   int
	Verb   string
	Target string
	Args   []string
	// Rest is the unsplit text following the target.
	Rest string
}

// verbs describes the operands of each verb. A value verb takes the rest of
// the line as a single operand.
var verbs = map[string]struct {
	target  bool
	minArgs int
	value   bool
}{
	"click":     {target: true},
	"select":    {target: true, minArgs: 1},
	"drag":      {target: true, minArgs: 2},
	"clear":     {target: true},
	"type":      {target: true, value: true},
	"backspace": {target: true},
	"focus":     {},
	"tab":       {},
	"shift-tab": {},
	"set":       {target: true, minArgs: 1, value: true},
	"close":     {target: true},
	"dispose":   {target: true},
	"unbind":    {target: true},
}

// Parse reads a script.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		step, err := parseLine(line, text)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

func parseLine(line int, text string) (Step, error) {
	verb, rest := cut(text)
	form, ok := verbs[verb]
	if !ok {
		return Step{}, fmt.Errorf("line %d: unknown verb %q", line, verb)
	}
	step := Step{Line: line, Verb: verb}
	if verb == "focus" && rest != "" {
		step.Target, rest = cut(rest)
	}
	if form.target {
		if rest == "" {
			return Step{}, fmt.Errorf("line %d: %s needs a component name", line, verb)
		}
		step.Target, rest = cut(rest)
	}
	if verb == "set" {
		var prop string
		prop, rest = cut(rest)
		if prop != "" {
			step.Args = []string{prop}
		}
	} else if !form.value {
		step.Args = strings.Fields(rest)
	}
	step.Rest = rest
	if len(step.Args) < form.minArgs {
		return Step{}, fmt.Errorf("line %d: %s needs %d argument(s)", line, verb, form.minArgs)
	}
	if form.value && rest == "" {
		return Step{}, fmt.Errorf("line %d: %s needs a value", line, verb)
	}
	return step, nil
}

func cut(s string) (head, tail string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

// Run performs steps against s, writing the events each step emits to out,
// one per line.
func Run(s *session.Session, steps []Step, out io.Writer) error {
	for _, step := range steps {
		if err := Perform(s, step); err != nil {
			return fmt.Errorf("line %d: %w", step.Line, err)
		}
		for _, e := range s.Drain() {
			fmt.Fprintln(out, e.String())
		}
	}
	return nil
}

// Perform applies one step.
func Perform(s *session.Session, step Step) error {
	switch step.Verb {
	case "tab":
		s.Focus.Traverse(widget.TraversalNext)
		return nil
	case "shift-tab":
		s.Focus.Traverse(widget.TraversalPrevious)
		return nil
	case "focus":
		if step.Target == "" {
			s.Focus.Clear()
			return nil
		}
	}

	c, err := s.Find(step.Target)
	if err != nil {
		return err
	}
	switch step.Verb {
	case "focus":
		if _, ok := c.(widget.Focusable); !ok {
			return fmt.Errorf("%s cannot take focus", c.Kind())
		}
		s.Focus.Request(c)
	case "click":
		b, ok := c.(*widget.Button)
		if !ok {
			return fmt.Errorf("cannot click a %s", c.Kind())
		}
		b.Click()
	case "select", "drag", "clear":
		return selection(c, step)
	case "type":
		t, ok := c.(widget.TextComponent)
		if !ok {
			return fmt.Errorf("cannot type into a %s", c.Kind())
		}
		text, err := unquote(step.Rest)
		if err != nil {
			return err
		}
		t.Type(text)
	case "backspace":
		t, ok := c.(widget.TextComponent)
		if !ok {
			return fmt.Errorf("cannot edit a %s", c.Kind())
		}
		n := 1
		if len(step.Args) > 0 {
			if n, err = strconv.Atoi(step.Args[0]); err != nil {
				return fmt.Errorf("bad count %q", step.Args[0])
			}
		}
		for i := 0; i < n; i++ {
			t.Backspace()
		}
	case "set":
		var v any
		if err := yaml.Unmarshal([]byte(step.Rest), &v); err != nil {
			return fmt.Errorf("bad value %q: %w", step.Rest, err)
		}
		return s.Binder.SetterFns(c).Set(bind.Property(step.Args[0]), v)
	case "close", "dispose":
		f, ok := c.(*widget.Frame)
		if !ok {
			return fmt.Errorf("cannot close a %s", c.Kind())
		}
		if step.Verb == "close" {
			f.RequestClose()
		} else {
			f.Dispose()
		}
	case "unbind":
		s.Binder.Unbind(c)
	}
	return nil
}

type userSelectable interface {
	widget.Selectable
	Select(i int)
	Drag(from, to int)
}

func selection(c widget.Component, step Step) error {
	sel, ok := c.(userSelectable)
	if !ok {
		return fmt.Errorf("cannot select in a %s", c.Kind())
	}
	idx := make([]int, len(step.Args))
	for i, a := range step.Args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("bad index %q", a)
		}
		idx[i] = n
	}
	switch step.Verb {
	case "select":
		sel.Select(idx[0])
	case "drag":
		sel.Drag(idx[0], idx[1])
	case "clear":
		sel.SelectionModel().ClearSelection()
	}
	return nil
}

func unquote(s string) (string, error) {
	if strings.HasPrefix(s, `"`) {
		u, err := strconv.Unquote(s)
		if err != nil {
			return "", fmt.Errorf("bad string %s", s)
		}
		return u, nil
	}
	return s, nil
}
