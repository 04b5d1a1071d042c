// Package snapshot captures the state of a component tree as JSON for golden
// tests and rasterizes it to an image for debugging.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/go-drift/binder/pkg/bind"
	"github.com/go-drift/binder/pkg/widget"
)

// UpdateEnv names the environment variable that makes MatchesFile rewrite
// golden files instead of comparing.
const UpdateEnv = "BINDER_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is the captured state of a component tree.
type Snapshot struct {
	Root *Node `json:"root"`
}

// Node is one serialized component.
type Node struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Kind     string         `json:"kind"`
	Enabled  bool           `json:"enabled"`
	Visible  bool           `json:"visible"`
	Bound    bool           `json:"bound,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// Capture serializes c and its descendants. slots, when non-nil, marks the
// components that carry a bound listener.
func Capture(c widget.Component, slots *bind.Slots) *Snapshot {
	if c == nil {
		return &Snapshot{}
	}
	return &Snapshot{Root: capture(c, slots, &kindCounter{})}
}

// kindCounter assigns stable IDs like "button#0", "button#1".
type kindCounter struct {
	counts map[string]int
}

func (k *kindCounter) next(kind string) string {
	if k.counts == nil {
		k.counts = make(map[string]int)
	}
	n := k.counts[kind]
	k.counts[kind] = n + 1
	return fmt.Sprintf("%s#%d", kind, n)
}

func capture(c widget.Component, slots *bind.Slots, counter *kindCounter) *Node {
	n := &Node{
		ID:      counter.next(c.Kind()),
		Name:    c.Name(),
		Kind:    c.Kind(),
		Enabled: c.Enabled(),
		Visible: c.Visible(),
		Props:   properties(c),
	}
	if slots != nil {
		_, n.Bound = slots.Listener(c)
	}
	if ct, ok := c.(widget.Container); ok {
		for _, child := range ct.Children() {
			n.Children = append(n.Children, capture(child, slots, counter))
		}
	}
	return n
}

func properties(c widget.Component) map[string]any {
	props := make(map[string]any)
	switch c := c.(type) {
	case *widget.Button:
		props["text"] = c.Text()
	case *widget.Label:
		props["text"] = c.Text()
	case *widget.Frame:
		props["title"] = c.Title()
		if c.Disposed() {
			props["disposed"] = true
		}
	case *widget.List:
		props["items"] = stringify(c.Items())
		props["selection"] = c.SelectedIndices()
		r := c.VisibleRange()
		props["visible"] = []int{r.First, r.Last}
	case *widget.Table:
		props["columns"] = c.Columns()
		rows := make([][]string, len(c.Rows()))
		for i, row := range c.Rows() {
			rows[i] = stringify(row)
		}
		props["rows"] = rows
		props["selection"] = c.SelectedIndices()
	case widget.TextComponent:
		props["text"] = c.Text()
		props["caret"] = c.Caret()
		props["editable"] = c.Editable()
		if c.HasFocus() {
			props["focused"] = true
		}
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

func stringify(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When BINDER_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a unified diff between other and this snapshot. Returns the
// empty string if they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := s.Marshal()
	b, _ := other.Marshal()
	if bytes.Equal(a, b) {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(b)),
		B:        difflib.SplitLines(string(a)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

// Marshal encodes the snapshot as indented JSON.
func (s *Snapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads a snapshot written by UpdateFile.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}
