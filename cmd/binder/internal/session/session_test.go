package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/binder/pkg/bind"
	"github.com/go-drift/binder/pkg/config"
	"github.com/go-drift/binder/pkg/event"
	"github.com/go-drift/binder/pkg/widget"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := "version: \"1\"\nroot:\n  type: panel\n  children:\n    - {type: button, name: ok, text: OK}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path, nil, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	c, err := s.Find("ok")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	c.(*widget.Button).Click()
	events := s.Drain()
	if len(events) != 1 || events[0].String() != "ok action" {
		t.Errorf("Drain() = %v, want [ok action]", events)
	}
}

func TestListenAndTrace(t *testing.T) {
	var log bytes.Buffer
	settings := (&config.Config{Verbose: true}).Settings()
	settings.WarnLen = 1
	btn := widget.NewButton("go", "Go")
	s := New(widget.NewPanel("p", btn), settings, &log)

	var seen []string
	s.Listen(func(e event.Event) { seen = append(seen, e.String()) })
	btn.Click()
	btn.Click()

	if len(seen) != 2 {
		t.Errorf("listener saw %d events, want 2", len(seen))
	}
	if n := len(s.Drain()); n != 2 {
		t.Errorf("Drain() = %d events, want 2", n)
	}
	out := log.String()
	if !strings.Contains(out, "bind: go action") {
		t.Errorf("log missing trace line:\n%s", out)
	}
	if !strings.Contains(out, "event backlog 2 exceeds 1") {
		t.Errorf("log missing backlog warning:\n%s", out)
	}
}

func TestSetAndClose(t *testing.T) {
	status := widget.NewLabel("status", "")
	s := New(widget.NewPanel("p", status), nil, nil)

	if err := s.Set("status", bind.PropText, "saved"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if status.Text() != "saved" {
		t.Errorf("Text() = %q, want %q", status.Text(), "saved")
	}
	if err := s.Set("status", bind.PropTitle, "x"); err == nil {
		t.Error("Set(title) on label error = nil, want error")
	}
	if err := s.Set("missing", bind.PropText, "x"); err == nil {
		t.Error("Set() on missing component error = nil, want error")
	}

	btn := widget.NewButton("b", "")
	s2 := New(btn, nil, nil)
	s2.Close()
	if btn.ActionListenerCount() != 0 {
		t.Errorf("listeners after Close = %d, want 0", btn.ActionListenerCount())
	}
}
