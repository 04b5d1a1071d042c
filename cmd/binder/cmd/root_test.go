package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const formScene = `version: "1.0"
root:
  type: frame
  name: main
  title: Form
  content:
    type: panel
    name: body
    children:
      - {type: textfield, name: name}
      - {type: list, name: people, items: [a, b, c]}
      - {type: button, name: ok, text: OK}
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestHelpAndVersion(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "Commands:"},
		{[]string{"--help"}, "Commands:"},
		{[]string{"-v"}, "binder version " + Version},
		{[]string{"events", "--help"}, "binder events <scene.yaml>"},
	}
	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		if err != nil {
			t.Errorf("run(%v) error = %v", tt.args, err)
		}
		if !strings.Contains(out, tt.want) {
			t.Errorf("run(%v) output missing %q:\n%s", tt.args, tt.want, out)
		}
	}
}

func TestHelpListsCommands(t *testing.T) {
	out, _ := execute(t, "help")
	for _, name := range []string{"run", "validate", "snapshot", "events"} {
		if !strings.Contains(out, "  "+name) {
			t.Errorf("help does not list %q", name)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	if _, err := execute(t, "frobnicate"); err == nil {
		t.Error("run(frobnicate) error = nil, want error")
	}
}

func TestValidate(t *testing.T) {
	scene := writeTemp(t, "form.yaml", formScene)
	out, err := execute(t, "validate", scene)
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if want := scene + ": ok (5 components, 4 listeners)\n"; out != want {
		t.Errorf("validate output = %q, want %q", out, want)
	}

	bad := writeTemp(t, "bad.yaml", "version: \"2\"\nroot: {type: label}\n")
	if _, err := execute(t, "validate", bad); err == nil || !strings.Contains(err.Error(), "unsupported version") {
		t.Errorf("validate(bad) error = %v, want unsupported version", err)
	}
}

func TestEvents(t *testing.T) {
	scene := writeTemp(t, "form.yaml", formScene)
	script := writeTemp(t, "script.txt", "click ok\nselect people 1\ntype name hey\nclose main\n")
	out, err := execute(t, "events", scene, script)
	if err != nil {
		t.Fatalf("events error = %v", err)
	}
	want := "ok action\npeople selection [1]\nname text/update \"hey\"\nmain close\n"
	if out != want {
		t.Errorf("events output =\n%s\nwant\n%s", out, want)
	}
}

func TestEventsScriptError(t *testing.T) {
	scene := writeTemp(t, "form.yaml", formScene)
	script := writeTemp(t, "script.txt", "click nobody\n")
	_, err := execute(t, "events", scene, script)
	if err == nil || !strings.Contains(err.Error(), `line 1: no component named "nobody"`) {
		t.Errorf("events error = %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	scene := writeTemp(t, "form.yaml", formScene)

	out, err := execute(t, "snapshot", scene)
	if err != nil {
		t.Fatalf("snapshot error = %v", err)
	}
	if !strings.Contains(out, `"id": "frame#0"`) {
		t.Errorf("snapshot JSON missing frame:\n%s", out)
	}

	pngPath := filepath.Join(t.TempDir(), "form.png")
	if _, err := execute(t, "snapshot", scene, "-o", pngPath); err != nil {
		t.Fatalf("snapshot -o png error = %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := img.Bounds().Dx(); got != 640 {
		t.Errorf("width = %d, want 640", got)
	}
}

func TestConfigFlag(t *testing.T) {
	scene := writeTemp(t, "form.yaml", formScene)
	cfg := writeTemp(t, "binder.yaml", "render:\n  width: 100\n  height: 50\n")
	pngPath := filepath.Join(t.TempDir(), "form.png")
	if _, err := execute(t, "--config", cfg, "snapshot", scene, "-o", pngPath); err != nil {
		t.Fatalf("snapshot error = %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Dx(); got != 100 {
		t.Errorf("width = %d, want 100", got)
	}

	if _, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "validate", scene); err == nil {
		t.Error("missing --config file error = nil, want error")
	}
}
