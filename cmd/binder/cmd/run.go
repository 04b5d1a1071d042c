package cmd

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/binder/cmd/binder/internal/session"
	"github.com/go-drift/binder/cmd/binder/internal/tui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Drive a scene from the terminal",
		Long: `Build and bind a scene and host it in the terminal.

Keys act on the component under the cursor: tab and shift+tab move between
buttons, lists, tables and text components; enter clicks; up and down move
the selection; typing edits text. Every event is shown in the log pane and
echoed into a label named "status" if the scene has one. esc closes the root
frame.

Flags:
  --inline             Render below the prompt instead of the alternate screen`,
		Usage: "binder run <scene.yaml> [--inline]",
		Run:   runRun,
	})
}

func runRun(env *Env, args []string) error {
	var (
		positional []string
		inline     bool
	)
	for _, arg := range args {
		switch arg {
		case "--inline":
			inline = true
		default:
			positional = append(positional, arg)
		}
	}
	if err := requireArgs("run", positional, 1, "binder run <scene.yaml> [--inline]"); err != nil {
		return err
	}

	s, err := session.Open(positional[0], env.Settings, env.Stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	var opts []tea.ProgramOption
	if !inline {
		opts = append(opts, tea.WithAltScreen())
	}
	return tui.Run(s, opts...)
}
