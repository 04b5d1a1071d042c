package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/binder/cmd/binder/internal/session"
	"github.com/go-drift/binder/pkg/snapshot"
)

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Capture a scene as JSON or PNG",
		Long: `Build and bind a scene, then write its state.

The output format follows the extension of the -o file: .png renders the
tree using the render settings from binder.yaml, anything else writes the
JSON state snapshot. Without -o the JSON goes to stdout.

Flags:
  -o, --output FILE    Output file`,
		Usage: "binder snapshot <scene.yaml> [-o FILE]",
		Run:   runSnapshot,
	})
}

func runSnapshot(env *Env, args []string) error {
	var (
		positional []string
		output     string
	)
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", args[i])
			}
			output = args[i+1]
			i++
		default:
			positional = append(positional, args[i])
		}
	}
	if err := requireArgs("snapshot", positional, 1, "binder snapshot <scene.yaml> [-o FILE]"); err != nil {
		return err
	}

	s, err := session.Open(positional[0], env.Settings, env.Stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	if strings.EqualFold(filepath.Ext(output), ".png") {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		opts := snapshot.RenderOptions{
			Width:  env.Settings.Width,
			Height: env.Settings.Height,
			Theme:  env.Settings.Theme,
		}
		if err := snapshot.WritePNG(f, s.Root, opts); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	snap := snapshot.Capture(s.Root, s.Binder.Slots())
	if output != "" {
		return snap.UpdateFile(output)
	}
	data, err := snap.Marshal()
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
