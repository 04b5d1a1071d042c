package cmd

import (
	"fmt"

	"github.com/go-drift/binder/cmd/binder/internal/session"
	"github.com/go-drift/binder/pkg/widget"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check scene files",
		Long: `Parse and build each scene file, then bind it and report how many
components it contains and how many carry a listener.

Exits with an error on the first scene that fails.`,
		Usage: "binder validate <scene.yaml>...",
		Run:   runValidate,
	})
}

func runValidate(env *Env, args []string) error {
	if err := requireArgs("validate", args, 1, "binder validate <scene.yaml>..."); err != nil {
		return err
	}
	for _, path := range args {
		s, err := session.Open(path, env.Settings, env.Stderr)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		n := 0
		widget.Walk(s.Root, func(widget.Component) bool {
			n++
			return true
		})
		fmt.Fprintf(env.Stdout, "%s: ok (%d components, %d listeners)\n", path, n, s.Binder.Slots().Len())
		s.Close()
	}
	return nil
}
