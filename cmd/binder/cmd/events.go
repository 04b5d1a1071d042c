package cmd

import (
	"context"
	"io"
	"os"

	"github.com/go-drift/binder/cmd/binder/internal/script"
	"github.com/go-drift/binder/cmd/binder/internal/session"
	"github.com/go-drift/binder/pkg/uithread"
)

func init() {
	RegisterCommand(&Command{
		Name:  "events",
		Short: "Replay interactions and print events",
		Long: `Build and bind a scene, replay a script of user interactions against it,
and print every emitted event, one per line.

Script lines (use "-" to read the script from stdin):
  click NAME              press a button
  select NAME I           click row I of a list or table
  drag NAME FROM TO       drag a selection across rows
  clear NAME              clear a selection
  type NAME TEXT          type TEXT (quote it for escapes)
  backspace NAME [N]      delete N runes before the caret
  focus [NAME]            move focus, or clear it
  tab, shift-tab          traverse focus
  set NAME PROP VALUE     apply a property (VALUE is YAML)
  close NAME              user close request on a frame
  dispose NAME            programmatic disposal of a frame
  unbind NAME             detach listeners from a subtree`,
		Usage: "binder events <scene.yaml> <script.txt|->",
		Run:   runEvents,
	})
}

func runEvents(env *Env, args []string) error {
	if err := requireArgs("events", args, 2, "binder events <scene.yaml> <script.txt|->"); err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	steps, err := script.Parse(in)
	if err != nil {
		return err
	}

	loop := uithread.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)
	defer func() {
		loop.Stop()
		<-loop.Done()
	}()

	loop.Do(func() {
		var s *session.Session
		s, err = session.Open(args[0], env.Settings, env.Stderr)
		if err != nil {
			return
		}
		defer s.Close()
		err = script.Run(s, steps, env.Stdout)
	})
	return err
}
