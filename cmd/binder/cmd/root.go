// Package cmd implements the binder CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (run, validate, snapshot, events).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/binder/pkg/config"
	"github.com/go-drift/binder/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(env *Env, args []string) error
}

// Env carries what every command needs: resolved settings and the output
// streams.
type Env struct {
	Settings *config.Settings
	Stdout   io.Writer
	Stderr   io.Writer
}

var rootCmd = &Command{
	Name:  "binder",
	Short: "binder - bind widget trees to event streams",
	Long: `binder builds component trees from scene files, attaches listeners that
turn native interactions into events, and drives them from a terminal or a
replay script.

Use "binder <command> --help" for more information about a command.`,
	Usage: "binder <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printHelp(stdout)
		return nil
	}

	// Handle global flags and extract --config
	var (
		filteredArgs []string
		configPath   string
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(stdout)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "binder version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			configPath = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--config=") {
				configPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(stdout)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(stderr)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(stdout, cmd)
			return nil
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	settings, err := config.Resolve(dir, configPath)
	if err != nil {
		return err
	}
	errors.SetHandler(&errors.LogHandler{Verbose: settings.Verbose, Out: stderr})

	return cmd.Run(&Env{Settings: settings, Stdout: stdout, Stderr: stderr}, cmdArgs)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range ordered {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintf(w, "  --config FILE        Settings file (default: ./%s if present)\n", config.FileName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  binder run form.yaml                 Drive a scene from the terminal")
	fmt.Fprintln(w, "  binder events form.yaml clicks.txt   Replay a script and print events")
	fmt.Fprintln(w, "  binder snapshot form.yaml -o out.png Render a scene")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}

// requireArgs returns an error naming usage when fewer than n positional
// arguments were given.
func requireArgs(cmd string, args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("%s needs %d argument(s)\n\nUsage: %s", cmd, n, usage)
	}
	return nil
}
