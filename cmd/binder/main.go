// Command binder loads scene files, binds them and drives them from a
// terminal or a script.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/binder/cmd/binder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
