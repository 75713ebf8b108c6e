package main

import (
	"fmt"
	"os"

	"github.com/roach88/rome/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Invalid-input failures (ExitFailure) were already written by
		// the command's formatter; only surface command errors here.
		code := cli.GetExitCode(err)
		if code != cli.ExitFailure {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(code)
	}
}
