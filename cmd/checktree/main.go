// Package main is the entry point for the checktree CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/thoreinstein/checktree/cmd/checktree/commands"
	"github.com/thoreinstein/checktree/internal/errors"
	"github.com/thoreinstein/checktree/internal/logging"
)

func main() {
	// Replaced once the root command has parsed the logging flags.
	slog.SetDefault(logging.Default())

	err := commands.Execute()
	if err == nil {
		return
	}

	// A failed check has already been reported on stdout.
	if !errors.Is(err, errors.ErrCheckFailed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
	}
	os.Exit(errors.ExitCode(err))
}
