// Package main is the entry point for the hello terminal client.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sebasr/cloud-compute-demo/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
)

func main() {
	cmd := commands.NewCommand(commands.Options{
		Version: fmt.Sprintf("%s (%s)", version, commit),
	})

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		var outcomeErr *commands.OutcomeError
		if errors.As(err, &outcomeErr) {
			fmt.Fprintln(os.Stderr, outcomeErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}
