// Package commands implements the hello command, a terminal greeting client.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sebasr/cloud-compute-demo/internal/auth"
	"github.com/sebasr/cloud-compute-demo/internal/client"
	"github.com/sebasr/cloud-compute-demo/internal/config"
	"github.com/sebasr/cloud-compute-demo/internal/logging"
)

// DefaultName pre-fills the interactive prompt
const DefaultName = "Azure Developer"

// clientName identifies the CLI in service tokens
const clientName = "greeting-cli"

// OutcomeError is returned by the command when a submission did not succeed
type OutcomeError struct {
	Outcome client.Outcome
}

func (e *OutcomeError) Error() string {
	return e.Outcome.Message
}

// Options configures NewCommand
type Options struct {
	Out      io.Writer
	Log      io.Writer
	Prompter Prompter
	Version  string
}

// NewCommand builds the hello command
func NewCommand(opts Options) *cli.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Log == nil {
		opts.Log = os.Stderr
	}
	if opts.Prompter == nil {
		opts.Prompter = FormPrompter{}
	}

	return &cli.Command{
		Name:    "hello",
		Usage:   "Ask the greeting service for a personalised greeting",
		Version: opts.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend-url",
				Usage:   "base URL of the greeting service",
				Sources: cli.EnvVars("BACKEND_URL"),
				Value:   "http://localhost:8000",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "request timeout",
				Sources: cli.EnvVars("REQUEST_TIMEOUT"),
				Value:   10 * time.Second,
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "name to greet; prompts interactively when omitted",
			},
			&cli.StringFlag{
				Name:    "token-secret",
				Usage:   "shared secret for service tokens, when the service requires them",
				Sources: cli.EnvVars("AUTH_TOKEN_SECRET"),
				Value:   config.GetSecret("AUTH_TOKEN_SECRET", ""),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, opts)
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, opts Options) error {
	logger, err := logging.New(config.LogConfig{Level: cmd.String("log-level"), Format: "console"}, opts.Log)
	if err != nil {
		return err
	}

	clientCfg := config.ClientConfig{
		BackendURL:     cmd.String("backend-url"),
		RequestTimeout: cmd.Duration("timeout"),
	}
	if err := clientCfg.Validate(); err != nil {
		return err
	}

	var clientOpts []client.Option
	if secret := cmd.String("token-secret"); secret != "" {
		clientOpts = append(clientOpts, client.WithServiceToken(auth.NewTokenService(secret, time.Minute), clientName))
	}
	greeter := client.WithLoggingClient(logger, client.NewHTTPClient(clientCfg, clientOpts...))

	name := cmd.String("name")
	if !cmd.IsSet("name") {
		name, err = opts.Prompter.PromptName(DefaultName)
		if err != nil {
			return fmt.Errorf("failed to read name: %w", err)
		}
	}

	outcome := client.Submit(ctx, greeter, name)
	if outcome.IsError() {
		return &OutcomeError{Outcome: outcome}
	}

	_, err = fmt.Fprintln(opts.Out, outcome.Message)
	return err
}
