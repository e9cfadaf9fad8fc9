package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tavor-dev/tavor-go/internal/app/managed"
)

type RunCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	box boxFlags

	hold         time.Duration
	pollInterval time.Duration
	maxWait      time.Duration
}

// NewRunCommand returns the run command.
func NewRunCommand(rootCmd *RootCommand, app *kingpin.Application) *RunCommand {
	c := &RunCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("run", "Run a box until interrupted, the box is always stopped on exit.")
	c.box.register(c.Cmd)

	c.Cmd.Flag("hold", "Stop the box after this time (0 holds it until interrupted).").DurationVar(&c.hold)
	c.Cmd.Flag("poll-interval", "Time between status checks when waiting.").Default("1s").DurationVar(&c.pollInterval)
	c.Cmd.Flag("max-wait", "Maximum time waiting for the box to be ready.").Default("5m").DurationVar(&c.maxWait)

	return c
}

func (c RunCommand) Name() string { return c.Cmd.FullCommand() }

func (c RunCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.box.boxConfig(ctx)
	if err != nil {
		return err
	}

	repo, resolved, err := c.rootCmd.newRepository()
	if err != nil {
		return err
	}

	svc, err := managed.NewService(managed.ServiceConfig{
		Repository:    repo,
		BoxTimeout:    resolved.BoxTimeout,
		BoxTimeoutErr: resolved.BoxTimeoutErr,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	req := managed.Request{
		Config:       cfg,
		PollInterval: c.pollInterval,
		MaxWait:      c.maxWait,
	}

	return svc.Run(ctx, req, func(ctx context.Context, boxID string) error {
		fmt.Fprintln(c.rootCmd.Stdout, boxID)
		logger.Infof("Box %s is ready, holding it until interrupted", boxID)

		var timeout <-chan time.Time
		if c.hold > 0 {
			t := time.NewTimer(c.hold)
			defer t.Stop()
			timeout = t.C
		}

		select {
		case <-ctx.Done():
		case <-timeout:
		}

		return nil
	})
}
