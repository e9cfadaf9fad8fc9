package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tavor-dev/tavor-go/internal/app/create"
	"github.com/tavor-dev/tavor-go/internal/app/wait"
)

type CreateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	box boxFlags

	wait         bool
	pollInterval time.Duration
	maxWait      time.Duration
}

// NewCreateCommand returns the create command.
func NewCreateCommand(rootCmd *RootCommand, app *kingpin.Application) *CreateCommand {
	c := &CreateCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("create", "Create a new box.")
	c.box.register(c.Cmd)

	c.Cmd.Flag("wait", "Wait until the box is ready.").BoolVar(&c.wait)
	c.Cmd.Flag("poll-interval", "Time between status checks when waiting.").Default("1s").DurationVar(&c.pollInterval)
	c.Cmd.Flag("max-wait", "Maximum time waiting for the box to be ready.").Default("5m").DurationVar(&c.maxWait)

	return c
}

func (c CreateCommand) Name() string { return c.Cmd.FullCommand() }

func (c CreateCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.box.boxConfig(ctx)
	if err != nil {
		return err
	}

	repo, _, err := c.rootCmd.newRepository()
	if err != nil {
		return err
	}

	svc, err := create.NewService(create.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	id, err := svc.Run(ctx, create.Request{Config: cfg})
	if err != nil {
		return fmt.Errorf("could not create box: %w", err)
	}

	if c.wait {
		waitSvc, err := wait.NewService(wait.ServiceConfig{
			Repository: repo,
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("could not create service: %w", err)
		}

		_, err = waitSvc.Run(ctx, wait.Request{
			BoxID:        id,
			PollInterval: c.pollInterval,
			MaxWait:      c.maxWait,
		})
		if err != nil {
			return fmt.Errorf("box %s did not become ready: %w", id, err)
		}
	}

	fmt.Fprintln(c.rootCmd.Stdout, id)

	return nil
}
