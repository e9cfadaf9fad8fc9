package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tavor-dev/tavor-go/internal/app/wait"
	"github.com/tavor-dev/tavor-go/internal/printer"
)

type WaitCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	boxID        string
	pollInterval time.Duration
	maxWait      time.Duration
}

// NewWaitCommand returns the wait command.
func NewWaitCommand(rootCmd *RootCommand, app *kingpin.Application) *WaitCommand {
	c := &WaitCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("wait", "Wait until a box is ready.")
	c.Cmd.Arg("id", "Box ID.").Required().StringVar(&c.boxID)
	c.Cmd.Flag("poll-interval", "Time between status checks.").Default("1s").DurationVar(&c.pollInterval)
	c.Cmd.Flag("max-wait", "Maximum time waiting for the box to be ready.").Default("5m").DurationVar(&c.maxWait)

	return c
}

func (c WaitCommand) Name() string { return c.Cmd.FullCommand() }

func (c WaitCommand) Run(ctx context.Context) error {
	repo, _, err := c.rootCmd.newRepository()
	if err != nil {
		return err
	}

	svc, err := wait.NewService(wait.ServiceConfig{
		Repository: repo,
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	box, err := svc.Run(ctx, wait.Request{
		BoxID:        c.boxID,
		PollInterval: c.pollInterval,
		MaxWait:      c.maxWait,
	})
	if err != nil {
		return fmt.Errorf("box %s did not become ready: %w", c.boxID, err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintMessage(fmt.Sprintf("Box %s is %s", box.ID, box.Status)); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
