package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tavor-dev/tavor-go/internal/app/stop"
	"github.com/tavor-dev/tavor-go/internal/printer"
)

type StopCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	boxID string
}

// NewStopCommand returns the stop command.
func NewStopCommand(rootCmd *RootCommand, app *kingpin.Application) *StopCommand {
	c := &StopCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("stop", "Stop a box.")
	c.Cmd.Arg("id", "Box ID.").Required().StringVar(&c.boxID)

	return c
}

func (c StopCommand) Name() string { return c.Cmd.FullCommand() }

func (c StopCommand) Run(ctx context.Context) error {
	repo, _, err := c.rootCmd.newRepository()
	if err != nil {
		return err
	}

	svc, err := stop.NewService(stop.ServiceConfig{
		Repository: repo,
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if err := svc.Run(ctx, stop.Request{BoxID: c.boxID}); err != nil {
		return fmt.Errorf("could not stop box: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintMessage(fmt.Sprintf("Stopped box: %s", c.boxID)); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
