package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tavor-dev/tavor-go/internal/app/status"
)

type StatusCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	boxID  string
	format string
}

// NewStatusCommand returns the status command.
func NewStatusCommand(rootCmd *RootCommand, app *kingpin.Application) *StatusCommand {
	c := &StatusCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("status", "Get detailed status of a box.")
	c.Cmd.Arg("id", "Box ID.").Required().StringVar(&c.boxID)
	c.Cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON)

	return c
}

func (c StatusCommand) Name() string { return c.Cmd.FullCommand() }

func (c StatusCommand) Run(ctx context.Context) error {
	repo, _, err := c.rootCmd.newRepository()
	if err != nil {
		return err
	}

	svc, err := status.NewService(status.ServiceConfig{
		Repository: repo,
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	box, err := svc.Run(ctx, status.Request{BoxID: c.boxID})
	if err != nil {
		return fmt.Errorf("could not get box status: %w", err)
	}

	if err := c.rootCmd.printer(c.format).PrintStatus(*box); err != nil {
		return fmt.Errorf("could not print status: %w", err)
	}

	return nil
}
