package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tavor-dev/tavor-go/internal/app/list"
	"github.com/tavor-dev/tavor-go/internal/model"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	statusFilter string
	format       string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List all boxes.")
	c.Cmd.Flag("status", "Filter by status (queued, provisioning, booting, running, stopped, finished, failed, error).").StringVar(&c.statusFilter)
	c.Cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON)

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	var statusFilter *model.BoxStatus
	if c.statusFilter != "" {
		status := model.BoxStatus(strings.ToLower(c.statusFilter))
		statusFilter = &status
	}

	repo, _, err := c.rootCmd.newRepository()
	if err != nil {
		return err
	}

	svc, err := list.NewService(list.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	boxes, err := svc.Run(ctx, list.Request{
		StatusFilter: statusFilter,
	})
	if err != nil {
		return fmt.Errorf("could not list boxes: %w", err)
	}

	if err := c.rootCmd.printer(c.format).PrintList(boxes); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
