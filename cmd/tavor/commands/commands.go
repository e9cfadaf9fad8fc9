package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tavor-dev/tavor-go/internal/config"
	"github.com/tavor-dev/tavor-go/internal/log"
	"github.com/tavor-dev/tavor-go/internal/printer"
	"github.com/tavor-dev/tavor-go/internal/remote"
	"github.com/tavor-dev/tavor-go/internal/remote/api"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"

	formatTable = "table"
	formatJSON  = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug          bool
	NoLog          bool
	NoColor        bool
	LoggerType     string
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	BoxTimeout     int

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger

	// loadEnv replaces the environment lookup in tests.
	loadEnv config.EnvLoader
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("api-key", "Box service API key (defaults to TAVOR_API_KEY).").StringVar(&c.APIKey)
	app.Flag("base-url", "Box service address (defaults to TAVOR_BASE_URL or https://api.tavor.dev).").StringVar(&c.BaseURL)
	app.Flag("request-timeout", "Timeout for every single request.").Default("30s").DurationVar(&c.RequestTimeout)
	app.Flag("box-timeout", "Default box lifetime in seconds for run (defaults to TAVOR_BOX_TIMEOUT or 600).").IntVar(&c.BoxTimeout)

	return c
}

// newRepository resolves the configuration and returns the box service repository.
func (r RootCommand) newRepository() (remote.Repository, config.Resolved, error) {
	resolved, err := config.Resolve(config.Explicit{
		APIKey:         r.APIKey,
		BaseURL:        r.BaseURL,
		RequestTimeout: r.RequestTimeout,
		BoxTimeout:     r.BoxTimeout,
	}, r.loadEnv)
	if err != nil {
		return nil, config.Resolved{}, fmt.Errorf("invalid config: %w", err)
	}

	repo, err := api.NewRepository(api.RepositoryConfig{
		BaseURL:        resolved.BaseURL,
		APIKey:         resolved.APIKey,
		RequestTimeout: resolved.RequestTimeout,
		HTTPClient:     resolved.HTTPClient,
		UserAgent:      "tavor-cli",
		Logger:         r.Logger,
	})
	if err != nil {
		return nil, config.Resolved{}, fmt.Errorf("could not create repository: %w", err)
	}

	return repo, resolved, nil
}

func (r RootCommand) printer(format string) printer.Printer {
	if format == formatJSON {
		return printer.NewJSONPrinter(r.Stdout)
	}
	return printer.NewTablePrinter(r.Stdout)
}
