package lib

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tavor-dev/tavor-go/internal/app/create"
	"github.com/tavor-dev/tavor-go/internal/app/list"
	"github.com/tavor-dev/tavor-go/internal/config"
	"github.com/tavor-dev/tavor-go/internal/log"
	loglogrus "github.com/tavor-dev/tavor-go/internal/log/logrus"
	"github.com/tavor-dev/tavor-go/internal/remote"
	"github.com/tavor-dev/tavor-go/internal/remote/api"
)

// Version is the SDK version.
const Version = "0.2.0"

// Config configures the SDK client.
//
// Every field is optional. Explicit values win over the environment, see the
// package documentation.
type Config struct {
	// APIKey is the service credential.
	// Default: TAVOR_API_KEY environment variable. Required.
	APIKey string

	// BaseURL is the service address.
	// Default: TAVOR_BASE_URL environment variable, then https://api.tavor.dev.
	BaseURL string

	// Timeout bounds every single request.
	// Default: 30s.
	Timeout time.Duration

	// BoxTimeout is the box lifetime in seconds used by [WithSandbox] when the box
	// config doesn't set one.
	// Default: TAVOR_BOX_TIMEOUT environment variable, then 600.
	BoxTimeout int

	// HTTPClient is the transport used for the requests. It may be shared.
	// The client is copied, it is never modified. The API key and base URL
	// are applied per request on top of it.
	// Default: a new http.Client.
	HTTPClient *http.Client

	// PollInterval is the default time between status checks when waiting for a box.
	// Default: 1s.
	PollInterval time.Duration

	// MaxWait is the default maximum time waiting for a box to become ready.
	// Default: 5m.
	MaxWait time.Duration

	// Logger receives log output from the SDK.
	// Default: logrus on stderr at warning level, so only problems (like a box that
	// could not be stopped) are shown. Use log.Noop to silence it.
	Logger log.Logger

	// envLoader replaces the environment lookup in tests.
	envLoader config.EnvLoader
}

func (c *Config) defaults() {
	if c.Logger == nil {
		l := logrus.New()
		l.Out = os.Stderr
		l.SetLevel(logrus.WarnLevel)
		c.Logger = loglogrus.NewLogrus(logrus.NewEntry(l)).WithValues(log.Kv{"sdk": "tavor-go"})
	}
}

// clientConfig is the immutable configuration shared by the client and copied into every box handle.
type clientConfig struct {
	repo       remote.Repository
	apiKey     string
	baseURL    string
	timeout    time.Duration
	boxTimeout int
	// boxTimeoutErr is set when TAVOR_BOX_TIMEOUT is malformed, only managed execution uses it.
	boxTimeoutErr error
	pollInterval  time.Duration
	maxWait       time.Duration
	logger        log.Logger
}

// Client is the SDK entry point to manage boxes.
//
// Create a Client with [New]. A Client is safe for concurrent use.
type Client struct {
	cfg clientConfig
}

// New creates a new SDK client.
//
// It fails with [ErrAuthentication] when no API key is set explicitly or in the
// environment. No request is made.
func New(cfg Config) (*Client, error) {
	cfg.defaults()

	resolved, err := config.Resolve(config.Explicit{
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		RequestTimeout: cfg.Timeout,
		BoxTimeout:     cfg.BoxTimeout,
		HTTPClient:     cfg.HTTPClient,
	}, cfg.envLoader)
	if err != nil {
		return nil, mapError(fmt.Errorf("invalid config: %w", err))
	}

	repo, err := api.NewRepository(api.RepositoryConfig{
		BaseURL:        resolved.BaseURL,
		APIKey:         resolved.APIKey,
		RequestTimeout: resolved.RequestTimeout,
		HTTPClient:     resolved.HTTPClient,
		UserAgent:      "tavor-go/" + Version,
		Logger:         cfg.Logger,
	})
	if err != nil {
		return nil, mapError(fmt.Errorf("could not create repository: %w", err))
	}

	return &Client{
		cfg: clientConfig{
			repo:          repo,
			apiKey:        resolved.APIKey,
			baseURL:       resolved.BaseURL,
			timeout:       resolved.RequestTimeout,
			boxTimeout:    resolved.BoxTimeout,
			boxTimeoutErr: resolved.BoxTimeoutErr,
			pollInterval:  cfg.PollInterval,
			maxWait:       cfg.MaxWait,
			logger:        cfg.Logger,
		},
	}, nil
}

// CreateBox provisions a new box. Pass nil cfg for the service defaults.
//
// The box is a real remote resource, the caller must stop it. Use [WithSandbox]
// to get that done automatically.
func (c *Client) CreateBox(ctx context.Context, cfg *BoxConfig) (*BoxHandle, error) {
	svc, err := create.NewService(create.ServiceConfig{
		Repository: c.cfg.repo,
		Logger:     c.cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	id, err := svc.Run(ctx, create.Request{Config: toInternalBoxConfig(cfg)})
	if err != nil {
		return nil, mapError(err)
	}

	return newBoxHandle(id, c.cfg), nil
}

// ListBoxes returns a snapshot of the boxes of the account.
func (c *Client) ListBoxes(ctx context.Context) ([]Box, error) {
	svc, err := list.NewService(list.ServiceConfig{
		Repository: c.cfg.repo,
		Logger:     c.cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	boxes, err := svc.Run(ctx, list.Request{})
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalBoxList(boxes), nil
}

// GetBox returns a handle for an existing box.
//
// The ID is not checked, an unknown box fails when the handle is used.
func (c *Client) GetBox(id string) *BoxHandle {
	return newBoxHandle(id, c.cfg)
}
