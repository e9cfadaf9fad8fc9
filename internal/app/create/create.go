package create

import (
	"context"
	"fmt"

	"github.com/tavor-dev/tavor-go/internal/log"
	"github.com/tavor-dev/tavor-go/internal/model"
	"github.com/tavor-dev/tavor-go/internal/remote"
)

// ServiceConfig is the configuration for the create service.
type ServiceConfig struct {
	Repository remote.Repository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Create"})
	return nil
}

// Service handles box creation.
type Service struct {
	repo   remote.Repository
	logger log.Logger
}

// NewService creates a new create service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the create request parameters.
type Request struct {
	Config model.BoxConfig
}

// Run provisions a new remote box and returns its ID.
// The caller owns the box and is responsible for stopping it.
func (s *Service) Run(ctx context.Context, req Request) (string, error) {
	if err := validate(req.Config); err != nil {
		return "", err
	}

	id, err := s.repo.CreateBox(ctx, req.Config)
	if err != nil {
		return "", fmt.Errorf("could not create box: %w", err)
	}

	s.logger.Infof("Created box: %s", id)

	return id, nil
}

func validate(cfg model.BoxConfig) error {
	if cfg.Timeout != nil && *cfg.Timeout < 0 {
		return fmt.Errorf("timeout can't be negative: %w", model.ErrNotValid)
	}
	if cfg.CPU != nil && *cfg.CPU <= 0 {
		return fmt.Errorf("cpu must be positive: %w", model.ErrNotValid)
	}
	if cfg.MiBRAM != nil && *cfg.MiBRAM <= 0 {
		return fmt.Errorf("mib_ram must be positive: %w", model.ErrNotValid)
	}
	return nil
}
