package stop

import (
	"context"
	"fmt"

	"github.com/tavor-dev/tavor-go/internal/log"
	"github.com/tavor-dev/tavor-go/internal/model"
	"github.com/tavor-dev/tavor-go/internal/remote"
)

// ServiceConfig is the configuration for the stop service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Stop"})

	return nil
}

// Service stops (terminates) a remote box.
type Service struct {
	repo   remote.Repository
	logger log.Logger
}

// NewService creates a new stop service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the stop request parameters.
type Request struct {
	BoxID string
}

// Run terminates a box. Stopping an already stopped or unknown box returns an error.
func (s *Service) Run(ctx context.Context, req Request) error {
	if req.BoxID == "" {
		return fmt.Errorf("box id is required: %w", model.ErrNotValid)
	}

	s.logger.Debugf("stopping box: %s", req.BoxID)

	if err := s.repo.DeleteBox(ctx, req.BoxID); err != nil {
		return fmt.Errorf("could not stop box %s: %w", req.BoxID, err)
	}

	s.logger.Infof("Stopped box: %s", req.BoxID)
	return nil
}
