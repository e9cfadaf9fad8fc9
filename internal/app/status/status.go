package status

import (
	"context"
	"fmt"

	"github.com/tavor-dev/tavor-go/internal/log"
	"github.com/tavor-dev/tavor-go/internal/model"
	"github.com/tavor-dev/tavor-go/internal/remote"
)

// ServiceConfig is the configuration for the status service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Status"})

	return nil
}

// Service gets the current state of a box from the service.
type Service struct {
	repo   remote.Repository
	logger log.Logger
}

// NewService creates a new status service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the status request parameters.
type Request struct {
	BoxID string
}

// Run fetches the box, it never answers from a local cache.
func (s *Service) Run(ctx context.Context, req Request) (*model.Box, error) {
	if req.BoxID == "" {
		return nil, fmt.Errorf("box id is required: %w", model.ErrNotValid)
	}

	box, err := s.repo.GetBox(ctx, req.BoxID)
	if err != nil {
		return nil, fmt.Errorf("could not get box %s: %w", req.BoxID, err)
	}

	s.logger.Debugf("box %s status: %s", box.ID, box.Status)

	return box, nil
}
