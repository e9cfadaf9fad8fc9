package list

import (
	"context"
	"fmt"

	"github.com/tavor-dev/tavor-go/internal/log"
	"github.com/tavor-dev/tavor-go/internal/model"
	"github.com/tavor-dev/tavor-go/internal/remote"
)

// ServiceConfig is the configuration for the list service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.List"})

	return nil
}

// Service lists the remote boxes.
type Service struct {
	repo   remote.Repository
	logger log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	// StatusFilter optionally filters boxes by status.
	StatusFilter *model.BoxStatus
}

// Run returns a snapshot of the service box collection.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Box, error) {
	boxes, err := s.repo.ListBoxes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list boxes: %w", err)
	}

	if req.StatusFilter == nil {
		s.logger.Debugf("listed %d boxes", len(boxes))
		return boxes, nil
	}

	filtered := make([]model.Box, 0, len(boxes))
	for _, b := range boxes {
		if b.Status == *req.StatusFilter {
			filtered = append(filtered, b)
		}
	}

	s.logger.Debugf("listed %d boxes (%d with status %s)", len(boxes), len(filtered), *req.StatusFilter)
	return filtered, nil
}
