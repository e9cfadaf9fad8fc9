package managed

import (
	"context"
	"fmt"
	"time"

	"github.com/tavor-dev/tavor-go/internal/app/create"
	"github.com/tavor-dev/tavor-go/internal/app/stop"
	"github.com/tavor-dev/tavor-go/internal/app/wait"
	"github.com/tavor-dev/tavor-go/internal/conventions"
	"github.com/tavor-dev/tavor-go/internal/log"
	"github.com/tavor-dev/tavor-go/internal/model"
	"github.com/tavor-dev/tavor-go/internal/remote"
)

// ServiceConfig is the configuration for the managed execution service.
type ServiceConfig struct {
	Repository remote.Repository
	// BoxTimeout is the box lifetime in seconds used when the request doesn't set one.
	BoxTimeout int
	// BoxTimeoutErr is returned by requests that need BoxTimeout when it could not be resolved.
	BoxTimeoutErr error
	Logger        log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.BoxTimeout <= 0 {
		c.BoxTimeout = conventions.DefaultBoxTimeout
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service runs work on a box that is created for it and always stopped afterwards.
type Service struct {
	create        *create.Service
	wait          *wait.Service
	stop          *stop.Service
	boxTimeout    int
	boxTimeoutErr error
	logger        log.Logger
}

// NewService creates a new managed execution service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	createSvc, err := create.NewService(create.ServiceConfig{Repository: cfg.Repository, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create create service: %w", err)
	}

	waitSvc, err := wait.NewService(wait.ServiceConfig{Repository: cfg.Repository, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create wait service: %w", err)
	}

	stopSvc, err := stop.NewService(stop.ServiceConfig{Repository: cfg.Repository, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create stop service: %w", err)
	}

	return &Service{
		create:        createSvc,
		wait:          waitSvc,
		stop:          stopSvc,
		boxTimeout:    cfg.BoxTimeout,
		boxTimeoutErr: cfg.BoxTimeoutErr,
		logger:        cfg.Logger.WithValues(log.Kv{"svc": "app.Managed"}),
	}, nil
}

// WorkFunc is the work executed once the box is ready.
type WorkFunc func(ctx context.Context, boxID string) error

// Request represents the managed execution request parameters.
type Request struct {
	Config       model.BoxConfig
	PollInterval time.Duration
	MaxWait      time.Duration
}

// Run creates a box, waits for it, runs the work and stops the box.
//
// Once the box is created it is stopped exactly once on every exit path, including context
// cancellation. A stop failure is logged and never replaces the returned error.
func (s *Service) Run(ctx context.Context, req Request, work WorkFunc) error {
	if work == nil {
		return fmt.Errorf("work is required: %w", model.ErrNotValid)
	}

	cfg := req.Config
	if cfg.Timeout == nil {
		if s.boxTimeoutErr != nil {
			return fmt.Errorf("could not resolve the default box timeout: %w", s.boxTimeoutErr)
		}
		timeout := s.boxTimeout
		cfg.Timeout = &timeout
	}

	boxID, err := s.create.Run(ctx, create.Request{Config: cfg})
	if err != nil {
		return err
	}

	defer s.release(ctx, boxID)

	_, err = s.wait.Run(ctx, wait.Request{
		BoxID:        boxID,
		PollInterval: req.PollInterval,
		MaxWait:      req.MaxWait,
	})
	if err != nil {
		return fmt.Errorf("box %s did not become ready: %w", boxID, err)
	}

	return work(ctx, boxID)
}

// release stops the box even if the caller context is already canceled.
func (s *Service) release(ctx context.Context, boxID string) {
	err := s.stop.Run(context.WithoutCancel(ctx), stop.Request{BoxID: boxID})
	if err != nil {
		s.logger.Errorf("Failed to stop box %s: %s", boxID, err)
	}
}
