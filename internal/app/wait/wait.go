package wait

import (
	"context"
	"fmt"
	"time"

	"github.com/tavor-dev/tavor-go/internal/conventions"
	"github.com/tavor-dev/tavor-go/internal/log"
	"github.com/tavor-dev/tavor-go/internal/model"
	"github.com/tavor-dev/tavor-go/internal/remote"
)

// ServiceConfig is the configuration for the wait service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Wait"})

	return nil
}

// Service waits for a box to become ready by polling its status.
type Service struct {
	repo   remote.Repository
	logger log.Logger
}

// NewService creates a new wait service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the wait request parameters.
type Request struct {
	BoxID string
	// PollInterval is the time between status checks. Defaults to 1s.
	PollInterval time.Duration
	// MaxWait bounds the whole wait. Defaults to 5m.
	MaxWait time.Duration
}

func (r *Request) defaults() error {
	if r.BoxID == "" {
		return fmt.Errorf("box id is required: %w", model.ErrNotValid)
	}
	if r.PollInterval <= 0 {
		r.PollInterval = conventions.DefaultPollInterval
	}
	if r.MaxWait <= 0 {
		r.MaxWait = conventions.DefaultMaxWait
	}
	return nil
}

// Run polls the box until it is ready, it reaches a terminal status or MaxWait elapses.
//
// Request errors while polling are returned as they are, they are not retried.
func (s *Service) Run(ctx context.Context, req Request) (*model.Box, error) {
	if err := req.defaults(); err != nil {
		return nil, err
	}

	logger := s.logger.WithValues(log.Kv{"box-id": req.BoxID})
	start := time.Now()

	for polls := 1; ; polls++ {
		box, err := s.repo.GetBox(ctx, req.BoxID)
		if err != nil {
			return nil, fmt.Errorf("could not get box %s status: %w", req.BoxID, err)
		}

		switch {
		case box.Status.IsReady():
			logger.Infof("Box ready after %s (%d polls)", time.Since(start).Round(time.Millisecond), polls)
			return box, nil
		case box.Status.IsTerminal():
			return nil, &model.RemoteFailureError{BoxID: req.BoxID, Status: box.Status, Details: box.Details}
		}

		elapsed := time.Since(start)
		if elapsed >= req.MaxWait {
			return nil, &model.ReadinessTimeoutError{BoxID: req.BoxID, MaxWait: req.MaxWait, LastStatus: box.Status}
		}

		logger.Debugf("Box not ready (status: %s), polling again", box.Status)

		timer := time.NewTimer(min(req.PollInterval, req.MaxWait-elapsed))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("waiting for box %s: %w", req.BoxID, ctx.Err())
		case <-timer.C:
		}
	}
}
