package lib

import (
	"context"
	"fmt"

	"github.com/tavor-dev/tavor-go/internal/app/status"
	"github.com/tavor-dev/tavor-go/internal/app/stop"
	"github.com/tavor-dev/tavor-go/internal/app/wait"
	"github.com/tavor-dev/tavor-go/internal/log"
)

// BoxHandle references a remote box by ID.
//
// It holds no box state: every method queries the service. A handle carries
// its own copy of the client configuration and keeps working after the
// [Client] that created it is gone.
type BoxHandle struct {
	id  string
	cfg clientConfig
}

func newBoxHandle(id string, cfg clientConfig) *BoxHandle {
	cfg.logger = cfg.logger.WithValues(log.Kv{"box-id": id})
	return &BoxHandle{id: id, cfg: cfg}
}

// ID returns the box ID.
func (b *BoxHandle) ID() string { return b.id }

// Status returns the current box state from the service.
func (b *BoxHandle) Status(ctx context.Context) (*Box, error) {
	svc, err := status.NewService(status.ServiceConfig{
		Repository: b.cfg.repo,
		Logger:     b.cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	box, err := svc.Run(ctx, status.Request{BoxID: b.id})
	if err != nil {
		return nil, mapError(err)
	}

	out := fromInternalBox(*box)
	return &out, nil
}

// WaitUntilReady blocks until the box is running.
//
// It fails with [ErrRemoteFailure] as soon as the box reaches a terminal
// status, with [ErrReadinessTimeout] when MaxWait elapses, and with any request
// error found while polling. Pass nil opts for the client defaults.
func (b *BoxHandle) WaitUntilReady(ctx context.Context, opts *WaitOpts) error {
	svc, err := wait.NewService(wait.ServiceConfig{
		Repository: b.cfg.repo,
		Logger:     b.cfg.logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	req := wait.Request{
		BoxID:        b.id,
		PollInterval: b.cfg.pollInterval,
		MaxWait:      b.cfg.maxWait,
	}
	if opts != nil {
		if opts.PollInterval > 0 {
			req.PollInterval = opts.PollInterval
		}
		if opts.MaxWait > 0 {
			req.MaxWait = opts.MaxWait
		}
	}

	if _, err := svc.Run(ctx, req); err != nil {
		return mapError(err)
	}

	return nil
}

// Stop terminates the box.
//
// Stopping an already stopped or unknown box returns an error (e.g. [ErrNotFound]),
// cleanup code can safely ignore it.
func (b *BoxHandle) Stop(ctx context.Context) error {
	svc, err := stop.NewService(stop.ServiceConfig{
		Repository: b.cfg.repo,
		Logger:     b.cfg.logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if err := svc.Run(ctx, stop.Request{BoxID: b.id}); err != nil {
		return mapError(err)
	}

	return nil
}
