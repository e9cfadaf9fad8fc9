package lib

import (
	"context"
	"fmt"

	"github.com/tavor-dev/tavor-go/internal/app/managed"
)

// WithSandbox creates a box, waits until it is ready, runs work on it and stops it.
//
// The box is stopped on every exit path once created: success, readiness
// failure, work error, panic or context cancellation. The returned value and
// error are always the ones of the readiness wait or the work. A failure
// stopping the box is logged, never returned.
//
// When cfg doesn't set a timeout, the client BoxTimeout is used. A malformed
// TAVOR_BOX_TIMEOUT fails here with [ErrNotValid] before any request.
func WithSandbox[T any](ctx context.Context, c *Client, cfg *BoxConfig, work func(ctx context.Context, box *BoxHandle) (T, error)) (T, error) {
	var result T

	svc, err := managed.NewService(managed.ServiceConfig{
		Repository:    c.cfg.repo,
		BoxTimeout:    c.cfg.boxTimeout,
		BoxTimeoutErr: c.cfg.boxTimeoutErr,
		Logger:        c.cfg.logger,
	})
	if err != nil {
		return result, fmt.Errorf("could not create service: %w", err)
	}

	err = svc.Run(ctx, managed.Request{
		Config:       toInternalBoxConfig(cfg),
		PollInterval: c.cfg.pollInterval,
		MaxWait:      c.cfg.maxWait,
	}, func(ctx context.Context, boxID string) error {
		var err error
		result, err = work(ctx, newBoxHandle(boxID, c.cfg))
		return err
	})
	if err != nil {
		var zero T
		return zero, mapError(err)
	}

	return result, nil
}
