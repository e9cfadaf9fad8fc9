package lib

import (
	"errors"
	"fmt"
	"time"

	"github.com/tavor-dev/tavor-go/internal/model"
)

var (
	// ErrAuthentication is returned when the API key is missing or rejected.
	ErrAuthentication = errors.New("authentication failed")
	// ErrNotFound is returned when the box does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when the request is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrRemoteService is returned when the service fails handling the request.
	ErrRemoteService = errors.New("remote service error")
	// ErrTransport is returned when a request got no response.
	ErrTransport = errors.New("request failed")
	// ErrReadinessTimeout is returned when a box is not ready in time.
	ErrReadinessTimeout = errors.New("readiness timeout")
	// ErrRemoteFailure is returned when a box reaches a terminal status while waiting for it.
	ErrRemoteFailure = errors.New("remote box failure")
)

type (
	// APIError is an HTTP error response, it keeps the status code, the service message and the raw body.
	APIError = model.APIError
	// TransportError is a request that got no response.
	TransportError = model.TransportError
)

// ReadinessTimeoutError is a wait that exceeded its maximum time.
type ReadinessTimeoutError struct {
	BoxID      string
	MaxWait    time.Duration
	LastStatus BoxStatus
}

func (e *ReadinessTimeoutError) Error() string {
	return fmt.Sprintf("box %s not ready after %s (last status: %s): %s", e.BoxID, e.MaxWait, e.LastStatus, ErrReadinessTimeout)
}

func (e *ReadinessTimeoutError) Unwrap() error { return ErrReadinessTimeout }

// RemoteFailureError is a box that reached a terminal status while waiting for it.
type RemoteFailureError struct {
	BoxID  string
	Status BoxStatus
	// Details is the service explanation of the status, if any.
	Details string
}

func (e *RemoteFailureError) Error() string {
	msg := fmt.Sprintf("box %s reached terminal status %s", e.BoxID, e.Status)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg + ": " + ErrRemoteFailure.Error()
}

func (e *RemoteFailureError) Unwrap() error { return ErrRemoteFailure }

var errorMapping = []struct {
	internal error
	public   error
}{
	{model.ErrAuthentication, ErrAuthentication},
	{model.ErrNotFound, ErrNotFound},
	{model.ErrNotValid, ErrNotValid},
	{model.ErrRemoteService, ErrRemoteService},
	{model.ErrTransport, ErrTransport},
	{model.ErrReadinessTimeout, ErrReadinessTimeout},
	{model.ErrRemoteFailure, ErrRemoteFailure},
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	for _, m := range errorMapping {
		if errors.Is(err, m.internal) {
			return &mappedError{original: err, sentinel: m.public, typed: publicTyped(err)}
		}
	}

	return err
}

// publicTyped converts the internal typed errors that carry internal types.
func publicTyped(err error) error {
	var toErr *model.ReadinessTimeoutError
	if errors.As(err, &toErr) {
		return &ReadinessTimeoutError{BoxID: toErr.BoxID, MaxWait: toErr.MaxWait, LastStatus: BoxStatus(toErr.LastStatus)}
	}

	var rfErr *model.RemoteFailureError
	if errors.As(err, &rfErr) {
		return &RemoteFailureError{BoxID: rfErr.BoxID, Status: BoxStatus(rfErr.Status), Details: rfErr.Details}
	}

	return nil
}

type mappedError struct {
	original error
	sentinel error
	// typed is the public typed error for errors.As, nil when there is none.
	typed error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() []error {
	if e.typed != nil {
		return []error{e.typed, e.original}
	}
	return []error{e.original}
}
