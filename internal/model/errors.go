package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAuthentication is returned when the credential is missing or rejected.
	ErrAuthentication = errors.New("authentication failed")
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when the request is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrRemoteService is returned when the remote service fails to handle a request.
	ErrRemoteService = errors.New("remote service error")
	// ErrTransport is returned when a request got no response.
	ErrTransport = errors.New("request failed")
	// ErrReadinessTimeout is returned when a box does not become ready in time.
	ErrReadinessTimeout = errors.New("readiness timeout")
	// ErrRemoteFailure is returned when a box reports a terminal status while waiting for it.
	ErrRemoteFailure = errors.New("remote box failure")
)

// APIError is an HTTP level error returned by the remote service.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the error message extracted from the response.
	Message string
	// Body is the raw response body.
	Body []byte
	// Kind is one of the sentinel errors of this package.
	Kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.StatusCode, e.Message, e.Kind)
}

func (e *APIError) Unwrap() error { return e.Kind }

// TransportError is returned when a request was dispatched but no response was received.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Path, ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{ErrTransport, e.Err} }

// ReadinessTimeoutError is returned when a box does not reach a ready or terminal status in time.
type ReadinessTimeoutError struct {
	BoxID      string
	MaxWait    time.Duration
	LastStatus BoxStatus
}

func (e *ReadinessTimeoutError) Error() string {
	return fmt.Sprintf("box %s not ready after %s (last status: %s): %s", e.BoxID, e.MaxWait, e.LastStatus, ErrReadinessTimeout)
}

func (e *ReadinessTimeoutError) Unwrap() error { return ErrReadinessTimeout }

// RemoteFailureError is returned when a box reports a terminal status while waiting for it.
type RemoteFailureError struct {
	BoxID   string
	Status  BoxStatus
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
