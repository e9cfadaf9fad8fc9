package lib

import (
	"time"

	"github.com/tavor-dev/tavor-go/internal/model"
)

// BoxStatus represents the remote lifecycle state of a box.
//
// The typical lifecycle is:
//
//	queued -> provisioning -> booting -> running -> stopped|finished
//
// A box can also end up failed or in error at any point.
type BoxStatus string

const (
	BoxStatusQueued       BoxStatus = BoxStatus(model.BoxStatusQueued)
	BoxStatusProvisioning BoxStatus = BoxStatus(model.BoxStatusProvisioning)
	BoxStatusBooting      BoxStatus = BoxStatus(model.BoxStatusBooting)
	// BoxStatusRunning is the ready status.
	BoxStatusRunning  BoxStatus = BoxStatus(model.BoxStatusRunning)
	BoxStatusStopped  BoxStatus = BoxStatus(model.BoxStatusStopped)
	BoxStatusFinished BoxStatus = BoxStatus(model.BoxStatusFinished)
	BoxStatusFailed   BoxStatus = BoxStatus(model.BoxStatusFailed)
	BoxStatusError    BoxStatus = BoxStatus(model.BoxStatusError)
)

// IsReady returns true when the box can be used.
func (s BoxStatus) IsReady() bool { return model.BoxStatus(s).IsReady() }

// IsTerminal returns true when the box will never become ready.
func (s BoxStatus) IsTerminal() bool { return model.BoxStatus(s).IsTerminal() }

// Box is a read-only snapshot of a remote box at the time of the API call.
type Box struct {
	ID     string
	Status BoxStatus
	// Timeout is the box lifetime in seconds.
	Timeout *int
	// Metadata is passed through unmodified.
	Metadata  map[string]any
	CPU       *int
	MiBRAM    *int
	Hostname  string
	Details   string
	CreatedAt time.Time
}

// BoxConfig configures box creation.
//
// Every field is optional. Nil fields are not sent to the service so its
// defaults apply.
type BoxConfig struct {
	// Timeout is the requested box lifetime in seconds.
	Timeout *int
	// Metadata is sent when not nil, so an empty map is sent as {}.
	Metadata map[string]any
	CPU      *int
	MiBRAM   *int
}

// WaitOpts configures [BoxHandle.WaitUntilReady].
//
// Pass nil to use the client defaults.
type WaitOpts struct {
	// PollInterval is the time between status checks.
	PollInterval time.Duration
	// MaxWait bounds the whole wait, it is independent from the box timeout.
	MaxWait time.Duration
}

// Int returns a pointer to i, handy for the optional [BoxConfig] fields.
func Int(i int) *int { return &i }

func toInternalBoxConfig(cfg *BoxConfig) model.BoxConfig {
	if cfg == nil {
		return model.BoxConfig{}
	}

	return model.BoxConfig{
		Timeout:  cfg.Timeout,
		Metadata: cfg.Metadata,
		CPU:      cfg.CPU,
		MiBRAM:   cfg.MiBRAM,
	}
}

func fromInternalBox(b model.Box) Box {
	return Box{
		ID:        b.ID,
		Status:    BoxStatus(b.Status),
		Timeout:   b.Timeout,
		Metadata:  b.Metadata,
		CPU:       b.CPU,
		MiBRAM:    b.MiBRAM,
		Hostname:  b.Hostname,
		Details:   b.Details,
		CreatedAt: b.CreatedAt,
	}
}

func fromInternalBoxList(bs []model.Box) []Box {
	result := make([]Box, len(bs))
	for i, b := range bs {
		result[i] = fromInternalBox(b)
	}
	return result
}
