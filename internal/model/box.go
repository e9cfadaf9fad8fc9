package model

import (
	"encoding/json"
	"time"
)

// BoxStatus is the remote lifecycle state of a box as reported by the service.
type BoxStatus string

const (
	// BoxStatusQueued indicates the box is waiting to be scheduled.
	BoxStatusQueued BoxStatus = "queued"
	// BoxStatusProvisioning indicates the box resources are being allocated.
	BoxStatusProvisioning BoxStatus = "provisioning"
	// BoxStatusBooting indicates the box is starting.
	BoxStatusBooting BoxStatus = "booting"
	// BoxStatusRunning indicates the box is ready to accept work.
	BoxStatusRunning BoxStatus = "running"
	// BoxStatusStopped indicates the box has been stopped.
	BoxStatusStopped BoxStatus = "stopped"
	// BoxStatusFinished indicates the box reached the end of its lifetime.
	BoxStatusFinished BoxStatus = "finished"
	// BoxStatusFailed indicates the box could not be provisioned.
	BoxStatusFailed BoxStatus = "failed"
	// BoxStatusError indicates the service hit an error running the box.
	BoxStatusError BoxStatus = "error"
)

// IsReady returns true when the box can be used.
func (s BoxStatus) IsReady() bool {
	return s == BoxStatusRunning
}

// IsTerminal returns true when the box will never become ready.
func (s BoxStatus) IsTerminal() bool {
	switch s {
	case BoxStatusStopped, BoxStatusFinished, BoxStatusFailed, BoxStatusError:
		return true
	}
	return false
}

// Box is the client side projection of a remote box.
type Box struct {
	ID        string         `json:"id"`
	Status    BoxStatus      `json:"status"`
	Timeout   *int           `json:"timeout,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CPU       *int           `json:"cpu,omitempty"`
	MiBRAM    *int           `json:"mib_ram,omitempty"`
	Hostname  string         `json:"hostname,omitempty"`
	Details   string         `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// BoxConfig is the box creation request. Nil fields are not sent.
type BoxConfig struct {
	// Timeout is the requested box lifetime in seconds.
	Timeout *int `json:"timeout,omitempty"`
	// Metadata is sent when not nil, an empty map is sent as {}.
	Metadata map[string]any `json:"metadata,omitempty"`
	CPU      *int           `json:"cpu,omitempty"`
	MiBRAM   *int           `json:"mib_ram,omitempty"`
}

// MarshalJSON omits only a nil metadata, omitempty would also drop an empty one.
func (c BoxConfig) MarshalJSON() ([]byte, error) {
	type plain BoxConfig
	out := struct {
		plain
		Metadata *map[string]any `json:"metadata,omitempty"`
	}{plain: plain(c)}
	if c.Metadata != nil {
		out.Metadata = &c.Metadata
	}

	return json.Marshal(out)
}
