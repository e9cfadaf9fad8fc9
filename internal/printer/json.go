package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/tavor-dev/tavor-go/internal/model"
)

// JSONPrinter prints box information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// listItem represents a box in the list output (subset of fields).
type listItem struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	Hostname  string     `json:"hostname,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// statusOutput represents the full box status output.
type statusOutput struct {
	ID        string         `json:"id"`
	Status    string         `json:"status"`
	Ready     bool           `json:"ready"`
	Terminal  bool           `json:"terminal"`
	Hostname  string         `json:"hostname,omitempty"`
	Details   string         `json:"details,omitempty"`
	CPU       *int           `json:"cpu,omitempty"`
	MiBRAM    *int           `json:"mib_ram,omitempty"`
	Timeout   *int           `json:"timeout,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintList prints boxes in JSON format with a subset of fields.
func (j *JSONPrinter) PrintList(boxes []model.Box) error {
	items := make([]listItem, len(boxes))
	for i, b := range boxes {
		items[i] = listItem{
			ID:        b.ID,
			Status:    string(b.Status),
			Hostname:  b.Hostname,
			CreatedAt: utcTime(b.CreatedAt),
		}
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// PrintStatus prints detailed box status in JSON format.
func (j *JSONPrinter) PrintStatus(box model.Box) error {
	output := statusOutput{
		ID:        box.ID,
		Status:    string(box.Status),
		Ready:     box.Status.IsReady(),
		Terminal:  box.Status.IsTerminal(),
		Hostname:  box.Hostname,
		Details:   box.Details,
		CPU:       box.CPU,
		MiBRAM:    box.MiBRAM,
		Timeout:   box.Timeout,
		Metadata:  box.Metadata,
		CreatedAt: utcTime(box.CreatedAt),
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	output := messageOutput{Message: msg}
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func utcTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}
