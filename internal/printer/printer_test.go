package printer_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavor-dev/tavor-go/internal/model"
	"github.com/tavor-dev/tavor-go/internal/printer"
)

func intPtr(i int) *int { return &i }

func boxFixture() model.Box {
	return model.Box{
		ID:        "box-01234567",
		Status:    model.BoxStatusRunning,
		Hostname:  "box-01234567.tavor.app",
		CPU:       intPtr(2),
		MiBRAM:    intPtr(2048),
		Timeout:   intPtr(600),
		Metadata:  map[string]any{"team": "infra", "job": "build-42"},
		CreatedAt: time.Date(2026, 1, 30, 10, 0, 0, 0, time.UTC),
	}
}

func TestTablePrinterPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintStatus(boxFixture())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "ID:         box-01234567")
	assert.Contains(t, out, "Status:     running")
	assert.Contains(t, out, "Memory:     2.0 GiB")
	assert.Contains(t, out, "Created:    2026-01-30 10:00:00 UTC")
	assert.Contains(t, out, "Metadata:\n  job: build-42\n  team: infra\n")
}

func TestTablePrinterPrintStatusMinimal(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintStatus(model.Box{ID: "box-1", Status: model.BoxStatusQueued})
	require.NoError(t, err)

	assert.Equal(t, "ID:         box-1\nStatus:     queued\n", buf.String())
}

func TestTablePrinterPrintList(t *testing.T) {
	tests := map[string]struct {
		boxes    []model.Box
		expLines []string
	}{
		"No boxes should print nothing.": {
			boxes: []model.Box{},
		},
		"Boxes should be printed with a header.": {
			boxes: []model.Box{
				boxFixture(),
				{ID: "box-2", Status: model.BoxStatusBooting},
			},
			expLines: []string{
				"ID",
				"box-01234567  running",
				"box-2         booting",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			p := printer.NewTablePrinter(&buf)

			err := p.PrintList(test.boxes)
			require.NoError(t, err)

			if len(test.expLines) == 0 {
				assert.Empty(t, buf.String())
				return
			}

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, len(test.expLines))
			for i, exp := range test.expLines {
				assert.True(t, strings.HasPrefix(lines[i], exp), "line %d: %q", i, lines[i])
			}
		})
	}
}

func TestJSONPrinterPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	err := p.PrintStatus(boxFixture())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"status": "running"`)
	assert.Contains(t, out, `"ready": true`)
	assert.Contains(t, out, `"terminal": false`)
	assert.Contains(t, out, `"mib_ram": 2048`)
}

func TestJSONPrinterPrintList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	err := p.PrintList([]model.Box{boxFixture(), {ID: "box-2", Status: model.BoxStatusFailed}})
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "box-01234567", got[0]["id"])
	assert.Equal(t, "2026-01-30T10:00:00Z", got[0]["created_at"])
	assert.Equal(t, "failed", got[1]["status"])
	assert.NotContains(t, got[1], "created_at")
}

func TestTablePrinterPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintMessage("ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", strings.TrimSpace(buf.String()))
}
