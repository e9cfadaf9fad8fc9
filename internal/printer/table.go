package printer

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/tavor-dev/tavor-go/internal/model"
)

// TablePrinter prints box information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintList prints boxes in a table format.
func (t *TablePrinter) PrintList(boxes []model.Box) error {
	if len(boxes) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header
	fmt.Fprintln(tw, "ID\tSTATUS\tHOSTNAME\tCREATED")

	// Print rows
	for _, b := range boxes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ID, b.Status, orDash(b.Hostname), TimeAgo(b.CreatedAt))
	}

	return nil
}

// PrintStatus prints detailed box status.
func (t *TablePrinter) PrintStatus(box model.Box) error {
	fmt.Fprintf(t.writer, "ID:         %s\n", box.ID)
	fmt.Fprintf(t.writer, "Status:     %s\n", box.Status)

	if box.Hostname != "" {
		fmt.Fprintf(t.writer, "Hostname:   %s\n", box.Hostname)
	}
	if box.Details != "" {
		fmt.Fprintf(t.writer, "Details:    %s\n", box.Details)
	}
	if box.CPU != nil {
		fmt.Fprintf(t.writer, "CPU:        %d\n", *box.CPU)
	}
	if box.MiBRAM != nil {
		fmt.Fprintf(t.writer, "Memory:     %s\n", FormatMiB(*box.MiBRAM))
	}
	if box.Timeout != nil {
		fmt.Fprintf(t.writer, "Timeout:    %ds\n", *box.Timeout)
	}
	if !box.CreatedAt.IsZero() {
		fmt.Fprintf(t.writer, "Created:    %s\n", FormatTimestamp(box.CreatedAt))
	}

	if len(box.Metadata) > 0 {
		keys := make([]string, 0, len(box.Metadata))
		for k := range box.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(t.writer, "Metadata:\n")
		for _, k := range keys {
			fmt.Fprintf(t.writer, "  %s: %v\n", k, box.Metadata[k])
		}
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
