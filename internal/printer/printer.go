package printer

import "github.com/tavor-dev/tavor-go/internal/model"

// Printer knows how to print box information in different formats.
type Printer interface {
	PrintList(boxes []model.Box) error
	PrintStatus(box model.Box) error
	PrintMessage(msg string) error
}
