package remote

import (
	"context"

	"github.com/tavor-dev/tavor-go/internal/model"
)

// Repository is the port to the remote box service.
//
// Implementations return errors from the model error taxonomy.
//
//go:generate mockery --case underscore --output remotemock --outpkg remotemock --name Repository
type Repository interface {
	// CreateBox provisions a new box and returns its ID.
	CreateBox(ctx context.Context, cfg model.BoxConfig) (string, error)
	ListBoxes(ctx context.Context) ([]model.Box, error)
	GetBox(ctx context.Context, id string) (*model.Box, error)
	DeleteBox(ctx context.Context, id string) error
}
