package notes

import (
	"context"

	"github.com/alexsk87/notehub/internal/server/models"
)

// Repository is the storage contract for notes.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	List(ctx context.Context) ([]*models.Note, error)
	Update(ctx context.Context, id string, content string) (*models.Note, error)
	Delete(ctx context.Context, id string) error
}
