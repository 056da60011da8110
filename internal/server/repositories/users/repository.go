package users

import (
	"context"

	"github.com/alexsk87/notehub/internal/server/models"
)

// Repository is the storage contract for user accounts. GetByLogin accepts
// either a username or a normalized email.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
