package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/iudanet/patinfly/internal/models"
)

// UserStorage defines local cache operations for users
type UserStorage interface {
	// SaveUser inserts or replaces a user (keyed by UUID)
	SaveUser(ctx context.Context, user *models.User) error

	// GetUser returns a user by UUID
	// Returns ErrUserNotFound if user doesn't exist
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetUserByEmail returns a user by exact (not normalized) email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetAllUsers returns all cached users
	GetAllUsers(ctx context.Context) ([]*models.User, error)

	// DeleteUser removes the record with user's UUID
	DeleteUser(ctx context.Context, user *models.User) error
}
