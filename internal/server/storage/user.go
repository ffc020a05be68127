package storage

import (
	"context"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// UserStorage defines interface for user account persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if the email is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by login email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateUser updates user information
	// Returns ErrUserNotFound if user doesn't exist
	UpdateUser(ctx context.Context, user *models.User) error

	// DeleteUser deletes user by ID
	// Returns ErrUserNotFound if user doesn't exist
	DeleteUser(ctx context.Context, userID string) error
}
