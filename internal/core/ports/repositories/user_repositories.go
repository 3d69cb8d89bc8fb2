package repositories

import (
	"context"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users in insertion order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CurrentUser retrieves the designated current actor.
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser replaces the stored user with the same UserID.
	UpdateUser(ctx context.Context, user domain.User) error

	// SetCurrentUser designates the current actor.
	SetCurrentUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
