package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/khazna-app/khazna_backend/internal/apperrors"
	"github.com/khazna-app/khazna_backend/internal/core/domain"
)

// UserRepository is an in-memory user store holding the user collection and
// the current-actor designation.
type UserRepository struct {
	mu            sync.RWMutex
	users         []domain.User
	currentUserID string
}

// NewUserRepository creates an empty in-memory user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// SaveUser appends the user to the collection.
func (r *UserRepository) SaveUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	return nil
}

// UpdateUser replaces the stored user with the same UserID.
func (r *UserRepository) UpdateUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].UserID == user.UserID {
			r.users[i] = user
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// FindUserByID retrieves a user by its ID.
func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(userID)
}

// ListUsers returns a copy of the collection in insertion order.
func (r *UserRepository) ListUsers(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.users), nil
}

// CurrentUser returns the designated current actor.
func (r *UserRepository) CurrentUser(_ context.Context) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.currentUserID == "" {
		return nil, apperrors.ErrNotFound
	}
	return r.findLocked(r.currentUserID)
}

// SetCurrentUser designates the current actor. The user must already be in
// the collection.
func (r *UserRepository) SetCurrentUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.findLocked(userID); err != nil {
		return err
	}
	r.currentUserID = userID
	return nil
}

func (r *UserRepository) findLocked(userID string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].UserID == userID {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
