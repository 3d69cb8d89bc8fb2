package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/khazna-app/khazna_backend/internal/apperrors"
	"github.com/khazna-app/khazna_backend/internal/core/domain"
	portsrepo "github.com/khazna-app/khazna_backend/internal/core/ports/repositories"
	portssvc "github.com/khazna-app/khazna_backend/internal/core/ports/services"
	"github.com/khazna-app/khazna_backend/internal/dto"
	"github.com/google/uuid"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser appends a new user with a fresh ID. Duplicate names and emails
// are permitted.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	actorID := ""
	if actor, err := s.userRepo.CurrentUser(ctx); err == nil {
		actorID = actor.UserID
	}

	now := time.Now()
	user := domain.User{
		UserID:    uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      domain.UserRole(req.Role),
		AvatarURL: req.AvatarURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users in service: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, err := s.userRepo.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user in service: %w", err)
	}
	return user, nil
}

// UpdateCurrentUser updates the stored user and moves the current-actor
// designation to it in one step, so the pointer and the collection can never
// diverge. An unknown userID is rejected rather than silently ignored.
func (s *userService) UpdateCurrentUser(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user '%s' not in directory", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to update current user in service: %w", err)
	}

	updated := *existing
	updated.Name = req.Name
	updated.Email = req.Email
	updated.Role = domain.UserRole(req.Role)
	updated.AvatarURL = req.AvatarURL
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update current user in service: %w", err)
	}
	if err := s.userRepo.SetCurrentUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to designate current user in service: %w", err)
	}

	s.LogInfo(ctx, "Current user profile updated", slog.String("user_id", userID))
	return &updated, nil
}
