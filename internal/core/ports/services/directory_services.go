package services

import (
	"context"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
	"github.com/khazna-app/khazna_backend/internal/dto"
)

// ClientReaderSvc defines read operations for directory clients
type ClientReaderSvc interface {
	// GetClientByID retrieves a specific client by its ID.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients in insertion order.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for directory clients
type ClientWriterSvc interface {
	// CreateClient persists a new client with a fresh ID.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}

// UserReaderSvc defines read operations for directory users
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by its ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users in insertion order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CurrentUser retrieves the designated current actor.
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// UserWriterSvc defines write operations for directory users
type UserWriterSvc interface {
	// CreateUser persists a new user with a fresh ID.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateCurrentUser updates the current actor's profile fields and the
	// matching entry in the user collection in one step. It fails with a
	// not-found error when the user is absent from the collection.
	UpdateCurrentUser(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
