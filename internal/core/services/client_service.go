package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
	portsrepo "github.com/khazna-app/khazna_backend/internal/core/ports/repositories"
	portssvc "github.com/khazna-app/khazna_backend/internal/core/ports/services"
	"github.com/khazna-app/khazna_backend/internal/dto"
	"github.com/google/uuid"
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	userReader portsrepo.UserReader
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, userReader portsrepo.UserReader) portssvc.ClientSvcFacade {
	return &clientService{
		clientRepo: clientRepo,
		userReader: userReader,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient appends a new client with a fresh ID. Duplicate names are
// permitted; no uniqueness constraint exists in the directory.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	actorID := ""
	if actor, err := s.userReader.CurrentUser(ctx); err == nil {
		actorID = actor.UserID
	}

	now := time.Now()
	client := domain.Client{
		ClientID:    uuid.NewString(),
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Type:        domain.ClientType(req.Type),
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to create client in service: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID), slog.String("type", string(client.Type)))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client by ID in service: %w", err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients in service: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}
