package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/khazna-app/khazna_backend/internal/apperrors"
	"github.com/khazna-app/khazna_backend/internal/core/domain"
)

// ClientRepository is an in-memory, append-only client store.
type ClientRepository struct {
	mu      sync.RWMutex
	clients []domain.Client
}

// NewClientRepository creates an empty in-memory client store.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

// SaveClient appends the client to the directory.
func (r *ClientRepository) SaveClient(_ context.Context, client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append(r.clients, client)
	return nil
}

// FindClientByID retrieves a client by its ID.
func (r *ClientRepository) FindClientByID(_ context.Context, clientID string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.clients {
		if r.clients[i].ClientID == clientID {
			client := r.clients[i]
			return &client, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListClients returns a copy of the directory in insertion order.
func (r *ClientRepository) ListClients(_ context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.clients), nil
}
