package dto

import (
	"time"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
)

// CreateClientRequest defines the data needed to add a directory client.
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=customer vendor beneficiary"`
	ContactInfo string `json:"contactInfo"`
	Notes       string `json:"notes"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID    string    `json:"clientID"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	ContactInfo string    `json:"contactInfo"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:    client.ClientID,
		Name:        client.Name,
		Type:        string(client.Type),
		ContactInfo: client.ContactInfo,
		Notes:       client.Notes,
		CreatedAt:   client.CreatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client to response DTOs
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
