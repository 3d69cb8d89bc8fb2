package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/khazna-app/khazna_backend/internal/apperrors"
	"github.com/khazna-app/khazna_backend/internal/core/domain"
)

// RateRepository is an in-memory currency rate table.
type RateRepository struct {
	mu          sync.RWMutex
	rates       []domain.CurrencyRate
	refreshedAt time.Time
}

// NewRateRepository creates a rate table seeded with the given entries.
func NewRateRepository(seed []domain.CurrencyRate, seededAt time.Time) *RateRepository {
	return &RateRepository{
		rates:       slices.Clone(seed),
		refreshedAt: seededAt,
	}
}

// FindRateByCode retrieves a rate entry by currency code.
func (r *RateRepository) FindRateByCode(_ context.Context, code string) (*domain.CurrencyRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.rates {
		if r.rates[i].Code == code {
			rate := r.rates[i]
			return &rate, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListRates returns a copy of the table in its seeded order.
func (r *RateRepository) ListRates(_ context.Context) ([]domain.CurrencyRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.rates), nil
}

// LastRefreshedAt returns the time of the last table replacement.
func (r *RateRepository) LastRefreshedAt(_ context.Context) (time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.refreshedAt, nil
}

// ReplaceRates swaps the whole table and records the refresh time.
func (r *RateRepository) ReplaceRates(_ context.Context, rates []domain.CurrencyRate, refreshedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates = slices.Clone(rates)
	r.refreshedAt = refreshedAt
	return nil
}
