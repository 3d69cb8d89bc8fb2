package repositories

import (
	"context"
	"time"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
)

// RateReader defines read operations for the currency rate table
type RateReader interface {
	// FindRateByCode retrieves a specific rate entry by currency code.
	FindRateByCode(ctx context.Context, code string) (*domain.CurrencyRate, error)

	// ListRates retrieves the whole rate table in its seeded order.
	ListRates(ctx context.Context) ([]domain.CurrencyRate, error)

	// LastRefreshedAt returns the time of the last table replacement.
	LastRefreshedAt(ctx context.Context) (time.Time, error)
}

// RateWriter defines write operations for the currency rate table
type RateWriter interface {
	// ReplaceRates swaps the whole table atomically and records the refresh time.
	ReplaceRates(ctx context.Context, rates []domain.CurrencyRate, refreshedAt time.Time) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
