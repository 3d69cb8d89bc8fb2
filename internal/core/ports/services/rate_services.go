package services

import (
	"context"
	"time"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReaderSvc defines read operations for the currency rate table
type RateReaderSvc interface {
	// GetRateByCode retrieves a specific rate entry by currency code.
	GetRateByCode(ctx context.Context, code string) (*domain.CurrencyRate, error)

	// ListRates retrieves the rate table and the last refresh time.
	ListRates(ctx context.Context) ([]domain.CurrencyRate, time.Time, error)

	// Convert converts an amount between two currencies of the table.
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
}

// RateWriterSvc defines write operations for the currency rate table
type RateWriterSvc interface {
	// RefreshRates applies simulated jitter to every non-base entry and
	// returns the new table with the refresh time.
	RefreshRates(ctx context.Context) ([]domain.CurrencyRate, time.Time, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
