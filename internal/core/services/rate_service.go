package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/khazna-app/khazna_backend/internal/apperrors"
	"github.com/khazna-app/khazna_backend/internal/core/domain"
	portsrepo "github.com/khazna-app/khazna_backend/internal/core/ports/repositories"
	portssvc "github.com/khazna-app/khazna_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// rateService implements the RateSvcFacade interface. The table holds
// simulated rates: refresh applies random jitter to the seeded values, there
// is no market-data feed behind it.
type rateService struct {
	BaseService
	rateRepo portsrepo.RateRepositoryFacade
	baseCode string
	jitter   func() float64
}

// RateServiceOption is a functional option for configuring the rate service
type RateServiceOption func(*rateService)

// WithJitterSource overrides the jitter draw, used by tests to make
// refreshes deterministic.
func WithJitterSource(jitter func() float64) RateServiceOption {
	return func(s *rateService) {
		s.jitter = jitter
	}
}

// NewRateService creates a new rate service with the provided options.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, baseCode string, options ...RateServiceOption) portssvc.RateSvcFacade {
	svc := &rateService{
		rateRepo: rateRepo,
		baseCode: strings.ToUpper(baseCode),
		// Uniform draw from [-0.01, 0.01).
		jitter: func() float64 { return rand.Float64()*0.02 - 0.01 },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func (s *rateService) GetRateByCode(ctx context.Context, code string) (*domain.CurrencyRate, error) {
	code = strings.ToUpper(code)
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindRateByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate in service: %w", err)
	}
	return rate, nil
}

func (s *rateService) ListRates(ctx context.Context) ([]domain.CurrencyRate, time.Time, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to list rates in service: %w", err)
	}
	refreshedAt, err := s.rateRepo.LastRefreshedAt(ctx)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read rate refresh time in service: %w", err)
	}
	if rates == nil {
		rates = []domain.CurrencyRate{}
	}
	return rates, refreshedAt, nil
}

// RefreshRates replaces every non-base rate with rate*(1+U) where U is drawn
// uniformly from [-0.01, 0.01). The base entry stays fixed at 1.
func (s *rateService) RefreshRates(ctx context.Context) ([]domain.CurrencyRate, time.Time, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to refresh rates in service: %w", err)
	}

	refreshed := make([]domain.CurrencyRate, len(rates))
	for i, rate := range rates {
		if rate.Code == s.baseCode {
			rate.Rate = decimal.NewFromInt(1)
		} else {
			factor := decimal.NewFromFloat(1 + s.jitter())
			rate.Rate = rate.Rate.Mul(factor)
		}
		refreshed[i] = rate
	}

	now := time.Now()
	if err := s.rateRepo.ReplaceRates(ctx, refreshed, now); err != nil {
		s.LogError(ctx, err, "Failed to replace rate table")
		return nil, time.Time{}, fmt.Errorf("failed to refresh rates in service: %w", err)
	}

	s.LogInfo(ctx, "Rate table refreshed", slog.Int("count", len(refreshed)))
	return refreshed, now, nil
}

// Convert computes (amount / rate(from)) * rate(to). Unknown codes fail with
// a not-found error; conversion between a code and itself is the identity.
func (s *rateService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	from, err := s.rateRepo.FindRateByCode(ctx, strings.ToUpper(fromCode))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: currency code '%s' not in rate table", apperrors.ErrNotFound, fromCode)
		}
		return decimal.Zero, fmt.Errorf("failed to resolve 'from' currency '%s': %w", fromCode, err)
	}

	to, err := s.rateRepo.FindRateByCode(ctx, strings.ToUpper(toCode))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: currency code '%s' not in rate table", apperrors.ErrNotFound, toCode)
		}
		return decimal.Zero, fmt.Errorf("failed to resolve 'to' currency '%s': %w", toCode, err)
	}

	return amount.Div(from.Rate).Mul(to.Rate), nil
}
