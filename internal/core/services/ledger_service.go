package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/khazna-app/khazna_backend/internal/apperrors"
	"github.com/khazna-app/khazna_backend/internal/core/domain"
	portsrepo "github.com/khazna-app/khazna_backend/internal/core/ports/repositories"
	portssvc "github.com/khazna-app/khazna_backend/internal/core/ports/services"
	"github.com/khazna-app/khazna_backend/internal/dto"
	"github.com/khazna-app/khazna_backend/internal/utils/export"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	clientReader portsrepo.ClientReader
	userReader   portsrepo.UserReader
	rateReader   portsrepo.RateReader
	appName      string
}

// NewLedgerService creates a new ledger service. The client reader resolves
// counterparty names for exports, the user reader supplies the current actor
// stamped on new entries, and the rate reader backs currency-normalized
// aggregates.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	clientReader portsrepo.ClientReader,
	userReader portsrepo.UserReader,
	rateReader portsrepo.RateReader,
	appName string,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:   ledgerRepo,
		clientReader: clientReader,
		userReader:   userReader,
		rateReader:   rateReader,
		appName:      appName,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateTransaction validates the entry, assigns a fresh UUID, stamps the
// current actor's name and prepends it to the ledger.
func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description must not be empty", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	kind := domain.TransactionKind(req.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: kind must be INCOME or EXPENSE", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", apperrors.ErrValidation)
	}

	if req.ExchangeRate.Valid && req.ExchangeRate.Decimal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate snapshot must be positive", apperrors.ErrValidation)
	}

	// The currency must be a known rate-table entry; form select values are
	// validated here rather than trusted.
	if _, err := s.rateReader.FindRateByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown currency code '%s'", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate currency '%s': %w", req.CurrencyCode, err)
	}

	if req.ClientID != "" {
		if _, err := s.clientReader.FindClientByID(ctx, req.ClientID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown client '%s'", apperrors.ErrValidation, req.ClientID)
			}
			return nil, fmt.Errorf("failed to validate client '%s': %w", req.ClientID, err)
		}
	}

	actor, err := s.userReader.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current actor: %w", err)
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = domain.DefaultCategory
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   description,
		Amount:        req.Amount,
		CurrencyCode:  req.CurrencyCode,
		Date:          date,
		Kind:          kind,
		Category:      category,
		ClientID:      req.ClientID,
		CreatedBy:     actor.Name,
		ExchangeRate:  req.ExchangeRate,
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
	}

	if err := s.ledgerRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("created_by", txn.CreatedBy))
	return &txn, nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction by ID in service: %w", err)
	}
	return txn, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// Summary sums raw magnitudes per kind. Amounts in different currencies are
// summed as if comparable; the deployment assumes a single working currency.
// Use SummaryInCurrency for mixed-currency ledgers.
func (s *ledgerService) Summary(ctx context.Context) (*domain.Summary, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to derive summary in service: %w", err)
	}
	return summarize(txns, nil), nil
}

// SummaryInCurrency converts every amount into the target currency through
// the rate table before summing.
func (s *ledgerService) SummaryInCurrency(ctx context.Context, currencyCode string) (*domain.Summary, error) {
	target, err := s.rateReader.FindRateByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target currency '%s': %w", currencyCode, err)
	}

	txns, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to derive summary in service: %w", err)
	}

	rates := map[string]decimal.Decimal{target.Code: target.Rate}
	for i := range txns {
		code := txns[i].CurrencyCode
		if _, ok := rates[code]; ok {
			continue
		}
		rate, err := s.rateReader.FindRateByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve transaction currency '%s': %w", code, err)
		}
		rates[code] = rate.Rate
	}

	convert := func(txn *domain.Transaction) decimal.Decimal {
		return txn.Amount.Div(rates[txn.CurrencyCode]).Mul(target.Rate)
	}
	return summarize(txns, convert), nil
}

// TimeSeries produces one signed (date, amount) point per transaction in
// ledger order. The sequence is rebuilt on every call; the ledger is small
// enough that memoization buys nothing.
func (s *ledgerService) TimeSeries(ctx context.Context) ([]domain.SeriesPoint, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build time series in service: %w", err)
	}

	points := make([]domain.SeriesPoint, len(txns))
	for i := range txns {
		points[i] = domain.SeriesPoint{
			Label:  txns[i].Date.Format("2006-01-02"),
			Amount: txns[i].SignedAmount(),
		}
	}
	return points, nil
}

// ExportCSV renders the ledger as a CSV blob and returns it with the dated
// download filename. Client references are resolved through the directory;
// unknown references render as empty fields rather than failing the export.
func (s *ledgerService) ExportCSV(ctx context.Context) ([]byte, string, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to export transactions in service: %w", err)
	}

	resolve := func(clientID string) string {
		client, err := s.clientReader.FindClientByID(ctx, clientID)
		if err != nil {
			return ""
		}
		return client.Name
	}

	blob, err := export.TransactionsCSV(txns, resolve)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render transactions CSV: %w", err)
	}

	return blob, export.Filename(s.appName, time.Now()), nil
}

func summarize(txns []domain.Transaction, convert func(*domain.Transaction) decimal.Decimal) *domain.Summary {
	summary := &domain.Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for i := range txns {
		amount := txns[i].Amount
		if convert != nil {
			amount = convert(&txns[i])
		}
		if txns[i].Kind == domain.KindIncome {
			summary.TotalIncome = summary.TotalIncome.Add(amount)
		} else {
			summary.TotalExpense = summary.TotalExpense.Add(amount)
		}
	}
	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}
