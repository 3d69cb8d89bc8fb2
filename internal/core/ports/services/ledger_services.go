package services

import (
	"context"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
	"github.com/khazna-app/khazna_backend/internal/dto"
)

// LedgerReaderSvc defines read operations over the transaction ledger
type LedgerReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions, most recent first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// Summary derives the total income, total expense and net balance.
	// Amounts are summed as raw magnitudes across currencies.
	Summary(ctx context.Context) (*domain.Summary, error)

	// SummaryInCurrency derives the same aggregates with every amount
	// converted into the given currency through the rate table first.
	SummaryInCurrency(ctx context.Context, currencyCode string) (*domain.Summary, error)

	// TimeSeries produces one signed (date, amount) point per transaction
	// in ledger order, for charting.
	TimeSeries(ctx context.Context) ([]domain.SeriesPoint, error)

	// ExportCSV renders the whole ledger as a UTF-8 CSV blob with a BOM
	// prefix, and returns the blob together with its download filename.
	ExportCSV(ctx context.Context) ([]byte, string, error)
}

// LedgerWriterSvc defines write operations over the transaction ledger
type LedgerWriterSvc interface {
	// CreateTransaction assigns a fresh ID, stamps the current actor's name
	// and prepends the entry to the ledger.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
