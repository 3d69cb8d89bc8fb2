package dto

import (
	"time"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to append a ledger entry.
// The identifier and creator are assigned by the service and must not be
// supplied by the caller.
type CreateTransactionRequest struct {
	Description  string              `json:"description" binding:"required"`
	Amount       decimal.Decimal     `json:"amount"`
	CurrencyCode string              `json:"currencyCode" binding:"required,uppercase,len=3"`
	Date         string              `json:"date" binding:"required,dateonly"`
	Kind         string              `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Category     string              `json:"category"`
	ClientID     string              `json:"clientID"`
	ExchangeRate decimal.NullDecimal `json:"exchangeRate"`
	Notes        string              `json:"notes"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string              `json:"transactionID"`
	Description   string              `json:"description"`
	Amount        decimal.Decimal     `json:"amount"`
	CurrencyCode  string              `json:"currencyCode"`
	Date          string              `json:"date"`
	Kind          string              `json:"kind"`
	Category      string              `json:"category"`
	ClientID      string              `json:"clientID,omitempty"`
	CreatedBy     string              `json:"createdBy"`
	ExchangeRate  decimal.NullDecimal `json:"exchangeRate,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Description:   txn.Description,
		Amount:        txn.Amount,
		CurrencyCode:  txn.CurrencyCode,
		Date:          txn.Date.Format("2006-01-02"),
		Kind:          string(txn.Kind),
		Category:      txn.Category,
		ClientID:      txn.ClientID,
		CreatedBy:     txn.CreatedBy,
		ExchangeRate:  txn.ExchangeRate,
		Notes:         txn.Notes,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// SeriesPointResponse is one charting datum in the dashboard response.
type SeriesPointResponse struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// SummaryResponse defines the dashboard aggregates returned to the caller.
type SummaryResponse struct {
	CurrencyCode string          `json:"currencyCode,omitempty"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetBalance   decimal.Decimal `json:"netBalance"`
}

// ToSummaryResponse converts a domain.Summary to SummaryResponse DTO
func ToSummaryResponse(s *domain.Summary, currencyCode string) SummaryResponse {
	return SummaryResponse{
		CurrencyCode: currencyCode,
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		NetBalance:   s.NetBalance,
	}
}

// ToSeriesResponse converts domain series points to response DTOs
func ToSeriesResponse(points []domain.SeriesPoint) []SeriesPointResponse {
	res := make([]SeriesPointResponse, len(points))
	for i, p := range points {
		res[i] = SeriesPointResponse{Label: p.Label, Amount: p.Amount}
	}
	return res
}
