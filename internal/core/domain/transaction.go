package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is income or an expense.
type TransactionKind string

const (
	KindIncome  TransactionKind = "INCOME"
	KindExpense TransactionKind = "EXPENSE"
)

// IsValid reports whether k is one of the closed set of kinds.
func (k TransactionKind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

// Label returns the display label for the kind.
func (k TransactionKind) Label() string {
	if k == KindIncome {
		return "دخل"
	}
	return "مصروف"
}

// DefaultCategory is stamped on transactions created without a category.
const DefaultCategory = "عام"

// Transaction represents a single ledger entry. The identifier and creator
// are assigned at creation time and never change afterwards; the amount is
// always a non-negative magnitude, its sign is implied by Kind.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`       // Non-negative magnitude
	CurrencyCode  string          `json:"currencyCode"` // e.g., "EGP"
	Date          time.Time       `json:"date"`         // Calendar date, no time component
	Kind          TransactionKind `json:"kind"`
	Category      string          `json:"category"`
	ClientID      string          `json:"clientID,omitempty"` // Optional FK -> Client.clientID
	CreatedBy     string          `json:"createdBy"`          // Acting user's name, denormalized
	ExchangeRate  decimal.NullDecimal `json:"exchangeRate,omitempty"` // Units per one base-currency unit at transaction time
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SignedAmount returns +Amount for income and -Amount for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == KindIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Summary holds the ledger's derived aggregates.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetBalance   decimal.Decimal `json:"netBalance"`
}

// SeriesPoint is one charting datum: the transaction date paired with the
// signed amount, in ledger order.
type SeriesPoint struct {
	Label  string          `json:"label"` // Date formatted as YYYY-MM-DD
	Amount decimal.Decimal `json:"amount"`
}
