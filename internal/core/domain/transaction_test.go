package domain_test

import (
	"testing"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionKindIsValid(t *testing.T) {
	assert.True(t, domain.KindIncome.IsValid())
	assert.True(t, domain.KindExpense.IsValid())
	assert.False(t, domain.TransactionKind("TRANSFER").IsValid())
	assert.False(t, domain.TransactionKind("").IsValid())
}

func TestSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(1500)

	income := domain.Transaction{Amount: amount, Kind: domain.KindIncome}
	expense := domain.Transaction{Amount: amount, Kind: domain.KindExpense}

	assert.True(t, income.SignedAmount().Equal(amount))
	assert.True(t, expense.SignedAmount().Equal(amount.Neg()))
}

func TestClientTypeIsValid(t *testing.T) {
	assert.True(t, domain.ClientVendor.IsValid())
	assert.True(t, domain.ClientCustomer.IsValid())
	assert.True(t, domain.ClientBeneficiary.IsValid())
	assert.False(t, domain.ClientType("partner").IsValid())
}

func TestUserRoleIsValid(t *testing.T) {
	assert.True(t, domain.RoleAdmin.IsValid())
	assert.True(t, domain.RoleAccountant.IsValid())
	assert.True(t, domain.RoleViewer.IsValid())
	assert.False(t, domain.UserRole("root").IsValid())
}
