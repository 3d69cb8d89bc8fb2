package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
	"github.com/khazna-app/khazna_backend/internal/utils/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionsCSVEmptyLedger(t *testing.T) {
	blob, err := export.TransactionsCSV(nil, nil)
	require.NoError(t, err)

	out := string(blob)
	assert.True(t, strings.HasPrefix(out, "\xef\xbb\xbf"), "export must start with a UTF-8 BOM")
	assert.Equal(t, "id,description,amount,currency,exchangeRate,kind,category,date,createdBy,notes,client\n",
		strings.TrimPrefix(out, "\xef\xbb\xbf"))
}

func TestTransactionsCSVQuoting(t *testing.T) {
	txns := []domain.Transaction{
		{
			TransactionID: "t1",
			Description:   `He said "hi", ok`,
			Amount:        decimal.NewFromInt(100),
			CurrencyCode:  "EGP",
			Date:          time.Date(2023, 10, 25, 0, 0, 0, 0, time.UTC),
			Kind:          domain.KindIncome,
			Category:      "تجارة",
			CreatedBy:     "تحارقا",
		},
	}

	blob, err := export.TransactionsCSV(txns, nil)
	require.NoError(t, err)

	assert.Contains(t, string(blob), `"He said ""hi"", ok"`)
	assert.Contains(t, string(blob), "2023-10-25")
}

func TestTransactionsCSVResolvesClientName(t *testing.T) {
	txns := []domain.Transaction{
		{
			TransactionID: "t1",
			Description:   "ترميم أعمدة المعبد",
			Amount:        decimal.NewFromInt(5000),
			CurrencyCode:  "EGP",
			Date:          time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC),
			Kind:          domain.KindExpense,
			Category:      "صيانة",
			ClientID:      "c1",
			CreatedBy:     "تحارقا",
		},
		{
			TransactionID: "t2",
			Description:   "بيع محاصيل قمح",
			Amount:        decimal.NewFromInt(15000),
			CurrencyCode:  "EGP",
			Date:          time.Date(2023, 10, 25, 0, 0, 0, 0, time.UTC),
			Kind:          domain.KindIncome,
			Category:      "زراعة",
			CreatedBy:     "أماني ريديس",
		},
	}

	blob, err := export.TransactionsCSV(txns, func(clientID string) string {
		if clientID == "c1" {
			return "معبد الكرنك للتوريدات"
		}
		return ""
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(blob)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "معبد الكرنك للتوريدات")
	// Second transaction carries no client reference.
	assert.True(t, strings.HasSuffix(lines[2], ","))
}

func TestFilename(t *testing.T) {
	on := time.Date(2023, 10, 29, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "khazna_transactions_2023-10-29.csv", export.Filename("khazna", on))
}
