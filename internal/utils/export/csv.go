package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
)

// utf8BOM is prepended so spreadsheet tools detect the encoding; without it
// Excel mangles the Arabic text fields.
const utf8BOM = "\xef\xbb\xbf"

var csvHeader = []string{
	"id", "description", "amount", "currency", "exchangeRate",
	"kind", "category", "date", "createdBy", "notes", "client",
}

// ClientNameResolver maps a client ID to a display name; it returns the
// empty string for an absent or unknown reference.
type ClientNameResolver func(clientID string) string

// TransactionsCSV renders the ledger as a single UTF-8 CSV blob: BOM prefix,
// header row, then one row per transaction in the given order. Quoting
// (fields containing commas or quotes, with internal quotes doubled) is
// handled by encoding/csv.
func TransactionsCSV(txns []domain.Transaction, resolveClient ClientNameResolver) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range txns {
		txn := &txns[i]

		exchangeRate := ""
		if txn.ExchangeRate.Valid {
			exchangeRate = txn.ExchangeRate.Decimal.String()
		}
		clientName := ""
		if txn.ClientID != "" && resolveClient != nil {
			clientName = resolveClient(txn.ClientID)
		}

		record := []string{
			txn.TransactionID,
			txn.Description,
			txn.Amount.String(),
			txn.CurrencyCode,
			exchangeRate,
			txn.Kind.Label(),
			txn.Category,
			txn.Date.Format("2006-01-02"),
			txn.CreatedBy,
			txn.Notes,
			clientName,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename builds the download filename for an export taken on the given day.
func Filename(appName string, on time.Time) string {
	return fmt.Sprintf("%s_transactions_%s.csv", appName, on.Format("2006-01-02"))
}
