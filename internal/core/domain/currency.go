package domain

import "github.com/shopspring/decimal"

// BaseCurrencyCode is the designated base currency; its rate is fixed at 1
// and every other rate is expressed relative to it.
const BaseCurrencyCode = "USD"

// CurrencyRate holds one entry of the rate table. Rates are simulated: they
// start from a static seed and a manual refresh applies random jitter, there
// is no real market-data source behind them.
type CurrencyRate struct {
	Code string          `json:"code"` // Primary Key (e.g., "USD")
	Name string          `json:"name"` // e.g., "دولار أمريكي"
	Rate decimal.Decimal `json:"rate"` // Positive, relative to BaseCurrencyCode
}
