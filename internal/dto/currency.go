package dto

import (
	"time"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResponse defines the data returned for one rate table entry.
type RateResponse struct {
	Code string          `json:"code"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

// ListRatesResponse defines the rate table response, including the last
// refresh time shown to the user.
type ListRatesResponse struct {
	BaseCurrencyCode string         `json:"baseCurrencyCode"`
	Rates            []RateResponse `json:"rates"`
	LastRefreshedAt  time.Time      `json:"lastRefreshedAt"`
}

// ConvertRequest defines the query parameters of a conversion.
type ConvertRequest struct {
	Amount decimal.Decimal `form:"amount" binding:"required"`
	From   string          `form:"from" binding:"required,uppercase,len=3"`
	To     string          `form:"to" binding:"required,uppercase,len=3"`
}

// ConvertResponse defines the result of a conversion.
type ConvertResponse struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Result decimal.Decimal `json:"result"`
}

// ToRateResponse converts a domain.CurrencyRate to RateResponse DTO
func ToRateResponse(rate *domain.CurrencyRate) RateResponse {
	return RateResponse{
		Code: rate.Code,
		Name: rate.Name,
		Rate: rate.Rate,
	}
}

// ToListRatesResponse converts the rate table to its response DTO
func ToListRatesResponse(baseCode string, rates []domain.CurrencyRate, refreshedAt time.Time) ListRatesResponse {
	res := ListRatesResponse{
		BaseCurrencyCode: baseCode,
		Rates:            make([]RateResponse, len(rates)),
		LastRefreshedAt:  refreshedAt,
	}
	for i := range rates {
		res.Rates[i] = ToRateResponse(&rates[i])
	}
	return res
}
