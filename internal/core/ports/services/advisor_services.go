package services

import "context"

// AdvisorSvc is the boundary to the external text-generation collaborator.
// Its contract is "never fails, always produces user-displayable text": any
// missing credential, timeout or upstream error is absorbed and converted to
// a fixed fallback string.
type AdvisorSvc interface {
	// Enabled reports whether a credential is configured.
	Enabled() bool

	// FinancialAdvice returns commentary on the most recent transactions,
	// or the fixed apology fallback.
	FinancialAdvice(ctx context.Context) string

	// CurrencyInsight returns market commentary for a currency code, or
	// the empty string on any failure. Responses superseded by a newer
	// request are discarded; the latest request's result wins.
	CurrencyInsight(ctx context.Context, code string) string
}
