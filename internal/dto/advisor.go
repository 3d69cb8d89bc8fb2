package dto

// AdviceResponse carries the advisory commentary on the ledger. The text is
// always displayable; failures upstream are replaced with a fixed fallback.
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// InsightResponse carries the currency market commentary. An empty insight
// means the advisory service is disabled or failed.
type InsightResponse struct {
	Code    string `json:"code"`
	Insight string `json:"insight"`
}
