package repositories

import "context"

// TextGenerator is the outbound port to the external text-generation service.
// Implementations are fallible and may block on network latency; callers are
// expected to bound them with a context deadline.
type TextGenerator interface {
	// GenerateText produces free-text output for a free-text prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
