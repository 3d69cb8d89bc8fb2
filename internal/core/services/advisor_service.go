package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	portsrepo "github.com/khazna-app/khazna_backend/internal/core/ports/repositories"
	portssvc "github.com/khazna-app/khazna_backend/internal/core/ports/services"
)

// Fixed user-displayable fallbacks. The advisory boundary never surfaces an
// error to its callers.
const (
	adviceMissingKey = "عذراً، خدمة الذكاء الاصطناعي غير متوفرة حالياً (مفتاح API مفقود)."
	adviceEmpty      = "لا توجد نصيحة متاحة حالياً."
	adviceFailure    = "حدث خطأ أثناء استشارة الحكيم الإلكتروني."
)

// advisorSnapshotSize caps how many recent transactions are summarized into
// the advisory prompt.
const advisorSnapshotSize = 10

// latestText tracks the most recently issued request per concern so a slow
// response cannot overwrite the result of a newer one.
type latestText struct {
	mu   sync.Mutex
	gen  uint64
	text string
}

// deliver records text for generation gen unless a newer generation already
// delivered, and returns the text that should be displayed.
func (l *latestText) deliver(gen uint64, text string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen >= l.gen {
		l.gen = gen
		l.text = text
	}
	return l.text
}

// advisorService implements the AdvisorSvc interface on top of an external
// text generator. A nil generator means no credential is configured and every
// call degrades to its fallback.
type advisorService struct {
	BaseService
	generator    portsrepo.TextGenerator
	ledgerReader portsrepo.TransactionReader
	timeout      time.Duration

	seq     atomic.Uint64
	advice  latestText
	insight latestText
}

// NewAdvisorService creates a new advisor service. Pass a nil generator to
// run with advisory features disabled.
func NewAdvisorService(generator portsrepo.TextGenerator, ledgerReader portsrepo.TransactionReader, timeout time.Duration) portssvc.AdvisorSvc {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &advisorService{
		generator:    generator,
		ledgerReader: ledgerReader,
		timeout:      timeout,
	}
}

var _ portssvc.AdvisorSvc = (*advisorService)(nil)

func (s *advisorService) Enabled() bool {
	return s.generator != nil
}

// FinancialAdvice summarizes the most recent transactions into a prompt and
// returns the generated commentary, or a fixed apology on any failure.
func (s *advisorService) FinancialAdvice(ctx context.Context) string {
	if s.generator == nil {
		return adviceMissingKey
	}
	gen := s.seq.Add(1)

	txns, err := s.ledgerReader.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot ledger for advice")
		return s.advice.deliver(gen, adviceFailure)
	}
	if len(txns) > advisorSnapshotSize {
		txns = txns[:advisorSnapshotSize]
	}

	var summary strings.Builder
	for i := range txns {
		fmt.Fprintf(&summary, "- %s: %s (%s %s)\n",
			txns[i].Kind.Label(), txns[i].Description, txns[i].Amount.String(), txns[i].CurrencyCode)
	}

	prompt := fmt.Sprintf(
		"بصفتك مستشاراً مالياً حكيماً يمتلك حكمة الفراعنة القدماء، قم بتحليل هذه المعاملات المالية وقدم نصيحة موجزة وقوية باللغة العربية لإدارة الثروة بشكل أفضل:\n\n%s\nاجعل النصيحة قصيرة (أقل من 50 كلمة) ومستوحاة من أسلوب الكتابة القديم ولكن عملية.",
		summary.String())

	text := s.generate(ctx, prompt)
	switch text {
	case "":
		return s.advice.deliver(gen, adviceEmpty)
	case adviceFailure:
		return s.advice.deliver(gen, adviceFailure)
	default:
		return s.advice.deliver(gen, text)
	}
}

// CurrencyInsight returns market commentary for the currency code, or the
// empty string on any failure. A response superseded by a newer request is
// discarded and the newer result wins.
func (s *advisorService) CurrencyInsight(ctx context.Context, code string) string {
	if s.generator == nil {
		return ""
	}
	gen := s.seq.Add(1)

	prompt := fmt.Sprintf(
		"أعطني تحليلاً سريعاً جداً وتوقعاً بسيطاً لسوق العملات اليوم بالنسبة لـ %s. باللغة العربية.", code)

	text := s.generate(ctx, prompt)
	if text == adviceFailure {
		text = ""
	}
	return s.insight.deliver(gen, text)
}

// generate calls the external generator under the configured timeout and
// maps every failure to the adviceFailure sentinel.
func (s *advisorService) generate(ctx context.Context, prompt string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Text generation failed", slog.Duration("timeout", s.timeout))
		return adviceFailure
	}
	return strings.TrimSpace(text)
}
