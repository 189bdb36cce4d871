package v1

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/quote-service/config"
	"github.com/duynhne/quote-service/internal/core/domain"
	"github.com/duynhne/quote-service/middleware"
)

// SubjectPrefix starts every notification subject; the submitter's name follows.
const SubjectPrefix = "New Sunday Studio quote request: "

// QuoteService validates quote requests and relays them to the email provider
type QuoteService struct {
	cfg    config.EmailConfig
	sender domain.EmailSender
}

// NewQuoteService creates a quote service. cfg is read once here; the handler
// never looks at the environment.
func NewQuoteService(cfg config.EmailConfig, sender domain.EmailSender) *QuoteService {
	return &QuoteService{
		cfg:    cfg,
		sender: sender,
	}
}

// Submit checks the request, then makes exactly one delivery attempt.
// It returns a submission id used only for log correlation.
//
// Errors wrap domain.ErrMissingFields, domain.ErrNotConfigured or domain.ErrDeliveryFailed.
func (s *QuoteService) Submit(ctx context.Context, req domain.QuoteRequest) (string, error) {
	ctx, span := middleware.StartSpan(ctx, "quote.submit", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if req.Missing() {
		middleware.ObserveQuote(middleware.OutcomeInvalid)
		span.SetAttributes(attribute.Bool("request.valid", false))
		return "", domain.ErrMissingFields
	}

	if !s.cfg.IsConfigured() {
		middleware.ObserveQuote(middleware.OutcomeNotConfigured)
		span.SetAttributes(attribute.Bool("email.configured", false))
		return "", fmt.Errorf("check %s settings: %w", s.sender.Name(), domain.ErrNotConfigured)
	}

	id := uuid.NewString()
	span.SetAttributes(
		attribute.String("quote.id", id),
		attribute.String("email.provider", s.sender.Name()),
		attribute.Bool("quote.date_specified", req.Date != ""),
	)

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.sender.Send(ctx, s.BuildMessage(req))
	middleware.ObserveProviderCall(s.sender.Name(), err == nil, time.Since(start))
	if err != nil {
		middleware.ObserveQuote(middleware.OutcomeFailed)
		middleware.RecordError(ctx, err)
		return id, fmt.Errorf("deliver quote %s via %s: %w: %w", id, s.sender.Name(), domain.ErrDeliveryFailed, err)
	}

	middleware.ObserveQuote(middleware.OutcomeSent)
	middleware.AddSpanEvent(ctx, "quote.sent")
	return id, nil
}

// BuildMessage assembles the notification for req using the configured addresses.
func (s *QuoteService) BuildMessage(req domain.QuoteRequest) domain.EmailMessage {
	from := s.cfg.From
	if from == "" {
		from = config.DefaultSender
	}
	return domain.EmailMessage{
		From:    from,
		To:      []string{s.cfg.To},
		Subject: SubjectPrefix + req.Name,
		Text:    BuildBody(req),
		ReplyTo: req.Email,
	}
}

// BuildBody renders the plain-text body. Details are copied verbatim.
func BuildBody(req domain.QuoteRequest) string {
	return strings.Join([]string{
		"Name: " + req.Name,
		"Email: " + req.Email,
		"Phone: " + req.Phone,
		"Preferred date: " + req.PreferredDate(),
		"",
		"Details:",
		req.Details,
	}, "\n")
}
