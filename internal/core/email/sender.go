// Package email holds the adapters that relay quote notifications to a
// transactional email provider.
package email

import (
	"fmt"
	"net/http"

	"github.com/duynhne/quote-service/config"
	"github.com/duynhne/quote-service/internal/core/domain"
	"github.com/duynhne/quote-service/middleware"
)

// NewSender builds the sender selected by EMAIL_PROVIDER.
// Outbound requests are traced; deadlines come from the caller's context.
func NewSender(cfg config.EmailConfig) (domain.EmailSender, error) {
	httpClient := &http.Client{Transport: middleware.HTTPTransport(nil)}

	switch cfg.Provider {
	case config.ProviderResend, "":
		return NewResendSender(cfg.BaseURL, cfg.APIKey, httpClient), nil
	case config.ProviderMailgun:
		return NewMailgunSender(cfg.MailgunDomain, cfg.APIKey, cfg.MailgunAPIBase, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
