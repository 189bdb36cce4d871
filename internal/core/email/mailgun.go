package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/duynhne/quote-service/internal/core/domain"
)

// MailgunSender delivers messages through the Mailgun SDK.
// It is a thin wrapper; the payload mirrors the Resend one field for field.
type MailgunSender struct {
	client *mailgun.MailgunImpl
}

// NewMailgunSender creates a Mailgun sender for domain. apiBase may be empty
// to use the SDK default (US region).
func NewMailgunSender(domainName, apiKey, apiBase string, httpClient *http.Client) *MailgunSender {
	client := mailgun.NewMailgun(domainName, apiKey)
	if apiBase != "" {
		client.SetAPIBase(apiBase)
	}
	if httpClient != nil {
		client.SetClient(httpClient)
	}
	return &MailgunSender{client: client}
}

// Name identifies the provider in logs and metrics
func (s *MailgunSender) Name() string {
	return "mailgun"
}

// Send makes one Mailgun send call.
func (s *MailgunSender) Send(ctx context.Context, msg domain.EmailMessage) error {
	message := s.client.NewMessage(msg.From, msg.Subject, msg.Text, msg.To...)
	if msg.ReplyTo != "" {
		message.SetReplyTo(msg.ReplyTo)
	}

	if _, _, err := s.client.Send(ctx, message); err != nil {
		var unexpected *mailgun.UnexpectedResponseError
		if errors.As(err, &unexpected) {
			return &domain.ProviderError{
				Provider:   s.Name(),
				StatusCode: unexpected.Actual,
				Body:       string(unexpected.Data),
			}
		}
		return fmt.Errorf("request mailgun: %w", err)
	}
	return nil
}
