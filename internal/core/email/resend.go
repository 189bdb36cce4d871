package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/duynhne/quote-service/internal/core/domain"
)

// maxErrorBody bounds how much of a provider error response is kept for logs.
const maxErrorBody = 64 << 10

// resendPayload is the request body of POST /emails.
type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"reply_to"`
}

// ResendSender delivers messages through the Resend HTTP API
type ResendSender struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewResendSender creates a Resend client. baseURL has no trailing slash,
// e.g. "https://api.resend.com".
func NewResendSender(baseURL, apiKey string, httpClient *http.Client) *ResendSender {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ResendSender{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Name identifies the provider in logs and metrics
func (s *ResendSender) Name() string {
	return "resend"
}

// Send makes one POST to /emails. A non-2xx response is returned as *domain.ProviderError
// carrying the response text.
func (s *ResendSender) Send(ctx context.Context, msg domain.EmailMessage) error {
	body, err := json.Marshal(resendPayload{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.ProviderError{
			Provider:   s.Name(),
			StatusCode: resp.StatusCode,
			Body:       string(text),
		}
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
