package v1

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/quote-service/config"
	"github.com/duynhne/quote-service/internal/core/domain"
)

type fakeSender struct {
	mu          sync.Mutex
	sent        []domain.EmailMessage
	err         error
	hadDeadline bool
}

func (f *fakeSender) Name() string { return "fake" }

func (f *fakeSender) Send(ctx context.Context, msg domain.EmailMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, f.hadDeadline = ctx.Deadline()
	f.sent = append(f.sent, msg)
	return f.err
}

func (f *fakeSender) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func configuredEmail() config.EmailConfig {
	return config.EmailConfig{
		Provider: config.ProviderResend,
		APIKey:   "re_test",
		To:       "bookings@sunday.studio",
		From:     config.DefaultSender,
	}
}

func validRequest() domain.QuoteRequest {
	return domain.QuoteRequest{
		Name:    "Ayesha Khan",
		Email:   "a@x.com",
		Phone:   "0300",
		Details: "Shoot brief",
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.QuoteRequest)
	}{
		{"missing name", func(r *domain.QuoteRequest) { r.Name = "" }},
		{"missing email", func(r *domain.QuoteRequest) { r.Email = "" }},
		{"missing phone", func(r *domain.QuoteRequest) { r.Phone = "" }},
		{"missing details", func(r *domain.QuoteRequest) { r.Details = "" }},
		{"everything empty", func(r *domain.QuoteRequest) { *r = domain.QuoteRequest{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			svc := NewQuoteService(configuredEmail(), sender)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
			assert.Zero(t, sender.calls())
		})
	}
}

func TestSubmit_MissingFieldsCheckedBeforeConfiguration(t *testing.T) {
	svc := NewQuoteService(config.EmailConfig{}, &fakeSender{})

	_, err := svc.Submit(context.Background(), domain.QuoteRequest{Name: "Ayesha"})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestSubmit_NotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*config.EmailConfig)
	}{
		{"no api key", func(c *config.EmailConfig) { c.APIKey = "" }},
		{"no destination", func(c *config.EmailConfig) { c.To = "" }},
		{"neither", func(c *config.EmailConfig) { c.APIKey, c.To = "", "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := configuredEmail()
			tt.cfg(&cfg)
			sender := &fakeSender{}

			_, err := NewQuoteService(cfg, sender).Submit(context.Background(), validRequest())
			assert.ErrorIs(t, err, domain.ErrNotConfigured)
			assert.Zero(t, sender.calls())
		})
	}
}

func TestSubmit_BuildsNotification(t *testing.T) {
	sender := &fakeSender{}
	svc := NewQuoteService(configuredEmail(), sender)

	id, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "quotes@sunday.studio", msg.From)
	assert.Equal(t, []string{"bookings@sunday.studio"}, msg.To)
	assert.Equal(t, "New Sunday Studio quote request: Ayesha Khan", msg.Subject)
	assert.Equal(t, "a@x.com", msg.ReplyTo)
	assert.Equal(t,
		"Name: Ayesha Khan\nEmail: a@x.com\nPhone: 0300\nPreferred date: Not specified\n\nDetails:\nShoot brief",
		msg.Text)
}

func TestSubmit_SenderOverride(t *testing.T) {
	cfg := configuredEmail()
	cfg.From = "Sunday Studio <hello@sunday.studio>"
	sender := &fakeSender{}

	_, err := NewQuoteService(cfg, sender).Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Sunday Studio <hello@sunday.studio>", sender.sent[0].From)
}

func TestBuildBody(t *testing.T) {
	req := validRequest()
	req.Date = "next Friday, 2pm"
	req.Details = "Line one\n<b>not escaped</b>\n\nLine four"

	body := BuildBody(req)

	assert.Equal(t,
		"Name: Ayesha Khan\nEmail: a@x.com\nPhone: 0300\nPreferred date: next Friday, 2pm\n\nDetails:\nLine one\n<b>not escaped</b>\n\nLine four",
		body)
}

func TestSubmit_ProviderRejects(t *testing.T) {
	sender := &fakeSender{err: &domain.ProviderError{Provider: "fake", StatusCode: 422, Body: "domain not verified"}}
	svc := NewQuoteService(configuredEmail(), sender)

	_, err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)

	var perr *domain.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 422, perr.StatusCode)
	assert.Equal(t, "domain not verified", perr.Body)
	assert.Equal(t, 1, sender.calls(), "no retry")
}

func TestSubmit_TransportError(t *testing.T) {
	sender := &fakeSender{err: errors.New("dial tcp: connection refused")}

	_, err := NewQuoteService(configuredEmail(), sender).Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	assert.ErrorContains(t, err, "connection refused")
	assert.Equal(t, 1, sender.calls())
}

func TestSubmit_NoDeduplication(t *testing.T) {
	sender := &fakeSender{}
	svc := NewQuoteService(configuredEmail(), sender)

	first, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, sender.calls())
	assert.NotEqual(t, first, second)
	assert.Equal(t, sender.sent[0], sender.sent[1])
}

func TestSubmit_Timeout(t *testing.T) {
	t.Run("applied when set", func(t *testing.T) {
		cfg := configuredEmail()
		cfg.Timeout = 5 * time.Second
		sender := &fakeSender{}

		_, err := NewQuoteService(cfg, sender).Submit(context.Background(), validRequest())
		require.NoError(t, err)
		assert.True(t, sender.hadDeadline)
	})

	t.Run("zero disables", func(t *testing.T) {
		sender := &fakeSender{}

		_, err := NewQuoteService(configuredEmail(), sender).Submit(context.Background(), validRequest())
		require.NoError(t, err)
		assert.False(t, sender.hadDeadline)
	})
}
