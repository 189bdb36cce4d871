package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for quote operations.
var (
	// ErrMissingFields indicates name, email, phone or details is empty.
	// HTTP Status: 400 Bad Request
	ErrMissingFields = errors.New("missing required fields")

	// ErrNotConfigured indicates the email API key or destination address is absent.
	// HTTP Status: 500 Internal Server Error
	ErrNotConfigured = errors.New("email service not configured")

	// ErrDeliveryFailed indicates the provider rejected the message or could not be reached.
	// HTTP Status: 500 Internal Server Error
	ErrDeliveryFailed = errors.New("failed to send quote")
)

// ProviderError carries the provider's response for server-side logs.
// It unwraps to ErrDeliveryFailed.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s responded %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error {
	return ErrDeliveryFailed
}
