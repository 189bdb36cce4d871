package domain

import "context"

// EmailSender delivers a notification through an external provider.
// Implementations make exactly one attempt per call.
type EmailSender interface {
	Name() string
	Send(ctx context.Context, msg EmailMessage) error
}
