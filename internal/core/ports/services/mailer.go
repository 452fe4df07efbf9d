package services

import "context"

// Email is one outbound message handed to the mail relay.
type Email struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer delivers outbound email on a best-effort basis. Send returns false
// with a nil error when no provider credential is configured; delivery is
// skipped rather than failed in that case.
type Mailer interface {
	Send(ctx context.Context, email Email) (bool, error)
}
