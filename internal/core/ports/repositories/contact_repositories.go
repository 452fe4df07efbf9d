package repositories

import (
	"context"

	"github.com/primeblocks/investment-backend/internal/core/domain"
)

// ContactRepository stores support inquiries durably before any email relay.
type ContactRepository interface {
	SaveContactMessage(ctx context.Context, message domain.ContactMessage) error

	// MarkContactEmailSent flags a stored message whose relay email went out.
	MarkContactEmailSent(ctx context.Context, messageID string) error
}
