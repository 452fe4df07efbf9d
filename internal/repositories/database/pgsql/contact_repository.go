package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/primeblocks/investment-backend/internal/apperrors"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
)

type PgxContactRepository struct {
	db *pgxpool.Pool
}

func newPgxContactRepository(db *pgxpool.Pool) portsrepo.ContactRepository {
	return &PgxContactRepository{db: db}
}

var _ portsrepo.ContactRepository = (*PgxContactRepository)(nil)

func (r *PgxContactRepository) SaveContactMessage(ctx context.Context, message domain.ContactMessage) error {
	query := `
        INSERT INTO contact_messages (message_id, full_name, email, subject, message, email_sent, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		message.MessageID,
		message.FullName,
		message.Email,
		message.Subject,
		message.Message,
		message.EmailSent,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

func (r *PgxContactRepository) MarkContactEmailSent(ctx context.Context, messageID string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE contact_messages SET email_sent = true WHERE message_id = $1;`, messageID)
	if err != nil {
		return fmt.Errorf("failed to mark contact email sent: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact message %s: %w", messageID, apperrors.ErrNotFound)
	}
	return nil
}
