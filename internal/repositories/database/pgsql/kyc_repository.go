package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/primeblocks/investment-backend/internal/apperrors"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
)

const kycColumns = `verification_id, user_id, full_name, id_type, id_number, id_image_url, status, submitted_at, reviewed_at, reviewed_by`

type PgxKycRepository struct {
	db *pgxpool.Pool
}

func newPgxKycRepository(db *pgxpool.Pool) portsrepo.KycRepository {
	return &PgxKycRepository{db: db}
}

var _ portsrepo.KycRepository = (*PgxKycRepository)(nil)

func scanKyc(row pgx.Row) (*domain.KycVerification, error) {
	var v domain.KycVerification
	err := row.Scan(
		&v.VerificationID,
		&v.UserID,
		&v.FullName,
		&v.IDType,
		&v.IDNumber,
		&v.IDImageURL,
		&v.Status,
		&v.SubmittedAt,
		&v.ReviewedAt,
		&v.ReviewedBy,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// UpsertKyc replaces a user's verification; resubmission discards the earlier
// record and its review outcome.
func (r *PgxKycRepository) UpsertKyc(ctx context.Context, verification domain.KycVerification) error {
	query := `
        INSERT INTO kyc_verifications (` + kycColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (user_id) DO UPDATE SET
            verification_id = EXCLUDED.verification_id,
            full_name = EXCLUDED.full_name,
            id_type = EXCLUDED.id_type,
            id_number = EXCLUDED.id_number,
            id_image_url = EXCLUDED.id_image_url,
            status = EXCLUDED.status,
            submitted_at = EXCLUDED.submitted_at,
            reviewed_at = NULL,
            reviewed_by = NULL;
    `
	_, err := r.db.Exec(ctx, query,
		verification.VerificationID,
		verification.UserID,
		verification.FullName,
		verification.IDType,
		verification.IDNumber,
		verification.IDImageURL,
		verification.Status,
		verification.SubmittedAt,
		verification.ReviewedAt,
		verification.ReviewedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert kyc verification: %w", err)
	}
	return nil
}

func (r *PgxKycRepository) FindKycByUser(ctx context.Context, userID string) (*domain.KycVerification, error) {
	query := `SELECT ` + kycColumns + ` FROM kyc_verifications WHERE user_id = $1;`
	v, err := scanKyc(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find kyc verification for user %s: %w", userID, err)
	}
	return v, nil
}

func (r *PgxKycRepository) ListKycByStatus(ctx context.Context, status domain.KycStatus, limit, offset int) ([]domain.KycVerification, error) {
	query := `
        SELECT ` + kycColumns + `
        FROM kyc_verifications
        WHERE status = $1
        ORDER BY submitted_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query kyc verifications: %w", err)
	}
	defer rows.Close()

	verifications := []domain.KycVerification{}
	for rows.Next() {
		v, err := scanKyc(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kyc row: %w", err)
		}
		verifications = append(verifications, *v)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating kyc rows: %w", rows.Err())
	}
	return verifications, nil
}

func (r *PgxKycRepository) ReviewKyc(ctx context.Context, verificationID string, status domain.KycStatus, adminID string, now time.Time) error {
	query := `
        UPDATE kyc_verifications
        SET status = $1, reviewed_at = $2, reviewed_by = $3
        WHERE verification_id = $4 AND status = 'under_review';
    `
	cmdTag, err := r.db.Exec(ctx, query, status, now, adminID, verificationID)
	if err != nil {
		return fmt.Errorf("failed to review kyc verification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("kyc verification %s is not under review: %w", verificationID, apperrors.ErrNotFound)
	}
	return nil
}
