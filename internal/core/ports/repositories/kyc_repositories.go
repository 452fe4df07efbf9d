package repositories

import (
	"context"
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
)

// KycRepository manages identity verification records, one per user.
type KycRepository interface {
	// UpsertKyc creates or replaces a user's verification, resetting its status.
	UpsertKyc(ctx context.Context, verification domain.KycVerification) error

	FindKycByUser(ctx context.Context, userID string) (*domain.KycVerification, error)

	ListKycByStatus(ctx context.Context, status domain.KycStatus, limit, offset int) ([]domain.KycVerification, error)

	// ReviewKyc records an admin decision on a submission.
	ReviewKyc(ctx context.Context, verificationID string, status domain.KycStatus, adminID string, now time.Time) error
}
