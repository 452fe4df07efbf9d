package services

import (
	"context"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	"github.com/primeblocks/investment-backend/internal/dto"
)

// KycSvcFacade manages identity verification submissions and reviews.
type KycSvcFacade interface {
	// Submit upserts the user's verification and resets it to under_review.
	Submit(ctx context.Context, userID string, req dto.SubmitKycRequest) (*domain.KycVerification, error)

	// GetForUser returns the user's verification, or ErrNotFound.
	GetForUser(ctx context.Context, userID string) (*domain.KycVerification, error)

	// ListByStatus retrieves verifications in a review state, for admins.
	ListByStatus(ctx context.Context, status domain.KycStatus, limit, offset int) ([]domain.KycVerification, error)

	// Review records an admin decision.
	Review(ctx context.Context, verificationID, adminID string, status domain.KycStatus) error
}

// PerformanceSvcFacade reads portfolio performance series.
type PerformanceSvcFacade interface {
	// History returns the user's recent daily snapshots, most recent first.
	History(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error)
}

// ContactSvcFacade relays support inquiries.
type ContactSvcFacade interface {
	// Submit stores the inquiry and attempts the relay email. The returned
	// flag reports whether the email actually went out; a failed or skipped
	// send is not an error once the message is stored.
	Submit(ctx context.Context, req dto.ContactRequest) (bool, error)
}
