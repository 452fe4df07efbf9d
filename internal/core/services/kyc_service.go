package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/dto"
)

// kycService manages identity verification submissions and admin reviews.
type kycService struct {
	BaseService
	kycRepo portsrepo.KycRepository
}

// NewKycService creates a new KycService.
func NewKycService(kycRepo portsrepo.KycRepository) portssvc.KycSvcFacade {
	return &kycService{kycRepo: kycRepo}
}

var _ portssvc.KycSvcFacade = (*kycService)(nil)

// Submit upserts the user's verification and resets it to under_review.
// Resubmission replaces any earlier record and discards its review outcome.
func (s *kycService) Submit(ctx context.Context, userID string, req dto.SubmitKycRequest) (*domain.KycVerification, error) {
	verification := domain.KycVerification{
		VerificationID: uuid.NewString(),
		UserID:         userID,
		FullName:       req.FullName,
		IDType:         domain.KycIDType(req.IDType),
		IDNumber:       req.IDNumber,
		IDImageURL:     req.IDImageURL,
		Status:         domain.KycUnderReview,
		SubmittedAt:    time.Now().UTC(),
	}

	if err := s.kycRepo.UpsertKyc(ctx, verification); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "KYC verification submitted", "user_id", userID)
	return &verification, nil
}

// GetForUser returns the user's verification, or ErrNotFound.
func (s *kycService) GetForUser(ctx context.Context, userID string) (*domain.KycVerification, error) {
	return s.kycRepo.FindKycByUser(ctx, userID)
}

// ListByStatus retrieves verifications in a review state, for admins.
func (s *kycService) ListByStatus(ctx context.Context, status domain.KycStatus, limit, offset int) ([]domain.KycVerification, error) {
	return s.kycRepo.ListKycByStatus(ctx, status, clampLimit(limit), clampOffset(offset))
}

// Review records an admin decision on a submission.
func (s *kycService) Review(ctx context.Context, verificationID, adminID string, status domain.KycStatus) error {
	if err := s.kycRepo.ReviewKyc(ctx, verificationID, status, adminID, time.Now().UTC()); err != nil {
		return err
	}
	s.LogInfo(ctx, "KYC verification reviewed",
		"verification_id", verificationID, "admin_id", adminID, "status", string(status))
	return nil
}
