package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/primeblocks/investment-backend/internal/apperrors"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/dto"
)

// depositService manages the deposit request lifecycle: investors file claims
// of external payments, admins approve or reject them. Approval credits the
// account through the ledger writer in one transaction.
type depositService struct {
	BaseService
	depositRepo  portsrepo.DepositRequestRepository
	ledgerRepo   portsrepo.LedgerWriter
	mailer       portssvc.Mailer
	supportEmail string
}

// NewDepositService creates a new DepositService.
func NewDepositService(
	depositRepo portsrepo.DepositRequestRepository,
	ledgerRepo portsrepo.LedgerWriter,
	mailer portssvc.Mailer,
	supportEmail string,
) portssvc.DepositSvcFacade {
	return &depositService{
		depositRepo:  depositRepo,
		ledgerRepo:   ledgerRepo,
		mailer:       mailer,
		supportEmail: supportEmail,
	}
}

var _ portssvc.DepositSvcFacade = (*depositService)(nil)

// CreateRequest stores a new pending deposit request. The support notification
// email is best-effort; a delivery failure never fails the request.
func (s *depositService) CreateRequest(ctx context.Context, userID string, req dto.CreateDepositRequest) (*domain.DepositRequest, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	request := domain.DepositRequest{
		RequestID:       uuid.NewString(),
		UserID:          userID,
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		Status:          domain.RequestPending,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.depositRepo.SaveDepositRequest(ctx, request); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Deposit request created", "request_id", request.RequestID, "user_id", userID)

	s.notifySupport(ctx, request)
	return &request, nil
}

func (s *depositService) notifySupport(ctx context.Context, request domain.DepositRequest) {
	if s.supportEmail == "" {
		return
	}
	email := portssvc.Email{
		To:      []string{s.supportEmail},
		Subject: "New Deposit Request Pending Review",
		HTML: fmt.Sprintf(
			"<p>A new deposit request is awaiting review.</p><ul><li>Request: %s</li><li>User: %s</li><li>Amount: %s</li><li>Method: %s</li></ul>",
			request.RequestID, request.UserID, request.Amount.StringFixed(2), request.PaymentMethod,
		),
	}
	if _, err := s.mailer.Send(ctx, email); err != nil {
		s.LogError(ctx, err, "Failed to send deposit notification", "request_id", request.RequestID)
	}
}

// ListForUser retrieves the user's own requests, newest first.
func (s *depositService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.DepositRequest, error) {
	return s.depositRepo.ListDepositRequestsByUser(ctx, userID, clampLimit(limit), clampOffset(offset))
}

// ListByStatus retrieves requests in a review state, for admins.
func (s *depositService) ListByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.DepositRequest, error) {
	return s.depositRepo.ListDepositRequestsByStatus(ctx, status, clampLimit(limit), clampOffset(offset))
}

// Approve credits the request atomically and marks it approved. Only pending
// requests can be approved.
func (s *depositService) Approve(ctx context.Context, requestID, adminID string) error {
	request, err := s.depositRepo.FindDepositRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != domain.RequestPending {
		return fmt.Errorf("%w: request %s is already %s", apperrors.ErrValidation, requestID, request.Status)
	}

	if err := s.ledgerRepo.ApproveDeposit(ctx, *request, adminID, time.Now().UTC()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Deposit request approved", "request_id", requestID, "admin_id", adminID)
	return nil
}

// Reject marks the request rejected without touching balances.
func (s *depositService) Reject(ctx context.Context, requestID, adminID string) error {
	request, err := s.depositRepo.FindDepositRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != domain.RequestPending {
		return fmt.Errorf("%w: request %s is already %s", apperrors.ErrValidation, requestID, request.Status)
	}

	if err := s.depositRepo.MarkDepositRequestProcessed(ctx, requestID, domain.RequestRejected, adminID, time.Now().UTC()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Deposit request rejected", "request_id", requestID, "admin_id", adminID)
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
