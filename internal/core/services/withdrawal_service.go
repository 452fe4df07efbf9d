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

// withdrawalService manages the withdrawal request lifecycle. Requests are
// filed against the current balance but only debit it on approval, which
// re-verifies the balance inside the ledger transaction.
type withdrawalService struct {
	BaseService
	withdrawalRepo portsrepo.WithdrawalRequestRepository
	userRepo       portsrepo.UserReader
	ledgerRepo     portsrepo.LedgerWriter
	mailer         portssvc.Mailer
	supportEmail   string
}

// NewWithdrawalService creates a new WithdrawalService.
func NewWithdrawalService(
	withdrawalRepo portsrepo.WithdrawalRequestRepository,
	userRepo portsrepo.UserReader,
	ledgerRepo portsrepo.LedgerWriter,
	mailer portssvc.Mailer,
	supportEmail string,
) portssvc.WithdrawalSvcFacade {
	return &withdrawalService{
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
		ledgerRepo:     ledgerRepo,
		mailer:         mailer,
		supportEmail:   supportEmail,
	}
}

var _ portssvc.WithdrawalSvcFacade = (*withdrawalService)(nil)

// CreateRequest stores a new pending withdrawal request. The amount must not
// exceed the current balance at filing time; approval checks again.
func (s *withdrawalService) CreateRequest(ctx context.Context, userID string, req dto.CreateWithdrawalRequest) (*domain.WithdrawalRequest, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Amount.GreaterThan(user.Balance) {
		return nil, fmt.Errorf("%w: requested %s exceeds balance %s",
			apperrors.ErrInsufficientFunds, req.Amount.StringFixed(2), user.Balance.StringFixed(2))
	}

	request := domain.WithdrawalRequest{
		RequestID:        uuid.NewString(),
		UserID:           userID,
		Amount:           req.Amount,
		WithdrawalMethod: req.WithdrawalMethod,
		AccountDetails:   req.AccountDetails,
		Notes:            req.Notes,
		Status:           domain.RequestPending,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.withdrawalRepo.SaveWithdrawalRequest(ctx, request); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Withdrawal request created", "request_id", request.RequestID, "user_id", userID)

	s.notifySupport(ctx, request)
	return &request, nil
}

func (s *withdrawalService) notifySupport(ctx context.Context, request domain.WithdrawalRequest) {
	if s.supportEmail == "" {
		return
	}
	email := portssvc.Email{
		To:      []string{s.supportEmail},
		Subject: "New Withdrawal Request Pending Review",
		HTML: fmt.Sprintf(
			"<p>A new withdrawal request is awaiting review.</p><ul><li>Request: %s</li><li>User: %s</li><li>Amount: %s</li><li>Method: %s</li></ul>",
			request.RequestID, request.UserID, request.Amount.StringFixed(2), request.WithdrawalMethod,
		),
	}
	if _, err := s.mailer.Send(ctx, email); err != nil {
		s.LogError(ctx, err, "Failed to send withdrawal notification", "request_id", request.RequestID)
	}
}

// ListForUser retrieves the user's own requests, newest first.
func (s *withdrawalService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.WithdrawalRequest, error) {
	return s.withdrawalRepo.ListWithdrawalRequestsByUser(ctx, userID, clampLimit(limit), clampOffset(offset))
}

// ListByStatus retrieves requests in a review state, for admins.
func (s *withdrawalService) ListByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.WithdrawalRequest, error) {
	return s.withdrawalRepo.ListWithdrawalRequestsByStatus(ctx, status, clampLimit(limit), clampOffset(offset))
}

// Approve debits the request atomically. The ledger writer re-checks the
// balance under lock and returns ErrInsufficientFunds when it cannot cover
// the amount, leaving the request pending.
func (s *withdrawalService) Approve(ctx context.Context, requestID, adminID string) error {
	request, err := s.withdrawalRepo.FindWithdrawalRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != domain.RequestPending {
		return fmt.Errorf("%w: request %s is already %s", apperrors.ErrValidation, requestID, request.Status)
	}

	if err := s.ledgerRepo.ApproveWithdrawal(ctx, *request, adminID, time.Now().UTC()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Withdrawal request approved", "request_id", requestID, "admin_id", adminID)
	return nil
}

// Reject marks the request rejected without touching balances.
func (s *withdrawalService) Reject(ctx context.Context, requestID, adminID string) error {
	request, err := s.withdrawalRepo.FindWithdrawalRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != domain.RequestPending {
		return fmt.Errorf("%w: request %s is already %s", apperrors.ErrValidation, requestID, request.Status)
	}

	if err := s.withdrawalRepo.MarkWithdrawalRequestProcessed(ctx, requestID, domain.RequestRejected, adminID, time.Now().UTC()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Withdrawal request rejected", "request_id", requestID, "admin_id", adminID)
	return nil
}
