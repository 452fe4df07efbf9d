package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/primeblocks/investment-backend/internal/apperrors"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/core/services"
	"github.com/primeblocks/investment-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DepositServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockDepositRequestRepository
	mockLedger *MockLedgerWriter
	mockMailer *MockMailer
	service    portssvc.DepositSvcFacade
}

func (s *DepositServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockDepositRequestRepository)
	s.mockLedger = new(MockLedgerWriter)
	s.mockMailer = new(MockMailer)
	s.service = services.NewDepositService(s.mockRepo, s.mockLedger, s.mockMailer, "support@example.com")
}

func (s *DepositServiceTestSuite) TestCreateRequest_SavesPendingAndNotifies() {
	ctx := context.Background()
	var saved domain.DepositRequest
	s.mockRepo.SaveDepositRequestFn = func(ctx context.Context, request domain.DepositRequest) error {
		saved = request
		return nil
	}
	var notified portssvc.Email
	s.mockMailer.SendFn = func(ctx context.Context, email portssvc.Email) (bool, error) {
		notified = email
		return true, nil
	}

	request, err := s.service.CreateRequest(ctx, "u1", dto.CreateDepositRequest{
		Amount:          decimal.NewFromInt(250),
		PaymentMethod:   "bank_transfer",
		ReferenceNumber: "REF-42",
	})

	s.Require().NoError(err)
	s.Require().NotNil(request)
	s.Equal(domain.RequestPending, request.Status)
	s.NotEmpty(request.RequestID)
	s.Equal(saved.RequestID, request.RequestID)
	s.Equal([]string{"support@example.com"}, notified.To)
	s.Contains(notified.HTML, request.RequestID)
}

func (s *DepositServiceTestSuite) TestCreateRequest_NotificationFailureIsIgnored() {
	ctx := context.Background()
	s.mockRepo.SaveDepositRequestFn = func(ctx context.Context, request domain.DepositRequest) error {
		return nil
	}
	s.mockMailer.SendFn = func(ctx context.Context, email portssvc.Email) (bool, error) {
		return false, errors.New("provider unavailable")
	}

	request, err := s.service.CreateRequest(ctx, "u1", dto.CreateDepositRequest{
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: "crypto",
	})

	s.Require().NoError(err)
	s.NotNil(request)
}

func (s *DepositServiceTestSuite) TestCreateRequest_RejectsNonPositiveAmount() {
	ctx := context.Background()

	request, err := s.service.CreateRequest(ctx, "u1", dto.CreateDepositRequest{
		Amount:        decimal.Zero,
		PaymentMethod: "bank_transfer",
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Nil(request)
}

func (s *DepositServiceTestSuite) TestApprove_CreditsThroughLedger() {
	ctx := context.Background()
	s.mockRepo.FindDepositRequestByIDFn = func(ctx context.Context, requestID string) (*domain.DepositRequest, error) {
		return &domain.DepositRequest{
			RequestID: requestID,
			UserID:    "u1",
			Amount:    decimal.NewFromInt(250),
			Status:    domain.RequestPending,
		}, nil
	}
	var approved *domain.DepositRequest
	s.mockLedger.ApproveDepositFn = func(ctx context.Context, request domain.DepositRequest, adminID string, now time.Time) error {
		approved = &request
		s.Equal("admin-1", adminID)
		return nil
	}

	err := s.service.Approve(ctx, "r1", "admin-1")

	s.Require().NoError(err)
	s.Require().NotNil(approved)
	s.Equal("r1", approved.RequestID)
}

func (s *DepositServiceTestSuite) TestApprove_AlreadyProcessed() {
	ctx := context.Background()
	s.mockRepo.FindDepositRequestByIDFn = func(ctx context.Context, requestID string) (*domain.DepositRequest, error) {
		return &domain.DepositRequest{RequestID: requestID, Status: domain.RequestRejected}, nil
	}
	ledgerCalled := false
	s.mockLedger.ApproveDepositFn = func(ctx context.Context, request domain.DepositRequest, adminID string, now time.Time) error {
		ledgerCalled = true
		return nil
	}

	err := s.service.Approve(ctx, "r1", "admin-1")

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.False(ledgerCalled)
}

func (s *DepositServiceTestSuite) TestReject_MarksProcessedWithoutLedger() {
	ctx := context.Background()
	s.mockRepo.FindDepositRequestByIDFn = func(ctx context.Context, requestID string) (*domain.DepositRequest, error) {
		return &domain.DepositRequest{RequestID: requestID, Status: domain.RequestPending}, nil
	}
	var markedStatus domain.RequestStatus
	s.mockRepo.MarkDepositRequestProcessedFn = func(ctx context.Context, requestID string, status domain.RequestStatus, adminID string, now time.Time) error {
		markedStatus = status
		return nil
	}
	ledgerCalled := false
	s.mockLedger.ApproveDepositFn = func(ctx context.Context, request domain.DepositRequest, adminID string, now time.Time) error {
		ledgerCalled = true
		return nil
	}

	err := s.service.Reject(ctx, "r1", "admin-1")

	s.Require().NoError(err)
	s.Equal(domain.RequestRejected, markedStatus)
	s.False(ledgerCalled)
}

func TestDepositServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepositServiceTestSuite))
}
