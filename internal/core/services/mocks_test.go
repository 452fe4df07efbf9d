package services_test

import (
	"context"
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn          func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn       func(ctx context.Context, email string) (*domain.User, error)
	FindUsersFn             func(ctx context.Context, limit, offset int) ([]domain.User, error)
	FindEligibleForProfitFn func(ctx context.Context, requireOptIn bool) ([]domain.User, error)
	SummarizeUsersFn        func(ctx context.Context) (int, decimal.Decimal, error)
	SaveUserFn              func(ctx context.Context, user domain.User) error
	UpdateProfileFn         func(ctx context.Context, user domain.User) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if m.FindUsersFn != nil {
		return m.FindUsersFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) FindEligibleForProfit(ctx context.Context, requireOptIn bool) ([]domain.User, error) {
	if m.FindEligibleForProfitFn != nil {
		return m.FindEligibleForProfitFn(ctx, requireOptIn)
	}
	args := m.Called(ctx, requireOptIn)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SummarizeUsers(ctx context.Context) (int, decimal.Decimal, error) {
	if m.SummarizeUsersFn != nil {
		return m.SummarizeUsersFn(ctx)
	}
	args := m.Called(ctx)
	return args.Int(0), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock LedgerWriter ---
type MockLedgerWriter struct {
	mock.Mock
	CommitAccrualFn     func(ctx context.Context, accrual domain.Accrual) error
	ApproveDepositFn    func(ctx context.Context, request domain.DepositRequest, adminID string, now time.Time) error
	ApproveWithdrawalFn func(ctx context.Context, request domain.WithdrawalRequest, adminID string, now time.Time) error
	AdjustBalanceFn     func(ctx context.Context, adjustment domain.BalanceAdjustment) error
}

func (m *MockLedgerWriter) CommitAccrual(ctx context.Context, accrual domain.Accrual) error {
	if m.CommitAccrualFn != nil {
		return m.CommitAccrualFn(ctx, accrual)
	}
	args := m.Called(ctx, accrual)
	return args.Error(0)
}

func (m *MockLedgerWriter) ApproveDeposit(ctx context.Context, request domain.DepositRequest, adminID string, now time.Time) error {
	if m.ApproveDepositFn != nil {
		return m.ApproveDepositFn(ctx, request, adminID, now)
	}
	args := m.Called(ctx, request, adminID, now)
	return args.Error(0)
}

func (m *MockLedgerWriter) ApproveWithdrawal(ctx context.Context, request domain.WithdrawalRequest, adminID string, now time.Time) error {
	if m.ApproveWithdrawalFn != nil {
		return m.ApproveWithdrawalFn(ctx, request, adminID, now)
	}
	args := m.Called(ctx, request, adminID, now)
	return args.Error(0)
}

func (m *MockLedgerWriter) AdjustBalance(ctx context.Context, adjustment domain.BalanceAdjustment) error {
	if m.AdjustBalanceFn != nil {
		return m.AdjustBalanceFn(ctx, adjustment)
	}
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
	GetAllSettingsFn func(ctx context.Context) (map[string]string, error)
	ListSettingsFn   func(ctx context.Context) ([]domain.Setting, error)
	UpsertSettingFn  func(ctx context.Context, setting domain.Setting) error
}

func (m *MockSettingsRepository) GetAllSettings(ctx context.Context) (map[string]string, error) {
	if m.GetAllSettingsFn != nil {
		return m.GetAllSettingsFn(ctx)
	}
	args := m.Called(ctx)
	var settings map[string]string
	if args.Get(0) != nil {
		settings = args.Get(0).(map[string]string)
	}
	return settings, args.Error(1)
}

func (m *MockSettingsRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	if m.ListSettingsFn != nil {
		return m.ListSettingsFn(ctx)
	}
	args := m.Called(ctx)
	var settings []domain.Setting
	if args.Get(0) != nil {
		settings = args.Get(0).([]domain.Setting)
	}
	return settings, args.Error(1)
}

func (m *MockSettingsRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	if m.UpsertSettingFn != nil {
		return m.UpsertSettingFn(ctx, setting)
	}
	args := m.Called(ctx, setting)
	return args.Error(0)
}

// --- Mock ProfitHistoryRepository ---
type MockProfitHistoryRepository struct {
	mock.Mock
	ListProfitEntriesByUserFn func(ctx context.Context, userID string, limit, offset int) ([]domain.ProfitEntry, error)
}

func (m *MockProfitHistoryRepository) ListProfitEntriesByUser(ctx context.Context, userID string, limit, offset int) ([]domain.ProfitEntry, error) {
	if m.ListProfitEntriesByUserFn != nil {
		return m.ListProfitEntriesByUserFn(ctx, userID, limit, offset)
	}
	args := m.Called(ctx, userID, limit, offset)
	var entries []domain.ProfitEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ProfitEntry)
	}
	return entries, args.Error(1)
}

// --- Mock WithdrawalRequestRepository ---
type MockWithdrawalRequestRepository struct {
	mock.Mock
	SaveWithdrawalRequestFn           func(ctx context.Context, request domain.WithdrawalRequest) error
	FindWithdrawalRequestByIDFn       func(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error)
	ListWithdrawalRequestsByUserFn    func(ctx context.Context, userID string, limit, offset int) ([]domain.WithdrawalRequest, error)
	ListWithdrawalRequestsByStatusFn  func(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.WithdrawalRequest, error)
	MarkWithdrawalRequestProcessedFn  func(ctx context.Context, requestID string, status domain.RequestStatus, adminID string, now time.Time) error
	CountWithdrawalRequestsByStatusFn func(ctx context.Context, status domain.RequestStatus) (int, error)
}

func (m *MockWithdrawalRequestRepository) SaveWithdrawalRequest(ctx context.Context, request domain.WithdrawalRequest) error {
	if m.SaveWithdrawalRequestFn != nil {
		return m.SaveWithdrawalRequestFn(ctx, request)
	}
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockWithdrawalRequestRepository) FindWithdrawalRequestByID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	if m.FindWithdrawalRequestByIDFn != nil {
		return m.FindWithdrawalRequestByIDFn(ctx, requestID)
	}
	args := m.Called(ctx, requestID)
	var request *domain.WithdrawalRequest
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.WithdrawalRequest)
	}
	return request, args.Error(1)
}

func (m *MockWithdrawalRequestRepository) ListWithdrawalRequestsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.WithdrawalRequest, error) {
	if m.ListWithdrawalRequestsByUserFn != nil {
		return m.ListWithdrawalRequestsByUserFn(ctx, userID, limit, offset)
	}
	args := m.Called(ctx, userID, limit, offset)
	var requests []domain.WithdrawalRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.WithdrawalRequest)
	}
	return requests, args.Error(1)
}

func (m *MockWithdrawalRequestRepository) ListWithdrawalRequestsByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.WithdrawalRequest, error) {
	if m.ListWithdrawalRequestsByStatusFn != nil {
		return m.ListWithdrawalRequestsByStatusFn(ctx, status, limit, offset)
	}
	args := m.Called(ctx, status, limit, offset)
	var requests []domain.WithdrawalRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.WithdrawalRequest)
	}
	return requests, args.Error(1)
}

func (m *MockWithdrawalRequestRepository) MarkWithdrawalRequestProcessed(ctx context.Context, requestID string, status domain.RequestStatus, adminID string, now time.Time) error {
	if m.MarkWithdrawalRequestProcessedFn != nil {
		return m.MarkWithdrawalRequestProcessedFn(ctx, requestID, status, adminID, now)
	}
	args := m.Called(ctx, requestID, status, adminID, now)
	return args.Error(0)
}

func (m *MockWithdrawalRequestRepository) CountWithdrawalRequestsByStatus(ctx context.Context, status domain.RequestStatus) (int, error) {
	if m.CountWithdrawalRequestsByStatusFn != nil {
		return m.CountWithdrawalRequestsByStatusFn(ctx, status)
	}
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

// --- Mock DepositRequestRepository ---
type MockDepositRequestRepository struct {
	mock.Mock
	SaveDepositRequestFn           func(ctx context.Context, request domain.DepositRequest) error
	FindDepositRequestByIDFn       func(ctx context.Context, requestID string) (*domain.DepositRequest, error)
	ListDepositRequestsByUserFn    func(ctx context.Context, userID string, limit, offset int) ([]domain.DepositRequest, error)
	ListDepositRequestsByStatusFn  func(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.DepositRequest, error)
	MarkDepositRequestProcessedFn  func(ctx context.Context, requestID string, status domain.RequestStatus, adminID string, now time.Time) error
	CountDepositRequestsByStatusFn func(ctx context.Context, status domain.RequestStatus) (int, error)
}

func (m *MockDepositRequestRepository) SaveDepositRequest(ctx context.Context, request domain.DepositRequest) error {
	if m.SaveDepositRequestFn != nil {
		return m.SaveDepositRequestFn(ctx, request)
	}
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockDepositRequestRepository) FindDepositRequestByID(ctx context.Context, requestID string) (*domain.DepositRequest, error) {
	if m.FindDepositRequestByIDFn != nil {
		return m.FindDepositRequestByIDFn(ctx, requestID)
	}
	args := m.Called(ctx, requestID)
	var request *domain.DepositRequest
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.DepositRequest)
	}
	return request, args.Error(1)
}

func (m *MockDepositRequestRepository) ListDepositRequestsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.DepositRequest, error) {
	if m.ListDepositRequestsByUserFn != nil {
		return m.ListDepositRequestsByUserFn(ctx, userID, limit, offset)
	}
	args := m.Called(ctx, userID, limit, offset)
	var requests []domain.DepositRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.DepositRequest)
	}
	return requests, args.Error(1)
}

func (m *MockDepositRequestRepository) ListDepositRequestsByStatus(ctx context.Context, status domain.RequestStatus, limit, offset int) ([]domain.DepositRequest, error) {
	if m.ListDepositRequestsByStatusFn != nil {
		return m.ListDepositRequestsByStatusFn(ctx, status, limit, offset)
	}
	args := m.Called(ctx, status, limit, offset)
	var requests []domain.DepositRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.DepositRequest)
	}
	return requests, args.Error(1)
}

func (m *MockDepositRequestRepository) MarkDepositRequestProcessed(ctx context.Context, requestID string, status domain.RequestStatus, adminID string, now time.Time) error {
	if m.MarkDepositRequestProcessedFn != nil {
		return m.MarkDepositRequestProcessedFn(ctx, requestID, status, adminID, now)
	}
	args := m.Called(ctx, requestID, status, adminID, now)
	return args.Error(0)
}

func (m *MockDepositRequestRepository) CountDepositRequestsByStatus(ctx context.Context, status domain.RequestStatus) (int, error) {
	if m.CountDepositRequestsByStatusFn != nil {
		return m.CountDepositRequestsByStatusFn(ctx, status)
	}
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
	SaveContactMessageFn   func(ctx context.Context, message domain.ContactMessage) error
	MarkContactEmailSentFn func(ctx context.Context, messageID string) error
}

func (m *MockContactRepository) SaveContactMessage(ctx context.Context, message domain.ContactMessage) error {
	if m.SaveContactMessageFn != nil {
		return m.SaveContactMessageFn(ctx, message)
	}
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockContactRepository) MarkContactEmailSent(ctx context.Context, messageID string) error {
	if m.MarkContactEmailSentFn != nil {
		return m.MarkContactEmailSentFn(ctx, messageID)
	}
	args := m.Called(ctx, messageID)
	return args.Error(0)
}

// --- Mock Mailer ---
type MockMailer struct {
	mock.Mock
	SendFn func(ctx context.Context, email portssvc.Email) (bool, error)
}

func (m *MockMailer) Send(ctx context.Context, email portssvc.Email) (bool, error) {
	if m.SendFn != nil {
		return m.SendFn(ctx, email)
	}
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
