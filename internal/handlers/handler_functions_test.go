package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/dto"
	"github.com/primeblocks/investment-backend/internal/handlers"
	"github.com/primeblocks/investment-backend/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// --- Mock ProfitService ---
type MockProfitService struct {
	mock.Mock
}

func (m *MockProfitService) RunProfitDistribution(ctx context.Context) (*domain.ProfitRunResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitRunResult), args.Error(1)
}

func (m *MockProfitService) ListHistoryForUser(ctx context.Context, userID string, limit, offset int) ([]domain.ProfitEntry, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfitEntry), args.Error(1)
}

var _ portssvc.ProfitSvcFacade = (*MockProfitService)(nil)

// --- Mock ContactService ---
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, req dto.ContactRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.ContactSvcFacade = (*MockContactService)(nil)

type FunctionHandlersTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockProfitSvc  *MockProfitService
	mockContactSvc *MockContactService
}

func (s *FunctionHandlersTestSuite) buildRouter(triggerToken string) {
	gin.SetMode(gin.TestMode)
	s.mockProfitSvc = new(MockProfitService)
	s.mockContactSvc = new(MockContactService)

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JobTriggerToken: triggerToken,
		IsProduction:    true,
	}
	services := &portssvc.ServiceContainer{
		Profit:  s.mockProfitSvc,
		Contact: s.mockContactSvc,
	}
	contactLimiter := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 100})

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, services, contactLimiter)
}

func (s *FunctionHandlersTestSuite) SetupTest() {
	s.buildRouter("")
}

func (s *FunctionHandlersTestSuite) TestTriggerProfitRun_ReturnsTallies() {
	s.mockProfitSvc.On("RunProfitDistribution", mock.Anything).Return(&domain.ProfitRunResult{
		Message:     "Daily profit distribution completed",
		Processed:   3,
		Skipped:     1,
		TotalProfit: decimal.RequireFromString("42.50"),
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/auto-increment-profits", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ProfitRunResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Daily profit distribution completed", resp.Message)
	s.Equal(3, resp.Processed)
	s.Equal(1, resp.Skipped)
	s.Zero(resp.Errors)
	s.True(resp.TotalProfit.Equal(decimal.RequireFromString("42.50")))
	s.mockProfitSvc.AssertExpectations(s.T())
}

func (s *FunctionHandlersTestSuite) TestTriggerProfitRun_AnyMethodAccepted() {
	s.mockProfitSvc.On("RunProfitDistribution", mock.Anything).Return(&domain.ProfitRunResult{
		Message:     "No eligible users found",
		TotalProfit: decimal.Zero,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/functions/auto-increment-profits", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
}

func (s *FunctionHandlersTestSuite) TestTriggerProfitRun_RunFailure() {
	s.mockProfitSvc.On("RunProfitDistribution", mock.Anything).Return(nil, context.DeadlineExceeded)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/auto-increment-profits", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Contains(w.Body.String(), "error")
}

func (s *FunctionHandlersTestSuite) TestTriggerProfitRun_TokenRequired() {
	s.buildRouter("scheduler-secret")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/auto-increment-profits", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockProfitSvc.AssertNotCalled(s.T(), "RunProfitDistribution", mock.Anything)
}

func (s *FunctionHandlersTestSuite) TestTriggerProfitRun_TokenAccepted() {
	s.buildRouter("scheduler-secret")
	s.mockProfitSvc.On("RunProfitDistribution", mock.Anything).Return(&domain.ProfitRunResult{
		Message:     "Daily profit distribution completed",
		Processed:   1,
		TotalProfit: decimal.NewFromInt(5),
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/auto-increment-profits", nil)
	req.Header.Set("Authorization", "Bearer scheduler-secret")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
}

func (s *FunctionHandlersTestSuite) TestSubmitContact_Relayed() {
	s.mockContactSvc.On("Submit", mock.Anything, mock.Anything).Return(true, nil)

	body, _ := json.Marshal(dto.ContactRequest{
		FullName: "Jane Investor",
		Email:    "jane@example.com",
		Subject:  "withdrawal",
		Message:  "My withdrawal is still pending.",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/send-contact-email", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ContactResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal("Message sent successfully", resp.Message)
}

func (s *FunctionHandlersTestSuite) TestSubmitContact_StoredWithoutRelay() {
	s.mockContactSvc.On("Submit", mock.Anything, mock.Anything).Return(false, nil)

	body, _ := json.Marshal(dto.ContactRequest{
		FullName: "Jane Investor",
		Email:    "jane@example.com",
		Subject:  "general",
		Message:  "Hello",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/send-contact-email", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ContactResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal("Message received; our team will get back to you shortly", resp.Message)
}

func (s *FunctionHandlersTestSuite) TestSubmitContact_InvalidPayload() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/send-contact-email", bytes.NewReader([]byte(`{"email":"not-an-email"}`)))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockContactSvc.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
}

func TestFunctionHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(FunctionHandlersTestSuite))
}
