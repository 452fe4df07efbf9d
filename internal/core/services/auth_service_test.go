package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/primeblocks/investment-backend/internal/apperrors"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/core/services"
	"github.com/primeblocks/investment-backend/internal/dto"
	"github.com/primeblocks/investment-backend/internal/platform/config"
	"github.com/primeblocks/investment-backend/internal/utils"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.AuthSvcFacade
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
	}
	s.service = services.NewAuthService(s.mockUserRepo, cfg)
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	var saved domain.User

	s.mockUserRepo.FindUserByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}
	s.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	user, err := s.service.Register(ctx, dto.RegisterRequest{
		Email:    "Investor@Example.com",
		Password: "password123",
		FullName: "Test Investor",
	})

	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Equal("investor@example.com", user.Email)
	s.NotEmpty(user.UserID)
	s.Equal(domain.PlanStarter, user.InvestmentPlan)
	s.True(user.AutoProfitEnabled)
	s.False(user.IsAdmin)
	s.True(user.Balance.IsZero())
	s.True(user.TotalDeposits.IsZero())
	s.True(user.TotalProfits.IsZero())
	s.Nil(user.LastProfitIncrement)

	s.NotEqual("password123", saved.PasswordHash)
	s.True(utils.CheckPasswordHash("password123", saved.PasswordHash))
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Email: "taken@example.com"}
	s.mockUserRepo.FindUserByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return existing, nil
	}

	user, err := s.service.Register(ctx, dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
		FullName: "Someone Else",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	s.Require().NoError(err)

	s.mockUserRepo.FindUserByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{UserID: "u1", Email: email, PasswordHash: hash}, nil
	}

	token, user, err := s.service.Login(ctx, dto.LoginRequest{
		Email:    "investor@example.com",
		Password: "password123",
	})

	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Require().NotNil(user)
	s.Equal("u1", user.UserID)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	s.Require().NoError(err)

	s.mockUserRepo.FindUserByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{UserID: "u1", Email: email, PasswordHash: hash}, nil
	}

	token, user, err := s.service.Login(ctx, dto.LoginRequest{
		Email:    "investor@example.com",
		Password: "wrong-password",
	})

	s.Require().ErrorIs(err, services.ErrInvalidCredentials)
	s.Empty(token)
	s.Nil(user)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()
	s.mockUserRepo.FindUserByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	_, _, err := s.service.Login(ctx, dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	s.Require().ErrorIs(err, services.ErrInvalidCredentials)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
