package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/primeblocks/investment-backend/internal/apperrors"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/dto"
	"github.com/primeblocks/investment-backend/internal/platform/config"
	"github.com/primeblocks/investment-backend/internal/utils"
	"github.com/shopspring/decimal"
)

// ErrInvalidCredentials is returned when the email or password does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// authService handles registration and login.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a new investor account. New accounts start on the starter
// plan with zeroed totals and automatic profit enabled.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, err := s.userRepo.FindUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, email)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:            uuid.NewString(),
		Email:             email,
		FullName:          req.FullName,
		PasswordHash:      hash,
		Balance:           decimal.Zero,
		TotalDeposits:     decimal.Zero,
		TotalWithdrawals:  decimal.Zero,
		TotalProfits:      decimal.Zero,
		DailyProfitTotal:  decimal.Zero,
		InvestmentPlan:    domain.PlanStarter,
		AutoProfitEnabled: true,
		CreatedAt:         now,
		LastUpdatedAt:     now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User registered", "user_id", user.UserID)
	return &user, nil
}

// Login verifies credentials and issues a signed access token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, user, nil
}
