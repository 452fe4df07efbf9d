package services

import (
	"context"
	"fmt"
	"time"

	"github.com/primeblocks/investment-backend/internal/apperrors"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/dto"
)

// adminService covers the administrator surface: platform stats, manual
// balance adjustments, and the global job settings.
type adminService struct {
	BaseService
	userRepo       portsrepo.UserReader
	ledgerRepo     portsrepo.LedgerWriter
	depositRepo    portsrepo.DepositRequestRepository
	withdrawalRepo portsrepo.WithdrawalRequestRepository
	settingsRepo   portsrepo.SettingsRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	userRepo portsrepo.UserReader,
	ledgerRepo portsrepo.LedgerWriter,
	depositRepo portsrepo.DepositRequestRepository,
	withdrawalRepo portsrepo.WithdrawalRequestRepository,
	settingsRepo portsrepo.SettingsRepository,
) portssvc.AdminSvcFacade {
	return &adminService{
		userRepo:       userRepo,
		ledgerRepo:     ledgerRepo,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		settingsRepo:   settingsRepo,
	}
}

var _ portssvc.AdminSvcFacade = (*adminService)(nil)

// Stats summarizes user totals and pending request counts for the dashboard.
func (s *adminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	count, totalBalance, err := s.userRepo.SummarizeUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize users: %w", err)
	}
	pendingDeposits, err := s.depositRepo.CountDepositRequestsByStatus(ctx, domain.RequestPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending deposits: %w", err)
	}
	pendingWithdrawals, err := s.withdrawalRepo.CountWithdrawalRequestsByStatus(ctx, domain.RequestPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending withdrawals: %w", err)
	}

	return &dto.AdminStatsResponse{
		TotalUsers:         count,
		PendingDeposits:    pendingDeposits,
		PendingWithdrawals: pendingWithdrawals,
		TotalBalance:       totalBalance,
	}, nil
}

// AdjustBalance applies a signed manual credit or debit to one account.
func (s *adminService) AdjustBalance(ctx context.Context, userID, adminID string, req dto.AdjustBalanceRequest) error {
	if req.Amount.IsZero() {
		return fmt.Errorf("%w: amount must be non-zero", apperrors.ErrValidation)
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}

	adjustment := domain.BalanceAdjustment{
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		IsProfit:    req.IsProfit,
		AdminID:     adminID,
		AdjustedAt:  time.Now().UTC(),
	}
	if err := s.ledgerRepo.AdjustBalance(ctx, adjustment); err != nil {
		return err
	}
	s.LogInfo(ctx, "Balance adjusted",
		"user_id", userID, "admin_id", adminID, "amount", req.Amount.String())
	return nil
}

// ListSettings returns every admin setting.
func (s *adminService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	return s.settingsRepo.ListSettings(ctx)
}

// UpdateSettings upserts the provided key/value pairs. Unknown keys are
// rejected before any write so an update applies entirely or not at all.
func (s *adminService) UpdateSettings(ctx context.Context, adminID string, settings map[string]string) error {
	for key := range settings {
		if !isKnownSettingKey(key) {
			return fmt.Errorf("%w: unknown setting key %q", apperrors.ErrValidation, key)
		}
	}

	now := time.Now().UTC()
	for key, value := range settings {
		setting := domain.Setting{Key: key, Value: value, UpdatedAt: now, UpdatedBy: adminID}
		if err := s.settingsRepo.UpsertSetting(ctx, setting); err != nil {
			return fmt.Errorf("failed to update setting %s: %w", key, err)
		}
	}
	s.LogInfo(ctx, "Admin settings updated", "admin_id", adminID, "keys", len(settings))
	return nil
}

func isKnownSettingKey(key string) bool {
	switch key {
	case domain.SettingAutoProfitEnabled,
		domain.SettingProfitMode,
		domain.SettingMaxDailyProfitCap,
		domain.SettingIncrementIntervalHrs:
		return true
	}
	for _, tier := range domain.KnownPlanTiers {
		if key == domain.IncrementRateKey(tier) {
			return true
		}
	}
	return false
}
