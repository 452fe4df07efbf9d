package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// profitService runs the scheduled profit-increment job: one pass over the
// eligible accounts, each processed independently through rate resolution,
// accrual bounding, and an atomic ledger commit.
type profitService struct {
	BaseService
	userRepo     portsrepo.UserReader
	ledgerRepo   portsrepo.LedgerWriter
	settingsRepo portsrepo.SettingsRepository
	profitRepo   portsrepo.ProfitHistoryRepository
	runTimeout   time.Duration
	randFloat    func() float64
	now          func() time.Time
}

// ProfitServiceOption configures a profitService.
type ProfitServiceOption func(*profitService)

// WithRunTimeout bounds one whole invocation. Accounts committed before the
// deadline stay committed.
func WithRunTimeout(d time.Duration) ProfitServiceOption {
	return func(s *profitService) { s.runTimeout = d }
}

// WithRandSource replaces the uniform [0,1) source used in random mode.
func WithRandSource(f func() float64) ProfitServiceOption {
	return func(s *profitService) { s.randFloat = f }
}

// WithClock replaces the wall clock, used in tests.
func WithClock(now func() time.Time) ProfitServiceOption {
	return func(s *profitService) { s.now = now }
}

// NewProfitService creates the profit distribution service.
func NewProfitService(
	userRepo portsrepo.UserReader,
	ledgerRepo portsrepo.LedgerWriter,
	settingsRepo portsrepo.SettingsRepository,
	profitRepo portsrepo.ProfitHistoryRepository,
	opts ...ProfitServiceOption,
) portssvc.ProfitSvcFacade {
	s := &profitService{
		userRepo:     userRepo,
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		profitRepo:   profitRepo,
		randFloat:    rand.Float64,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ProfitSvcFacade = (*profitService)(nil)

// RunProfitDistribution executes one end-to-end run. Settings are read once
// and held constant for the run. Per-account failures are tallied and logged;
// only a failure to load settings or the eligible set aborts the run.
func (s *profitService) RunProfitDistribution(ctx context.Context) (*domain.ProfitRunResult, error) {
	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}
	logger := s.GetLogger(ctx)

	raw, err := s.settingsRepo.GetAllSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profit settings: %w", err)
	}
	settings := domain.ParseProfitSettings(raw)

	result := &domain.ProfitRunResult{TotalProfit: decimal.Zero}

	if !settings.AutoProfitEnabled {
		result.Message = "Automatic profit distribution is disabled"
		logger.Info(result.Message)
		return result, nil
	}

	users, err := s.userRepo.FindEligibleForProfit(ctx, settings.Mode == domain.ProfitModeTable)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch eligible accounts: %w", err)
	}
	if len(users) == 0 {
		result.Message = "No eligible users found"
		return result, nil
	}

	now := s.now().UTC()

	for i := range users {
		user := &users[i]

		amount, skip := s.computeAccrual(user, settings, now)
		if skip {
			result.Skipped++
			continue
		}

		accrual := domain.Accrual{
			UserID:     user.UserID,
			Amount:     amount,
			Plan:       planOrStarter(user.InvestmentPlan),
			OccurredAt: now,
		}
		if err := s.ledgerRepo.CommitAccrual(ctx, accrual); err != nil {
			logger.Error("Failed to commit accrual",
				slog.String("user_id", user.UserID),
				slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		result.Processed++
		result.TotalProfit = result.TotalProfit.Add(amount)
	}

	result.Message = "Daily profit distribution completed"
	logger.Info(result.Message,
		slog.Int("processed", result.Processed),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors),
		slog.String("total_profit", result.TotalProfit.String()))
	return result, nil
}

// computeAccrual turns the resolved rate into the bounded amount to credit,
// or a skip. Amounts are rounded to 2 decimal places in both modes.
func (s *profitService) computeAccrual(user *domain.User, settings domain.ProfitSettings, now time.Time) (decimal.Decimal, bool) {
	if user.LastProfitIncrement != nil && now.Sub(*user.LastProfitIncrement) < settings.Interval {
		return decimal.Zero, true
	}

	plan := planOrStarter(user.InvestmentPlan)

	if settings.Mode == domain.ProfitModeRandom {
		r := domain.RandomRangeFor(plan)
		amount := decimal.NewFromFloat(r.Min + s.randFloat()*r.Spread).Round(2)
		if !amount.IsPositive() {
			return decimal.Zero, true
		}
		return amount, false
	}

	dailyTotal := effectiveDailyTotal(user, now)
	if dailyTotal.GreaterThanOrEqual(settings.MaxDailyCap) {
		return decimal.Zero, true
	}

	amount := settings.RateFor(plan).Mul(domain.BalanceBonusFactor(user.Balance)).Round(2)

	// Truncate to the remaining daily headroom, rounded down to the ledger's
	// 2dp so the stored daily total stays at or under the cap.
	headroom := settings.MaxDailyCap.Sub(dailyTotal).RoundDown(2)
	if amount.GreaterThan(headroom) {
		amount = headroom
	}
	if !amount.IsPositive() {
		return decimal.Zero, true
	}
	return amount, false
}

// ListHistoryForUser returns a page of the user's accrual history records,
// newest first.
func (s *profitService) ListHistoryForUser(ctx context.Context, userID string, limit, offset int) ([]domain.ProfitEntry, error) {
	return s.profitRepo.ListProfitEntriesByUser(ctx, userID, clampLimit(limit), clampOffset(offset))
}

// planOrStarter defaults an unset plan to starter, matching how accounts are
// created at registration.
func planOrStarter(plan domain.PlanTier) domain.PlanTier {
	if plan == "" {
		return domain.PlanStarter
	}
	return plan
}

// effectiveDailyTotal treats the stored daily total as spent only within the
// UTC day of the last accrual; a new day starts with full headroom.
func effectiveDailyTotal(user *domain.User, now time.Time) decimal.Decimal {
	if user.LastProfitIncrement == nil {
		return decimal.Zero
	}
	last := user.LastProfitIncrement.UTC()
	y1, m1, d1 := last.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return decimal.Zero
	}
	return user.DailyProfitTotal
}
