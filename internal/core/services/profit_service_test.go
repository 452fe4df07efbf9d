package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProfitServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockLedger       *MockLedgerWriter
	mockSettingsRepo *MockSettingsRepository
	mockProfitRepo   *MockProfitHistoryRepository

	now       time.Time
	committed []domain.Accrual
}

func (s *ProfitServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.mockLedger = new(MockLedgerWriter)
	s.mockSettingsRepo = new(MockSettingsRepository)
	s.mockProfitRepo = new(MockProfitHistoryRepository)
	s.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s.committed = nil

	s.mockLedger.CommitAccrualFn = func(ctx context.Context, accrual domain.Accrual) error {
		s.committed = append(s.committed, accrual)
		return nil
	}
}

func (s *ProfitServiceTestSuite) newService(randValue float64) portssvc.ProfitSvcFacade {
	return services.NewProfitService(
		s.mockUserRepo,
		s.mockLedger,
		s.mockSettingsRepo,
		s.mockProfitRepo,
		services.WithClock(func() time.Time { return s.now }),
		services.WithRandSource(func() float64 { return randValue }),
	)
}

func (s *ProfitServiceTestSuite) withSettings(raw map[string]string) {
	s.mockSettingsRepo.GetAllSettingsFn = func(ctx context.Context) (map[string]string, error) {
		return raw, nil
	}
}

func (s *ProfitServiceTestSuite) withEligibleUsers(users []domain.User) {
	s.mockUserRepo.FindEligibleForProfitFn = func(ctx context.Context, requireOptIn bool) ([]domain.User, error) {
		return users, nil
	}
}

func eligibleUser(id string, plan domain.PlanTier, balance int64) domain.User {
	return domain.User{
		UserID:            id,
		Balance:           decimal.NewFromInt(balance),
		TotalDeposits:     decimal.NewFromInt(balance),
		DailyProfitTotal:  decimal.Zero,
		InvestmentPlan:    plan,
		AutoProfitEnabled: true,
	}
}

func (s *ProfitServiceTestSuite) TestRun_DisabledFlag() {
	s.withSettings(map[string]string{domain.SettingAutoProfitEnabled: "false"})
	eligibleCalled := false
	s.mockUserRepo.FindEligibleForProfitFn = func(ctx context.Context, requireOptIn bool) ([]domain.User, error) {
		eligibleCalled = true
		return nil, nil
	}

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Equal("Automatic profit distribution is disabled", result.Message)
	s.Zero(result.Processed)
	s.False(eligibleCalled)
	s.Empty(s.committed)
}

func (s *ProfitServiceTestSuite) TestRun_NoEligibleUsers() {
	s.withSettings(map[string]string{})
	s.withEligibleUsers(nil)

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Equal("No eligible users found", result.Message)
	s.Zero(result.Processed)
	s.Zero(result.Skipped)
}

func (s *ProfitServiceTestSuite) TestRun_SettingsLoadFailure() {
	s.mockSettingsRepo.GetAllSettingsFn = func(ctx context.Context) (map[string]string, error) {
		return nil, errors.New("connection refused")
	}

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().Error(err)
	s.Nil(result)
}

func (s *ProfitServiceTestSuite) TestRun_TableMode_AppliesRateAndBonus() {
	s.withSettings(map[string]string{})
	s.withEligibleUsers([]domain.User{
		eligibleUser("user-starter", domain.PlanStarter, 500),
		eligibleUser("user-elite", domain.PlanElite, 20000),
	})

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Equal(2, result.Processed)
	s.Zero(result.Skipped)
	s.Zero(result.Errors)

	s.Require().Len(s.committed, 2)
	// starter: 1 * (1 + 0.5*0.1) = 1.05
	s.True(s.committed[0].Amount.Equal(decimal.RequireFromString("1.05")),
		"got %s", s.committed[0].Amount)
	// elite: 50 * 1.5 (bonus capped at 5 steps) = 75
	s.True(s.committed[1].Amount.Equal(decimal.RequireFromString("75")),
		"got %s", s.committed[1].Amount)
	s.True(result.TotalProfit.Equal(decimal.RequireFromString("76.05")))
}

func (s *ProfitServiceTestSuite) TestRun_CooldownSkipsRecentAccrual() {
	recent := s.now.Add(-1 * time.Hour)
	user := eligibleUser("user-1", domain.PlanStarter, 100)
	user.LastProfitIncrement = &recent

	s.withSettings(map[string]string{})
	s.withEligibleUsers([]domain.User{user})

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Zero(result.Processed)
	s.Equal(1, result.Skipped)
	s.Empty(s.committed)
}

func (s *ProfitServiceTestSuite) TestRun_SecondRunSameInstantSkips() {
	s.withSettings(map[string]string{})
	first := eligibleUser("user-1", domain.PlanSmart, 1000)
	s.withEligibleUsers([]domain.User{first})

	svc := s.newService(0)
	result, err := svc.RunProfitDistribution(context.Background())
	s.Require().NoError(err)
	s.Equal(1, result.Processed)

	// Re-run with the state the first run produced.
	credited := first
	credited.LastProfitIncrement = &s.now
	s.withEligibleUsers([]domain.User{credited})

	result, err = svc.RunProfitDistribution(context.Background())
	s.Require().NoError(err)
	s.Zero(result.Processed)
	s.Equal(1, result.Skipped)
	s.Len(s.committed, 1)
}

func (s *ProfitServiceTestSuite) TestRun_DailyCapClampsToHeadroom() {
	earlier := s.now.Add(-2 * time.Hour)
	user := eligibleUser("user-elite", domain.PlanElite, 20000)
	user.LastProfitIncrement = &earlier
	user.DailyProfitTotal = decimal.RequireFromString("9980")

	s.withSettings(map[string]string{domain.SettingIncrementIntervalHrs: "1"})
	s.withEligibleUsers([]domain.User{user})

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Equal(1, result.Processed)
	s.Require().Len(s.committed, 1)
	// elite would earn 75 but only 20 of headroom remains
	s.True(s.committed[0].Amount.Equal(decimal.RequireFromString("20")),
		"got %s", s.committed[0].Amount)
}

func (s *ProfitServiceTestSuite) TestRun_DailyCapReachedSkips() {
	earlier := s.now.Add(-2 * time.Hour)
	user := eligibleUser("user-elite", domain.PlanElite, 20000)
	user.LastProfitIncrement = &earlier
	user.DailyProfitTotal = decimal.RequireFromString("10000")

	s.withSettings(map[string]string{domain.SettingIncrementIntervalHrs: "1"})
	s.withEligibleUsers([]domain.User{user})

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Zero(result.Processed)
	s.Equal(1, result.Skipped)
}

func (s *ProfitServiceTestSuite) TestRun_FractionalCapNeverExceeded() {
	earlier := s.now.Add(-2 * time.Hour)
	user := eligibleUser("user-elite", domain.PlanElite, 20000)
	user.LastProfitIncrement = &earlier
	user.DailyProfitTotal = decimal.RequireFromString("30")

	s.withSettings(map[string]string{
		domain.SettingMaxDailyProfitCap:    "100.005",
		domain.SettingIncrementIntervalHrs: "1",
	})
	s.withEligibleUsers([]domain.User{user})

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Equal(1, result.Processed)
	s.Require().Len(s.committed, 1)
	// headroom 70.005 rounds down to 70; rounding must not push the daily
	// total past the cap
	s.True(s.committed[0].Amount.Equal(decimal.RequireFromString("70")),
		"got %s", s.committed[0].Amount)
	s.True(user.DailyProfitTotal.Add(s.committed[0].Amount).
		LessThanOrEqual(decimal.RequireFromString("100.005")))
}

func (s *ProfitServiceTestSuite) TestRun_SubCentHeadroomSkips() {
	earlier := s.now.Add(-2 * time.Hour)
	user := eligibleUser("user-elite", domain.PlanElite, 20000)
	user.LastProfitIncrement = &earlier
	user.DailyProfitTotal = decimal.RequireFromString("100")

	s.withSettings(map[string]string{
		domain.SettingMaxDailyProfitCap:    "100.005",
		domain.SettingIncrementIntervalHrs: "1",
	})
	s.withEligibleUsers([]domain.User{user})

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Zero(result.Processed)
	s.Equal(1, result.Skipped)
	s.Empty(s.committed)
}

func (s *ProfitServiceTestSuite) TestRun_NewDayRestoresHeadroom() {
	yesterday := s.now.Add(-25 * time.Hour)
	user := eligibleUser("user-elite", domain.PlanElite, 20000)
	user.LastProfitIncrement = &yesterday
	user.DailyProfitTotal = decimal.RequireFromString("10000")

	s.withSettings(map[string]string{})
	s.withEligibleUsers([]domain.User{user})

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Equal(1, result.Processed)
	s.Require().Len(s.committed, 1)
	s.True(s.committed[0].Amount.Equal(decimal.RequireFromString("75")),
		"got %s", s.committed[0].Amount)
}

func (s *ProfitServiceTestSuite) TestRun_RandomMode_DrawsFromTierRange() {
	s.withSettings(map[string]string{domain.SettingProfitMode: "random"})
	s.withEligibleUsers([]domain.User{eligibleUser("user-starter", domain.PlanStarter, 100)})

	result, err := s.newService(0.5).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Equal(1, result.Processed)
	s.Require().Len(s.committed, 1)
	// starter draws from [1,3): 1 + 0.5*2 = 2.00
	s.True(s.committed[0].Amount.Equal(decimal.RequireFromString("2")),
		"got %s", s.committed[0].Amount)
}

func (s *ProfitServiceTestSuite) TestRun_RandomMode_AmountWithinRange() {
	s.withSettings(map[string]string{domain.SettingProfitMode: "random"})
	s.withEligibleUsers([]domain.User{eligibleUser("user-wealth", domain.PlanWealth, 100)})

	result, err := s.newService(0.9).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Require().Len(s.committed, 1)
	amount := s.committed[0].Amount
	// wealth draws from [3,8)
	s.True(amount.GreaterThanOrEqual(decimal.NewFromInt(3)), "got %s", amount)
	s.True(amount.LessThan(decimal.NewFromInt(8)), "got %s", amount)
	s.Equal(1, result.Processed)
}

func (s *ProfitServiceTestSuite) TestRun_CommitFailureIsolatedPerAccount() {
	s.withSettings(map[string]string{})
	s.withEligibleUsers([]domain.User{
		eligibleUser("user-fail", domain.PlanStarter, 100),
		eligibleUser("user-ok", domain.PlanSmart, 1000),
	})
	s.mockLedger.CommitAccrualFn = func(ctx context.Context, accrual domain.Accrual) error {
		if accrual.UserID == "user-fail" {
			return errors.New("serialization failure")
		}
		s.committed = append(s.committed, accrual)
		return nil
	}

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Equal(1, result.Processed)
	s.Equal(1, result.Errors)
	s.Require().Len(s.committed, 1)
	s.Equal("user-ok", s.committed[0].UserID)
	// the failed account contributes nothing to the run total
	s.True(result.TotalProfit.Equal(s.committed[0].Amount))
}

func (s *ProfitServiceTestSuite) TestRun_TotalProfitIsSumOfCommits() {
	s.withSettings(map[string]string{})
	s.withEligibleUsers([]domain.User{
		eligibleUser("u1", domain.PlanStarter, 0),
		eligibleUser("u2", domain.PlanSmart, 2000),
		eligibleUser("u3", domain.PlanWealth, 10000),
	})

	result, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Equal(3, result.Processed)
	sum := decimal.Zero
	for _, accrual := range s.committed {
		sum = sum.Add(accrual.Amount)
	}
	s.True(result.TotalProfit.Equal(sum), "total %s, sum %s", result.TotalProfit, sum)
}

func (s *ProfitServiceTestSuite) TestRun_TableModeRequiresOptIn() {
	var gotRequireOptIn bool
	s.mockUserRepo.FindEligibleForProfitFn = func(ctx context.Context, requireOptIn bool) ([]domain.User, error) {
		gotRequireOptIn = requireOptIn
		return nil, nil
	}
	s.withSettings(map[string]string{})

	_, err := s.newService(0).RunProfitDistribution(context.Background())
	s.Require().NoError(err)
	s.True(gotRequireOptIn)

	s.withSettings(map[string]string{domain.SettingProfitMode: "random"})
	_, err = s.newService(0).RunProfitDistribution(context.Background())
	s.Require().NoError(err)
	s.False(gotRequireOptIn)
}

func (s *ProfitServiceTestSuite) TestRun_AccrualDescriptionNamesPlan() {
	s.withSettings(map[string]string{})
	s.withEligibleUsers([]domain.User{eligibleUser("u1", domain.PlanElite, 100)})

	_, err := s.newService(0).RunProfitDistribution(context.Background())

	s.Require().NoError(err)
	s.Require().Len(s.committed, 1)
	s.Equal("Daily Profit (Elite Plan)", s.committed[0].Description())
}

func (s *ProfitServiceTestSuite) TestListHistoryForUser() {
	entries := []domain.ProfitEntry{{
		EntryID:       "entry-1",
		UserID:        "u1",
		Amount:        decimal.RequireFromString("12.50"),
		PlanName:      domain.PlanElite,
		IncrementType: domain.IncrementAutomatic,
		CreatedAt:     s.now,
	}}
	var gotLimit, gotOffset int
	s.mockProfitRepo.ListProfitEntriesByUserFn = func(ctx context.Context, userID string, limit, offset int) ([]domain.ProfitEntry, error) {
		gotLimit, gotOffset = limit, offset
		return entries, nil
	}

	got, err := s.newService(0).ListHistoryForUser(context.Background(), "u1", 0, -5)

	s.Require().NoError(err)
	s.Equal(entries, got)
	s.Equal(20, gotLimit)
	s.Equal(0, gotOffset)
}

func TestProfitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfitServiceTestSuite))
}
