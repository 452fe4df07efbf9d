package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ProfitMode selects which accrual policy the profit job applies.
type ProfitMode string

const (
	// ProfitModeTable resolves per-tier base rates from admin settings and scales
	// them by a capped balance bonus. This is the system of record.
	ProfitModeTable ProfitMode = "table"
	// ProfitModeRandom draws a uniform random amount from a fixed per-tier range.
	ProfitModeRandom ProfitMode = "random"
)

// Admin setting keys consumed by the profit job.
const (
	SettingAutoProfitEnabled    = "auto_profit_enabled"
	SettingProfitMode           = "profit_mode"
	SettingMaxDailyProfitCap    = "max_daily_profit_cap"
	SettingIncrementIntervalHrs = "increment_interval_hours"
	settingIncrementRateSuffix  = "_increment_rate"
)

// IncrementRateKey returns the admin-settings key holding a tier's base rate,
// e.g. "elite_increment_rate".
func IncrementRateKey(tier PlanTier) string {
	return string(tier) + settingIncrementRateSuffix
}

// ProfitSettings is the global job configuration, loaded once per run and
// treated as immutable for the run's duration.
type ProfitSettings struct {
	AutoProfitEnabled bool
	Mode              ProfitMode
	Rates             map[PlanTier]decimal.Decimal
	MaxDailyCap       decimal.Decimal
	Interval          time.Duration
}

// DefaultProfitSettings returns the documented fallbacks used when admin
// settings are absent: table mode, starter=1 smart=5 wealth=15 elite=50,
// cap 10000, 24h interval.
func DefaultProfitSettings() ProfitSettings {
	return ProfitSettings{
		AutoProfitEnabled: true,
		Mode:              ProfitModeTable,
		Rates: map[PlanTier]decimal.Decimal{
			PlanStarter: decimal.NewFromInt(1),
			PlanSmart:   decimal.NewFromInt(5),
			PlanWealth:  decimal.NewFromInt(15),
			PlanElite:   decimal.NewFromInt(50),
		},
		MaxDailyCap: decimal.NewFromInt(10000),
		Interval:    24 * time.Hour,
	}
}

// ParseProfitSettings overlays raw admin-settings key/value pairs on the
// defaults. Missing or malformed values fall back silently; configuration
// absence is never an error.
func ParseProfitSettings(raw map[string]string) ProfitSettings {
	s := DefaultProfitSettings()

	if v, ok := raw[SettingAutoProfitEnabled]; ok {
		s.AutoProfitEnabled = v == "true"
	}
	if v, ok := raw[SettingProfitMode]; ok {
		if m := ProfitMode(v); m == ProfitModeTable || m == ProfitModeRandom {
			s.Mode = m
		}
	}
	if v, ok := raw[SettingMaxDailyProfitCap]; ok {
		if cap, err := decimal.NewFromString(v); err == nil && cap.IsPositive() {
			s.MaxDailyCap = cap
		}
	}
	if v, ok := raw[SettingIncrementIntervalHrs]; ok {
		if hours, err := strconv.ParseFloat(v, 64); err == nil && hours > 0 {
			s.Interval = time.Duration(hours * float64(time.Hour))
		}
	}
	for _, tier := range KnownPlanTiers {
		if v, ok := raw[IncrementRateKey(tier)]; ok {
			if rate, err := decimal.NewFromString(v); err == nil && !rate.IsNegative() {
				s.Rates[tier] = rate
			}
		}
	}
	return s
}

// RateFor returns the configured base rate for a tier, defaulting unknown
// tiers to the starter rate.
func (s ProfitSettings) RateFor(tier PlanTier) decimal.Decimal {
	if rate, ok := s.Rates[tier]; ok {
		return rate
	}
	return s.Rates[PlanStarter]
}

// TierRange is the fixed [Min, Min+Spread) draw range used in random mode.
type TierRange struct {
	Min    float64
	Spread float64
}

// RandomRangeFor returns the draw range for a tier: starter [1,3), smart [2,5),
// wealth [3,8), elite [5,10). Unrecognized tiers use [1,10).
func RandomRangeFor(tier PlanTier) TierRange {
	switch tier {
	case PlanStarter:
		return TierRange{Min: 1, Spread: 2}
	case PlanSmart:
		return TierRange{Min: 2, Spread: 3}
	case PlanWealth:
		return TierRange{Min: 3, Spread: 5}
	case PlanElite:
		return TierRange{Min: 5, Spread: 5}
	default:
		return TierRange{Min: 1, Spread: 9}
	}
}

// BalanceBonusFactor scales a table-mode base rate by up to 50% at high
// balances: 1 + min(balance/1000, 5) * 0.1.
func BalanceBonusFactor(balance decimal.Decimal) decimal.Decimal {
	steps := balance.Div(decimal.NewFromInt(1000))
	five := decimal.NewFromInt(5)
	if steps.GreaterThan(five) {
		steps = five
	}
	if steps.IsNegative() {
		steps = decimal.Zero
	}
	return decimal.NewFromInt(1).Add(steps.Mul(decimal.NewFromFloat(0.1)))
}

// IncrementType distinguishes job-driven accruals from manual admin credits.
type IncrementType string

const (
	IncrementAutomatic IncrementType = "automatic"
	IncrementManual    IncrementType = "manual"
)

// ProfitEntry is a per-accrual history record kept separately from the ledger
// for reporting granularity.
type ProfitEntry struct {
	EntryID       string          `json:"entryID"`
	UserID        string          `json:"userID"`
	Amount        decimal.Decimal `json:"amount"`
	PlanName      PlanTier        `json:"planName"`
	IncrementType IncrementType   `json:"incrementType"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Accrual is one committed profit credit: the unit of work handed to the
// ledger writer. The account update and audit inserts succeed or fail as one.
type Accrual struct {
	UserID     string
	Amount     decimal.Decimal
	Plan       PlanTier
	OccurredAt time.Time
}

// Description returns the ledger entry text for this accrual.
func (a Accrual) Description() string {
	return "Daily Profit (" + a.Plan.Title() + " Plan)"
}

// ProfitRunResult is the structured summary of one end-to-end job invocation.
type ProfitRunResult struct {
	Message     string          `json:"message"`
	Processed   int             `json:"processed"`
	Skipped     int             `json:"skipped"`
	Errors      int             `json:"errors"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}
