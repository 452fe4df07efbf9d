package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanTier is the investment bracket governing an account's accrual rate.
type PlanTier string

const (
	PlanStarter PlanTier = "starter"
	PlanSmart   PlanTier = "smart"
	PlanWealth  PlanTier = "wealth"
	PlanElite   PlanTier = "elite"
)

// KnownPlanTiers lists every recognized plan tier.
var KnownPlanTiers = []PlanTier{PlanStarter, PlanSmart, PlanWealth, PlanElite}

// IsValid reports whether the tier is one of the recognized plans.
func (p PlanTier) IsValid() bool {
	switch p {
	case PlanStarter, PlanSmart, PlanWealth, PlanElite:
		return true
	}
	return false
}

// Title returns the tier name with its first letter capitalized, as used in
// ledger entry descriptions ("Daily Profit (Starter Plan)").
func (p PlanTier) Title() string {
	s := string(p)
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

// User represents one registered investor's financial record.
type User struct {
	UserID              string          `json:"userID"`
	Email               string          `json:"email"`
	FullName            string          `json:"fullName"`
	PasswordHash        string          `json:"-"`
	Balance             decimal.Decimal `json:"balance"`
	TotalDeposits       decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals    decimal.Decimal `json:"totalWithdrawals"`
	TotalProfits        decimal.Decimal `json:"totalProfits"`
	DailyProfitTotal    decimal.Decimal `json:"dailyProfitTotal"`
	LastProfitIncrement *time.Time      `json:"lastProfitIncrement,omitempty"`
	InvestmentPlan      PlanTier        `json:"investmentPlan"`
	AutoProfitEnabled   bool            `json:"autoProfitEnabled"`
	IsAdmin             bool            `json:"isAdmin"`
	CreatedAt           time.Time       `json:"createdAt"`
	LastUpdatedAt       time.Time       `json:"lastUpdatedAt"`
}
