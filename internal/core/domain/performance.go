package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSnapshot is one day's portfolio valuation for one investor.
// The profit job upserts a snapshot per processed account per day.
type PortfolioSnapshot struct {
	SnapshotID         string          `json:"snapshotID"`
	UserID             string          `json:"userID"`
	Date               time.Time       `json:"date"`
	PortfolioValue     decimal.Decimal `json:"portfolioValue"`
	DailyChange        decimal.Decimal `json:"dailyChange"`
	DailyChangePercent decimal.Decimal `json:"dailyChangePercent"`
	TotalROI           decimal.Decimal `json:"totalROI"`
	TotalROIPercent    decimal.Decimal `json:"totalROIPercent"`
}

// NewPortfolioSnapshot derives a snapshot from the post-accrual account state.
// ROI is measured against lifetime deposits; percentages are zero when the
// respective base is zero.
func NewPortfolioSnapshot(userID string, balance, dailyChange, totalDeposits decimal.Decimal, day time.Time) PortfolioSnapshot {
	hundred := decimal.NewFromInt(100)
	snap := PortfolioSnapshot{
		UserID:         userID,
		Date:           day.Truncate(24 * time.Hour),
		PortfolioValue: balance,
		DailyChange:    dailyChange,
	}
	prev := balance.Sub(dailyChange)
	if prev.IsPositive() {
		snap.DailyChangePercent = dailyChange.Div(prev).Mul(hundred).Round(2)
	}
	snap.TotalROI = balance.Sub(totalDeposits)
	if totalDeposits.IsPositive() {
		snap.TotalROIPercent = snap.TotalROI.Div(totalDeposits).Mul(hundred).Round(2)
	}
	return snap
}
