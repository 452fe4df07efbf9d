package dto

import (
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SnapshotResponse is one day's portfolio valuation.
type SnapshotResponse struct {
	Date               time.Time       `json:"date"`
	PortfolioValue     decimal.Decimal `json:"portfolioValue"`
	DailyChange        decimal.Decimal `json:"dailyChange"`
	DailyChangePercent decimal.Decimal `json:"dailyChangePercent"`
	TotalROI           decimal.Decimal `json:"totalROI"`
	TotalROIPercent    decimal.Decimal `json:"totalROIPercent"`
}

// PerformanceResponse wraps a user's recent snapshots, most recent first.
type PerformanceResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
	Latest    *SnapshotResponse  `json:"latest,omitempty"`
}

// ToPerformanceResponse converts domain snapshots to the API representation.
func ToPerformanceResponse(snaps []domain.PortfolioSnapshot) PerformanceResponse {
	out := make([]SnapshotResponse, len(snaps))
	for i, s := range snaps {
		out[i] = SnapshotResponse{
			Date:               s.Date,
			PortfolioValue:     s.PortfolioValue,
			DailyChange:        s.DailyChange,
			DailyChangePercent: s.DailyChangePercent,
			TotalROI:           s.TotalROI,
			TotalROIPercent:    s.TotalROIPercent,
		}
	}
	resp := PerformanceResponse{Snapshots: out}
	if len(out) > 0 {
		resp.Latest = &out[0]
	}
	return resp
}
