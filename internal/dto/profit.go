package dto

import (
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfitRunResponse is the job invocation contract: a human-readable message
// plus the run tallies.
type ProfitRunResponse struct {
	Message     string          `json:"message"`
	Processed   int             `json:"processed"`
	Skipped     int             `json:"skipped"`
	Errors      int             `json:"errors"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

// ToProfitRunResponse converts a run result to the invocation response.
func ToProfitRunResponse(result *domain.ProfitRunResult) ProfitRunResponse {
	return ProfitRunResponse{
		Message:     result.Message,
		Processed:   result.Processed,
		Skipped:     result.Skipped,
		Errors:      result.Errors,
		TotalProfit: result.TotalProfit,
	}
}

// ProfitEntryResponse is one accrual history record.
type ProfitEntryResponse struct {
	EntryID       string          `json:"entryID"`
	Amount        decimal.Decimal `json:"amount"`
	PlanName      string          `json:"planName"`
	IncrementType string          `json:"incrementType"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListProfitEntriesResponse wraps a page of accrual history records.
type ListProfitEntriesResponse struct {
	Entries []ProfitEntryResponse `json:"entries"`
}

// ToListProfitEntriesResponse converts domain entries to the list response.
func ToListProfitEntriesResponse(entries []domain.ProfitEntry) ListProfitEntriesResponse {
	out := make([]ProfitEntryResponse, len(entries))
	for i, entry := range entries {
		out[i] = ProfitEntryResponse{
			EntryID:       entry.EntryID,
			Amount:        entry.Amount,
			PlanName:      string(entry.PlanName),
			IncrementType: string(entry.IncrementType),
			CreatedAt:     entry.CreatedAt,
		}
	}
	return ListProfitEntriesResponse{Entries: out}
}
