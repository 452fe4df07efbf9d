package dto

import (
	"github.com/primeblocks/investment-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AdminStatsResponse summarizes the platform for the admin dashboard.
type AdminStatsResponse struct {
	TotalUsers         int             `json:"totalUsers"`
	PendingDeposits    int             `json:"pendingDeposits"`
	PendingWithdrawals int             `json:"pendingWithdrawals"`
	TotalBalance       decimal.Decimal `json:"totalBalance"`
}

// AdjustBalanceRequest is a manual admin credit or debit.
type AdjustBalanceRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	IsProfit    bool            `json:"isProfit"`
}

// SettingResponse is the API representation of one admin setting.
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ListSettingsResponse wraps all admin settings.
type ListSettingsResponse struct {
	Settings []SettingResponse `json:"settings"`
}

// ToListSettingsResponse converts domain settings to the list DTO.
func ToListSettingsResponse(settings []domain.Setting) ListSettingsResponse {
	out := make([]SettingResponse, len(settings))
	for i, s := range settings {
		out[i] = SettingResponse{Key: s.Key, Value: s.Value}
	}
	return ListSettingsResponse{Settings: out}
}

// UpdateSettingsRequest replaces the values of the named settings.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required,min=1"`
}
