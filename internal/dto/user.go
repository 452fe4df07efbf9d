package dto

import (
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserResponse is the API representation of an investor profile.
type UserResponse struct {
	UserID              string          `json:"userID"`
	Email               string          `json:"email"`
	FullName            string          `json:"fullName"`
	Balance             decimal.Decimal `json:"balance"`
	TotalDeposits       decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals    decimal.Decimal `json:"totalWithdrawals"`
	TotalProfits        decimal.Decimal `json:"totalProfits"`
	DailyProfitTotal    decimal.Decimal `json:"dailyProfitTotal"`
	LastProfitIncrement *time.Time      `json:"lastProfitIncrement,omitempty"`
	InvestmentPlan      string          `json:"investmentPlan"`
	AutoProfitEnabled   bool            `json:"autoProfitEnabled"`
	IsAdmin             bool            `json:"isAdmin"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:              user.UserID,
		Email:               user.Email,
		FullName:            user.FullName,
		Balance:             user.Balance,
		TotalDeposits:       user.TotalDeposits,
		TotalWithdrawals:    user.TotalWithdrawals,
		TotalProfits:        user.TotalProfits,
		DailyProfitTotal:    user.DailyProfitTotal,
		LastProfitIncrement: user.LastProfitIncrement,
		InvestmentPlan:      string(user.InvestmentPlan),
		AutoProfitEnabled:   user.AutoProfitEnabled,
		IsAdmin:             user.IsAdmin,
		CreatedAt:           user.CreatedAt,
	}
}

// UpdateProfileRequest defines the profile fields an investor may change.
// Pointers distinguish omitted fields from zero values.
type UpdateProfileRequest struct {
	FullName          *string `json:"fullName"`
	InvestmentPlan    *string `json:"investmentPlan" binding:"omitempty,plantier"`
	AutoProfitEnabled *bool   `json:"autoProfitEnabled"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(&user)
	}
	return ListUsersResponse{Users: userResponses}
}
