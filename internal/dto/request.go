package dto

import (
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepositRequest is submitted by an investor claiming an external payment.
type CreateDepositRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod   string          `json:"paymentMethod" binding:"required,oneof=bank_transfer wire_transfer crypto"`
	ReferenceNumber string          `json:"referenceNumber"`
	Notes           string          `json:"notes"`
}

// DepositRequestResponse is the API representation of a deposit request.
type DepositRequestResponse struct {
	RequestID       string          `json:"requestID"`
	UserID          string          `json:"userID"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"paymentMethod"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	ProcessedAt     *time.Time      `json:"processedAt,omitempty"`
}

// ToDepositRequestResponse converts a domain.DepositRequest to its API form.
func ToDepositRequestResponse(req *domain.DepositRequest) DepositRequestResponse {
	return DepositRequestResponse{
		RequestID:       req.RequestID,
		UserID:          req.UserID,
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		Status:          string(req.Status),
		CreatedAt:       req.CreatedAt,
		ProcessedAt:     req.ProcessedAt,
	}
}

// ListDepositRequestsResponse wraps a page of deposit requests.
type ListDepositRequestsResponse struct {
	Requests []DepositRequestResponse `json:"requests"`
}

// ToListDepositRequestsResponse converts domain requests to the list DTO.
func ToListDepositRequestsResponse(reqs []domain.DepositRequest) ListDepositRequestsResponse {
	out := make([]DepositRequestResponse, len(reqs))
	for i := range reqs {
		out[i] = ToDepositRequestResponse(&reqs[i])
	}
	return ListDepositRequestsResponse{Requests: out}
}

// CreateWithdrawalRequest is submitted by an investor requesting a payout.
type CreateWithdrawalRequest struct {
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	WithdrawalMethod string          `json:"withdrawalMethod" binding:"required,oneof=bank_transfer wire_transfer crypto"`
	AccountDetails   string          `json:"accountDetails" binding:"required"`
	Notes            string          `json:"notes"`
}

// WithdrawalRequestResponse is the API representation of a withdrawal request.
type WithdrawalRequestResponse struct {
	RequestID        string          `json:"requestID"`
	UserID           string          `json:"userID"`
	Amount           decimal.Decimal `json:"amount"`
	WithdrawalMethod string          `json:"withdrawalMethod"`
	AccountDetails   string          `json:"accountDetails"`
	Notes            string          `json:"notes,omitempty"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	ProcessedAt      *time.Time      `json:"processedAt,omitempty"`
}

// ToWithdrawalRequestResponse converts a domain.WithdrawalRequest to its API form.
func ToWithdrawalRequestResponse(req *domain.WithdrawalRequest) WithdrawalRequestResponse {
	return WithdrawalRequestResponse{
		RequestID:        req.RequestID,
		UserID:           req.UserID,
		Amount:           req.Amount,
		WithdrawalMethod: req.WithdrawalMethod,
		AccountDetails:   req.AccountDetails,
		Notes:            req.Notes,
		Status:           string(req.Status),
		CreatedAt:        req.CreatedAt,
		ProcessedAt:      req.ProcessedAt,
	}
}

// ListWithdrawalRequestsResponse wraps a page of withdrawal requests.
type ListWithdrawalRequestsResponse struct {
	Requests []WithdrawalRequestResponse `json:"requests"`
}

// ToListWithdrawalRequestsResponse converts domain requests to the list DTO.
func ToListWithdrawalRequestsResponse(reqs []domain.WithdrawalRequest) ListWithdrawalRequestsResponse {
	out := make([]WithdrawalRequestResponse, len(reqs))
	for i := range reqs {
		out[i] = ToWithdrawalRequestResponse(&reqs[i])
	}
	return ListWithdrawalRequestsResponse{Requests: out}
}

// ListRequestsParams defines query parameters for listing requests.
type ListRequestsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}
