package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the review state of a deposit or withdrawal request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// DepositRequest is an investor's claim of an external payment, pending admin review.
type DepositRequest struct {
	RequestID       string          `json:"requestID"`
	UserID          string          `json:"userID"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"paymentMethod"`
	ReferenceNumber string          `json:"referenceNumber"`
	Notes           string          `json:"notes"`
	Status          RequestStatus   `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	ProcessedAt     *time.Time      `json:"processedAt,omitempty"`
	ProcessedBy     *string         `json:"processedBy,omitempty"`
}

// WithdrawalRequest is an investor's payout request, pending admin review.
// Approval elsewhere is responsible for rejecting over-withdrawal.
type WithdrawalRequest struct {
	RequestID        string          `json:"requestID"`
	UserID           string          `json:"userID"`
	Amount           decimal.Decimal `json:"amount"`
	WithdrawalMethod string          `json:"withdrawalMethod"`
	AccountDetails   string          `json:"accountDetails"`
	Notes            string          `json:"notes"`
	Status           RequestStatus   `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	ProcessedAt      *time.Time      `json:"processedAt,omitempty"`
	ProcessedBy      *string         `json:"processedBy,omitempty"`
}

// BalanceAdjustment is a manual admin credit or debit applied to one account.
type BalanceAdjustment struct {
	UserID      string          `json:"userID"`
	Amount      decimal.Decimal `json:"amount"` // signed; negative debits the account
	Description string          `json:"description"`
	IsProfit    bool            `json:"isProfit"` // credits total_profits and profit history as well
	AdminID     string          `json:"adminID"`
	AdjustedAt  time.Time       `json:"adjustedAt"`
}
