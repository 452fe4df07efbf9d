package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry by the event that produced it.
type TransactionType string

const (
	TxnDeposit           TransactionType = "deposit"
	TxnWithdrawal        TransactionType = "withdrawal"
	TxnProfitCredit      TransactionType = "profit_credit"
	TxnBalanceAdjustment TransactionType = "balance_adjustment"
)

// TransactionStatus is the processing state of a ledger entry.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusApproved TransactionStatus = "approved"
	StatusRejected TransactionStatus = "rejected"
)

// Transaction is an immutable audit record of a single balance-affecting event.
// Rows are written once and never mutated afterwards.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	UserID        string            `json:"userID"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	Description   string            `json:"description"`
	CreatedAt     time.Time         `json:"createdAt"`
	ProcessedAt   *time.Time        `json:"processedAt,omitempty"`
	ProcessedBy   *string           `json:"processedBy,omitempty"`
}
