package dto

import (
	"time"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse is the API representation of one ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
	ProcessedAt   *time.Time      `json:"processedAt,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its API representation.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Status:        string(txn.Status),
		Description:   txn.Description,
		CreatedAt:     txn.CreatedAt,
		ProcessedAt:   txn.ProcessedAt,
	}
}

// ListTransactionsResponse wraps a page of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts domain transactions to the list DTO.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToTransactionResponse(txn)
	}
	return ListTransactionsResponse{Transactions: out}
}
