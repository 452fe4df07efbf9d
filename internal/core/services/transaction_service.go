package services

import (
	"context"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
)

type transactionService struct {
	BaseService
	ledgerRepo portsrepo.TransactionReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(ledgerRepo portsrepo.TransactionReader) portssvc.TransactionSvcFacade {
	return &transactionService{ledgerRepo: ledgerRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ListForUser retrieves a user's ledger entries, newest first.
func (s *transactionService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.ledgerRepo.ListTransactionsByUser(ctx, userID, limit, offset)
}
