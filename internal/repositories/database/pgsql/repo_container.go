package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		LedgerRepo:     newPgxLedgerRepository(dbPool),
		DepositRepo:    newPgxDepositRequestRepository(dbPool),
		WithdrawalRepo: newPgxWithdrawalRequestRepository(dbPool),
		SettingsRepo:   newPgxSettingsRepository(dbPool),
		ProfitRepo:     newPgxProfitHistoryRepository(dbPool),
		PerfRepo:       newPgxPerformanceRepository(dbPool),
		KycRepo:        newPgxKycRepository(dbPool),
		ContactRepo:    newPgxContactRepository(dbPool),
	}
}
