package services

import (
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, mailer portssvc.Mailer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(repos.UserRepo, cfg),
		User:        NewUserService(repos.UserRepo),
		Transaction: NewTransactionService(repos.LedgerRepo),
		Deposit:     NewDepositService(repos.DepositRepo, repos.LedgerRepo, mailer, cfg.SupportEmail),
		Withdrawal:  NewWithdrawalService(repos.WithdrawalRepo, repos.UserRepo, repos.LedgerRepo, mailer, cfg.SupportEmail),
		Admin:       NewAdminService(repos.UserRepo, repos.LedgerRepo, repos.DepositRepo, repos.WithdrawalRepo, repos.SettingsRepo),
		Profit: NewProfitService(repos.UserRepo, repos.LedgerRepo, repos.SettingsRepo, repos.ProfitRepo,
			WithRunTimeout(cfg.ProfitRunTimeout)),
		Kyc:         NewKycService(repos.KycRepo),
		Performance: NewPerformanceService(repos.PerfRepo),
		Contact:     NewContactService(repos.ContactRepo, mailer, cfg.SupportEmail),
	}
}
