package repositories

// RepositoryProvider bundles every repository implementation so wiring code
// can pass them around as one unit.
type RepositoryProvider struct {
	UserRepo       UserRepositoryFacade
	LedgerRepo     LedgerRepositoryFacade
	DepositRepo    DepositRequestRepository
	WithdrawalRepo WithdrawalRequestRepository
	SettingsRepo   SettingsRepository
	ProfitRepo     ProfitHistoryRepository
	PerfRepo       PerformanceRepository
	KycRepo        KycRepository
	ContactRepo    ContactRepository
}
