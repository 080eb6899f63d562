package repositories

// RepositoryProvider bundles every repository the services need.
type RepositoryProvider struct {
	AccountRepo  AccountRepositoryFacade
	CurrencyRepo CurrencyRepositoryFacade
	JournalRepo  JournalRepositoryFacade
}
