package services

import (
	portsrepo "github.com/goldenhorse/ghs_backend/internal/core/ports/repositories"
	portssvc "github.com/goldenhorse/ghs_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Chart = NewChartService(repos.AccountRepo, repos.CurrencyRepo, repos.JournalRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.Posting = NewPostingService(container.Chart, container.Journal)

	return container
}
