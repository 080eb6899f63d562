package pgsql

import (
	portsrepo "github.com/goldenhorse/ghs_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgsql-backed repositories against a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(pool)
	return portsrepo.RepositoryProvider{
		AccountRepo:  accountRepo,
		CurrencyRepo: newPgxCurrencyRepository(pool),
		JournalRepo:  newPgxJournalRepository(pool, accountRepo),
	}
}
