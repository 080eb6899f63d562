package repositories

import (
	"context"

	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a journal by its ID.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindTransactionsByJournalID retrieves all transaction lines of a journal.
	FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error)

	// CountTransactionsByAccountID returns how many transaction lines reference an account.
	CountTransactionsByAccountID(ctx context.Context, accountID string) (int64, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournal persists a journal with its transactions and applies the given
	// account balance changes, all within one database transaction.
	SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction, balanceChanges map[string]decimal.Decimal) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
