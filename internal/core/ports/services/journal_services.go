package services

import (
	"context"

	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	"github.com/goldenhorse/ghs_backend/internal/dto"
)

// JournalSvcFacade defines operations for posting and reading journals
type JournalSvcFacade interface {
	// CreateJournal validates double-entry balance and persists the journal
	// with its transaction lines and account balance updates.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest, actor string) (*domain.Journal, []domain.Transaction, error)

	// GetJournalByID retrieves a journal and its transaction lines.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, []domain.Transaction, error)
}
