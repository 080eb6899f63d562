package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldenhorse/ghs_backend/internal/apperrors"
	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	portsrepo "github.com/goldenhorse/ghs_backend/internal/core/ports/repositories"
	portssvc "github.com/goldenhorse/ghs_backend/internal/core/ports/services"
	"github.com/goldenhorse/ghs_backend/internal/dto"
	"github.com/goldenhorse/ghs_backend/internal/middleware"
	"github.com/goldenhorse/ghs_backend/internal/utils/accounting"
)

var (
	ErrJournalAccountMissing = fmt.Errorf("%w: journal references a missing account", apperrors.ErrValidation)
	ErrCurrencyMismatch      = fmt.Errorf("%w: account currency does not match journal currency", apperrors.ErrValidation)
)

// journalService provides double-entry journal posting and lookup.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, actor string) (*domain.Journal, []domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	journalDate := req.JournalDate
	if journalDate.IsZero() {
		journalDate = now
	}

	journal := domain.Journal{
		JournalID:    uuid.NewString(),
		JournalDate:  journalDate,
		Description:  req.Description,
		CurrencyCode: req.CurrencyCode,
		Status:       domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	transactions := make([]domain.Transaction, len(req.Transactions))
	accountIDs := make([]string, 0, len(req.Transactions))
	for i, line := range req.Transactions {
		transactions[i] = domain.Transaction{
			TransactionID:   uuid.NewString(),
			JournalID:       journal.JournalID,
			AccountID:       line.AccountID,
			Amount:          line.Amount,
			TransactionType: line.TransactionType,
			CurrencyCode:    req.CurrencyCode,
			Notes:           line.Notes,
			AuditFields:     journal.AuditFields,
		}
		accountIDs = append(accountIDs, line.AccountID)
	}

	// Balance is enforced here, before any persistence: total debits must
	// equal total credits.
	if err := accounting.ValidateJournalBalance(transactions); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch journal accounts: %w", err)
	}

	balanceChanges := make(map[string]decimal.Decimal, len(accounts))
	for _, txn := range transactions {
		account, ok := accounts[txn.AccountID]
		if !ok {
			return nil, nil, fmt.Errorf("%w (account %s)", ErrJournalAccountMissing, txn.AccountID)
		}
		if account.CurrencyCode != journal.CurrencyCode {
			return nil, nil, fmt.Errorf("%w (account %s holds %s)", ErrCurrencyMismatch, txn.AccountID, account.CurrencyCode)
		}

		signed, err := accounting.CalculateSignedAmount(txn, account.Nature)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to sign transaction %s: %w", txn.TransactionID, err)
		}
		balanceChanges[txn.AccountID] = balanceChanges[txn.AccountID].Add(signed)
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, transactions, balanceChanges); err != nil {
		logger.Error("Failed to persist journal", slog.String("error", err.Error()), slog.String("journal_id", journal.JournalID))
		return nil, nil, err
	}

	logger.Info("Journal posted",
		slog.String("journal_id", journal.JournalID),
		slog.Int("lines", len(transactions)))
	return &journal, transactions, nil
}

func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, []domain.Transaction, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, nil, err
	}

	transactions, err := s.journalRepo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions of journal %s: %w", journalID, err)
	}
	return journal, transactions, nil
}
