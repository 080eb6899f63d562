package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/goldenhorse/ghs_backend/internal/apperrors"
	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	portssvc "github.com/goldenhorse/ghs_backend/internal/core/ports/services"
	"github.com/goldenhorse/ghs_backend/internal/dto"
)

var (
	ErrChartNotInitialized = fmt.Errorf("%w: chart of accounts is not initialized", apperrors.ErrValidation)
	ErrNonPositiveAmount   = fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
)

// postingService constructs the balanced journal entries the business records
// against the bootstrapped system accounts. Balance is guaranteed by
// construction: every posting debits and credits the same amount.
type postingService struct {
	chartSvc   portssvc.ChartSvcFacade
	journalSvc portssvc.JournalSvcFacade
}

// NewPostingService creates a new posting service.
func NewPostingService(chartSvc portssvc.ChartSvcFacade, journalSvc portssvc.JournalSvcFacade) portssvc.PostingSvcFacade {
	return &postingService{
		chartSvc:   chartSvc,
		journalSvc: journalSvc,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// systemAccount fetches a bootstrapped account, translating a missing slug
// into a chart-not-initialized validation error.
func (s *postingService) systemAccount(ctx context.Context, slug string) (*domain.Account, error) {
	account, err := s.chartSvc.GetSystemAccountBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w (missing %s)", ErrChartNotInitialized, slug)
		}
		return nil, err
	}
	return account, nil
}

func (s *postingService) RegisterFixedAsset(ctx context.Context, req dto.RegisterFixedAssetRequest, actor string) (*domain.Account, error) {
	parent, err := s.systemAccount(ctx, SlugFixedAssets)
	if err != nil {
		return nil, err
	}

	return s.chartSvc.CreateAccount(ctx, dto.CreateAccountRequest{
		Name:            req.Name,
		ParentAccountID: &parent.AccountID,
		CurrencyCode:    req.CurrencyCode,
	}, actor)
}

func (s *postingService) RecordDepreciation(ctx context.Context, req dto.RecordDepreciationRequest, actor string) (*domain.Journal, []domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrNonPositiveAmount
	}

	expense, err := s.systemAccount(ctx, SlugDepreciationExpense)
	if err != nil {
		return nil, nil, err
	}
	accumulated, err := s.systemAccount(ctx, SlugAccumulatedDepreciation)
	if err != nil {
		return nil, nil, err
	}

	memo := req.Memo
	if memo == "" {
		memo = "Periodic depreciation"
	}

	return s.journalSvc.CreateJournal(ctx, dto.CreateJournalRequest{
		JournalDate:  req.Date,
		Description:  memo,
		CurrencyCode: expense.CurrencyCode,
		Transactions: []dto.CreateTransactionRequest{
			{AccountID: expense.AccountID, Amount: req.Amount, TransactionType: domain.Debit},
			{AccountID: accumulated.AccountID, Amount: req.Amount, TransactionType: domain.Credit},
		},
	}, actor)
}

func (s *postingService) RecordEmployeeAdvance(ctx context.Context, req dto.RecordEmployeeAdvanceRequest, actor string) (*domain.Account, *domain.Journal, []domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, nil, ErrNonPositiveAmount
	}

	advances, err := s.systemAccount(ctx, SlugAdvances)
	if err != nil {
		return nil, nil, nil, err
	}
	payable, err := s.systemAccount(ctx, SlugEmployeesPayable)
	if err != nil {
		return nil, nil, nil, err
	}

	// One ledger sub-account per employee, keyed by a stable slug so repeated
	// advances reuse the same account.
	slug := "employee_advance_" + req.EmployeeRef
	employeeAccount, err := s.chartSvc.GetOrCreateSystemAccountBySlug(ctx, slug, req.EmployeeName, advances.AccountID, advances.CurrencyCode, actor)
	if err != nil {
		return nil, nil, nil, err
	}

	journal, transactions, err := s.journalSvc.CreateJournal(ctx, dto.CreateJournalRequest{
		JournalDate:  req.Date,
		Description:  "Advance to " + req.EmployeeName,
		CurrencyCode: employeeAccount.CurrencyCode,
		Transactions: []dto.CreateTransactionRequest{
			{AccountID: employeeAccount.AccountID, Amount: req.Amount, TransactionType: domain.Debit},
			{AccountID: payable.AccountID, Amount: req.Amount, TransactionType: domain.Credit},
		},
	}, actor)
	if err != nil {
		return nil, nil, nil, err
	}
	return employeeAccount, journal, transactions, nil
}
