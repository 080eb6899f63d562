package services

import (
	"context"

	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	portsrepo "github.com/goldenhorse/ghs_backend/internal/core/ports/repositories"
	"github.com/goldenhorse/ghs_backend/internal/dto"
)

// ChartReaderSvc defines read operations over the chart of accounts
type ChartReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetSystemAccountBySlug retrieves a bootstrapped system account by slug.
	GetSystemAccountBySlug(ctx context.Context, slug string) (*domain.Account, error)

	// ListAccounts retrieves a filtered flat list of accounts ordered by code.
	ListAccounts(ctx context.Context, filter portsrepo.AccountFilter) ([]domain.Account, error)

	// BuildTree materializes the account hierarchy. With no rootIDs it returns
	// all level-1 accounts as roots.
	BuildTree(ctx context.Context, rootIDs ...string) ([]domain.AccountNode, error)
}

// ChartWriterSvc defines write operations over the chart of accounts
type ChartWriterSvc interface {
	// EnsureInitialChart idempotently bootstraps the five roots and the fixed
	// set of system sub-accounts. A no-op when no currency exists yet.
	EnsureInitialChart(ctx context.Context, actor string) error

	// GetOrCreateSystemAccountBySlug returns the account with the given slug,
	// creating it under parentID when missing.
	GetOrCreateSystemAccountBySlug(ctx context.Context, slug, name, parentAccountID, currencyCode, actor string) (*domain.Account, error)

	// CreateAccount creates exactly one new account as a child of a given parent.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor string) (*domain.Account, error)

	// UpdateAccount updates name, code, currency or nature of an account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error)

	// DeleteAccount removes a leaf account that no journal line references.
	DeleteAccount(ctx context.Context, accountID string, actor string) error
}

// ChartSvcFacade combines all chart-of-accounts service interfaces
type ChartSvcFacade interface {
	ChartReaderSvc
	ChartWriterSvc
}
