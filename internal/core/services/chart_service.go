package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goldenhorse/ghs_backend/internal/apperrors"
	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	portsrepo "github.com/goldenhorse/ghs_backend/internal/core/ports/repositories"
	portssvc "github.com/goldenhorse/ghs_backend/internal/core/ports/services"
	"github.com/goldenhorse/ghs_backend/internal/dto"
	"github.com/goldenhorse/ghs_backend/internal/middleware"
)

var (
	ErrParentRequired    = fmt.Errorf("%w: a parent account must be chosen", apperrors.ErrValidation)
	ErrParentNotFound    = fmt.Errorf("%w: parent account not found", apperrors.ErrValidation)
	ErrNoCurrency        = fmt.Errorf("%w: no currency available, add one first", apperrors.ErrValidation)
	ErrHasSubAccounts    = fmt.Errorf("%w: cannot delete an account with sub-accounts", apperrors.ErrValidation)
	ErrAccountReferenced = fmt.Errorf("%w: cannot delete an account referenced by journal entries", apperrors.ErrValidation)
	ErrInvalidCode       = fmt.Errorf("%w: account code must consist of dot-separated numeric segments", apperrors.ErrValidation)
)

// codeAllocationRetries bounds how often a create is retried after losing a
// sibling-segment race to a concurrent writer.
const codeAllocationRetries = 3

// rootSpec is one of the five fixed level-1 accounts anchoring the chart.
type rootSpec struct {
	Code     string
	Name     string
	RootType domain.RootType
}

var chartRoots = []rootSpec{
	{Code: "1", Name: "Assets", RootType: domain.Asset},
	{Code: "2", Name: "Liabilities", RootType: domain.Liability},
	{Code: "3", Name: "Equity", RootType: domain.Equity},
	{Code: "4", Name: "Revenue", RootType: domain.Revenue},
	{Code: "5", Name: "Expenses", RootType: domain.Expense},
}

// System account slugs created by bootstrap.
const (
	SlugAdvances                  = "advances"
	SlugEmployeeLoans             = "employee_loans"
	SlugAccountsReceivableClients = "accounts_receivable_clients"
	SlugFixedAssets               = "fixed_assets"
	SlugDepreciationExpense       = "depreciation_expense"
	SlugEmployeesPayable          = "employees_payable"
	SlugAccumulatedDepreciation   = "accumulated_depreciation"
)

// systemAccountSpec describes a bootstrapped sub-account and the root it lives under.
type systemAccountSpec struct {
	Slug     string
	Name     string
	RootCode string
}

var systemAccounts = []systemAccountSpec{
	{Slug: SlugAdvances, Name: "Advances", RootCode: "1"},
	{Slug: SlugEmployeeLoans, Name: "Employee Loans", RootCode: "1"},
	{Slug: SlugAccountsReceivableClients, Name: "Accounts Receivable - Clients", RootCode: "1"},
	{Slug: SlugFixedAssets, Name: "Fixed Assets", RootCode: "1"},
	{Slug: SlugDepreciationExpense, Name: "Depreciation Expense", RootCode: "5"},
	{Slug: SlugEmployeesPayable, Name: "Employees Payable", RootCode: "2"},
	{Slug: SlugAccumulatedDepreciation, Name: "Accumulated Depreciation", RootCode: "2"},
}

// chartService owns creation, hierarchy placement, code generation and tree
// materialization for general-ledger accounts.
type chartService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	journalRepo  portsrepo.JournalReader
}

// NewChartService creates the chart-of-accounts service.
func NewChartService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyReader, journalRepo portsrepo.JournalReader) portssvc.ChartSvcFacade {
	return &chartService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
		journalRepo:  journalRepo,
	}
}

var _ portssvc.ChartSvcFacade = (*chartService)(nil)

// defaultCurrency picks the bootstrap currency: LYD preferred, then USD, then
// the first active currency by code, then any currency at all. Returns nil
// without error when no currency exists.
func (s *chartService) defaultCurrency(ctx context.Context) (*domain.Currency, error) {
	for _, code := range []string{"LYD", "USD"} {
		currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
		if err == nil {
			return currency, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	currency, err := s.currencyRepo.FindFirstActiveCurrency(ctx)
	if err == nil {
		return currency, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	currency, err = s.currencyRepo.FindAnyCurrency(ctx)
	if err == nil {
		return currency, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return nil, err
}

func (s *chartService) EnsureInitialChart(ctx context.Context, actor string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	currency, err := s.defaultCurrency(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve default currency: %w", err)
	}
	if currency == nil {
		// Nothing can be bootstrapped before the first currency exists.
		logger.Debug("Chart bootstrap skipped, no currency registered yet")
		return nil
	}

	rootCount, err := s.accountRepo.CountRoots(ctx)
	if err != nil {
		return fmt.Errorf("failed to count root accounts: %w", err)
	}
	if rootCount >= int64(len(chartRoots)) {
		return nil
	}

	now := time.Now()
	for _, root := range chartRoots {
		_, err := s.accountRepo.FindAccountByCode(ctx, root.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to look up root account %s: %w", root.Code, err)
		}

		account := domain.Account{
			AccountID:    uuid.NewString(),
			Code:         root.Code,
			Name:         root.Name,
			Level:        1,
			RootType:     root.RootType,
			Nature:       domain.NatureForRootType(root.RootType),
			CurrencyCode: currency.CurrencyCode,
			IsSystem:     true,
			Balance:      decimal.Zero,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor,
				LastUpdatedAt: now,
				LastUpdatedBy: actor,
			},
		}
		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			// A concurrent bootstrap won the insert; the unique constraint on
			// code makes the loser's create a harmless duplicate.
			if errors.Is(err, apperrors.ErrDuplicate) {
				logger.Debug("Root account already created concurrently", slog.String("code", root.Code))
				continue
			}
			return fmt.Errorf("failed to create root account %s: %w", root.Code, err)
		}
		logger.Info("Root account created", slog.String("code", root.Code), slog.String("name", root.Name))
	}

	rootsByCode := make(map[string]*domain.Account, len(chartRoots))
	for _, code := range []string{"1", "2", "5"} {
		root, err := s.accountRepo.FindAccountByCode(ctx, code)
		if err != nil {
			return fmt.Errorf("failed to locate root account %s after bootstrap: %w", code, err)
		}
		rootsByCode[code] = root
	}

	for _, spec := range systemAccounts {
		parent := rootsByCode[spec.RootCode]
		if _, err := s.GetOrCreateSystemAccountBySlug(ctx, spec.Slug, spec.Name, parent.AccountID, currency.CurrencyCode, actor); err != nil {
			return fmt.Errorf("failed to bootstrap system account %s: %w", spec.Slug, err)
		}
	}
	return nil
}

func (s *chartService) GetOrCreateSystemAccountBySlug(ctx context.Context, slug, name, parentAccountID, currencyCode, actor string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountBySlug(ctx, slug)
	if err == nil {
		// Existing accounts are returned unchanged; bootstrap never corrects
		// name or parent in place.
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up system account %s: %w", slug, err)
	}

	created, err := s.createChildAccount(ctx, createChildParams{
		Name:            name,
		ParentAccountID: parentAccountID,
		CurrencyCode:    currencyCode,
		Slug:            slug,
		IsSystem:        true,
	}, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a concurrent get-or-create on the slug; fetch the winner.
			return s.accountRepo.FindAccountBySlug(ctx, slug)
		}
		return nil, err
	}
	return created, nil
}

func (s *chartService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor string) (*domain.Account, error) {
	if req.ParentAccountID == nil || *req.ParentAccountID == "" {
		return nil, ErrParentRequired
	}

	currencyCode := ""
	if req.CurrencyCode != nil {
		currencyCode = *req.CurrencyCode
	}

	return s.createChildAccount(ctx, createChildParams{
		Name:            req.Name,
		ParentAccountID: *req.ParentAccountID,
		CurrencyCode:    currencyCode,
		NatureOverride:  req.NatureOverride,
	}, actor)
}

// createChildParams carries everything needed to place one account under a parent.
type createChildParams struct {
	Name            string
	ParentAccountID string
	CurrencyCode    string
	Slug            string
	IsSystem        bool
	NatureOverride  *domain.Nature
}

func (s *chartService) createChildAccount(ctx context.Context, params createChildParams, actor string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	parent, err := s.accountRepo.FindAccountByID(ctx, params.ParentAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, fmt.Errorf("failed to find parent account %s: %w", params.ParentAccountID, err)
	}

	currencyCode, err := s.resolveCurrencyCode(ctx, params.CurrencyCode, parent)
	if err != nil {
		return nil, err
	}

	nature := parent.Nature
	if params.NatureOverride != nil {
		nature = *params.NatureOverride
	}

	// The sibling scan and the insert are not atomic, so a concurrent create
	// under the same parent can allocate the same segment. The unique
	// constraint on code turns that into ErrDuplicate and we retry with a
	// freshly recomputed segment.
	var lastErr error
	for attempt := 0; attempt < codeAllocationRetries; attempt++ {
		segment, err := s.nextChildSegment(ctx, parent.AccountID)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		account := domain.Account{
			AccountID:       uuid.NewString(),
			Code:            parent.Code + "." + strconv.Itoa(segment),
			Name:            params.Name,
			Level:           parent.Level + 1,
			ParentAccountID: parent.AccountID,
			RootType:        parent.RootType,
			Nature:          nature,
			CurrencyCode:    currencyCode,
			IsSystem:        params.IsSystem,
			Slug:            params.Slug,
			Balance:         decimal.Zero,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor,
				LastUpdatedAt: now,
				LastUpdatedBy: actor,
			},
		}

		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateSlug) {
				// A slug conflict cannot be resolved by recomputing the
				// segment; surface it so get-or-create can fetch the winner.
				return nil, err
			}
			if errors.Is(err, apperrors.ErrDuplicate) {
				lastErr = err
				logger.Warn("Account code collision, retrying segment allocation",
					slog.String("parent_id", parent.AccountID),
					slog.String("code", account.Code),
					slog.Int("attempt", attempt+1))
				continue
			}
			return nil, fmt.Errorf("failed to save account under parent %s: %w", parent.AccountID, err)
		}

		logger.Info("Account created",
			slog.String("account_id", account.AccountID),
			slog.String("code", account.Code))
		return &account, nil
	}

	return nil, fmt.Errorf("failed to allocate a unique code under parent %s: %w", parent.AccountID, lastErr)
}

// resolveCurrencyCode implements the currency fallback chain: explicit value,
// then the parent's currency, then the first active currency by code.
func (s *chartService) resolveCurrencyCode(ctx context.Context, explicit string, parent *domain.Account) (string, error) {
	if explicit != "" {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, explicit); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, explicit)
			}
			return "", err
		}
		return explicit, nil
	}

	if parent.CurrencyCode != "" {
		return parent.CurrencyCode, nil
	}

	currency, err := s.currencyRepo.FindFirstActiveCurrency(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", ErrNoCurrency
		}
		return "", err
	}
	return currency.CurrencyCode, nil
}

// nextChildSegment returns 1 + the highest numeric trailing segment among the
// parent's children. Gaps left by deleted siblings are never reused.
func (s *chartService) nextChildSegment(ctx context.Context, parentAccountID string) (int, error) {
	codes, err := s.accountRepo.ListChildCodes(ctx, parentAccountID)
	if err != nil {
		return 0, fmt.Errorf("failed to list child codes of %s: %w", parentAccountID, err)
	}

	maxSegment := 0
	for _, code := range codes {
		if seg := domain.LastCodeSegment(code); seg > maxSegment {
			maxSegment = seg
		}
	}
	return maxSegment + 1, nil
}

func (s *chartService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *chartService) GetSystemAccountBySlug(ctx context.Context, slug string) (*domain.Account, error) {
	return s.accountRepo.FindAccountBySlug(ctx, slug)
}

func (s *chartService) ListAccounts(ctx context.Context, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *chartService) BuildTree(ctx context.Context, rootIDs ...string) ([]domain.AccountNode, error) {
	accounts, err := s.accountRepo.ListAllAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for tree: %w", err)
	}

	byID := make(map[string]domain.Account, len(accounts))
	childrenOf := make(map[string][]domain.Account)
	for _, account := range accounts {
		byID[account.AccountID] = account
		childrenOf[account.ParentAccountID] = append(childrenOf[account.ParentAccountID], account)
	}

	var roots []domain.Account
	if len(rootIDs) == 0 {
		for _, account := range accounts {
			if account.Level == 1 {
				roots = append(roots, account)
			}
		}
	} else {
		for _, id := range rootIDs {
			account, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
			}
			roots = append(roots, account)
		}
	}

	nodes := make([]domain.AccountNode, len(roots))
	for i, root := range roots {
		nodes[i] = buildNode(root, childrenOf)
	}
	return nodes, nil
}

// buildNode assembles one subtree from the adjacency map. Children arrive in
// code order because the flat load is ordered by code.
func buildNode(account domain.Account, childrenOf map[string][]domain.Account) domain.AccountNode {
	children := childrenOf[account.AccountID]
	node := domain.AccountNode{
		Account:  account,
		Children: make([]domain.AccountNode, len(children)),
	}
	for i, child := range children {
		node.Children[i] = buildNode(child, childrenOf)
	}
	return node
}

func (s *chartService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Code != nil && *req.Code != account.Code {
		if !domain.ValidAccountCode(*req.Code) {
			return nil, ErrInvalidCode
		}
		existing, err := s.accountRepo.FindAccountByCode(ctx, *req.Code)
		if err == nil && existing.AccountID != accountID {
			return nil, fmt.Errorf("%w: code %s is already in use", apperrors.ErrDuplicate, *req.Code)
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		account.Code = *req.Code
	}
	if req.CurrencyCode != nil {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, *req.CurrencyCode); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, *req.CurrencyCode)
			}
			return nil, err
		}
		account.CurrencyCode = *req.CurrencyCode
	}
	if req.Nature != nil {
		account.Nature = *req.Nature
	}

	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = actor

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *chartService) DeleteAccount(ctx context.Context, accountID string, actor string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}

	childCount, err := s.accountRepo.CountChildren(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to count children of %s: %w", accountID, err)
	}
	if childCount > 0 {
		return ErrHasSubAccounts
	}

	refCount, err := s.journalRepo.CountTransactionsByAccountID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to count journal references of %s: %w", accountID, err)
	}
	if refCount > 0 {
		return ErrAccountReferenced
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return err
	}

	logger.Info("Account deleted", slog.String("account_id", accountID), slog.String("deleted_by", actor))
	return nil
}
