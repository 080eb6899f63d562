package services

import (
	"context"

	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	"github.com/goldenhorse/ghs_backend/internal/dto"
)

// PostingSvcFacade builds the balanced journal entries the business records
// against system accounts: depreciation runs, employee advances, and the
// per-asset and per-employee ledger sub-accounts they post to.
type PostingSvcFacade interface {
	// RegisterFixedAsset creates a per-asset sub-account under the fixed
	// assets system account.
	RegisterFixedAsset(ctx context.Context, req dto.RegisterFixedAssetRequest, actor string) (*domain.Account, error)

	// RecordDepreciation posts a balanced journal debiting depreciation
	// expense and crediting accumulated depreciation.
	RecordDepreciation(ctx context.Context, req dto.RecordDepreciationRequest, actor string) (*domain.Journal, []domain.Transaction, error)

	// RecordEmployeeAdvance ensures the employee's ledger sub-account exists
	// and posts the advance against employees payable.
	RecordEmployeeAdvance(ctx context.Context, req dto.RecordEmployeeAdvanceRequest, actor string) (*domain.Account, *domain.Journal, []domain.Transaction, error)
}
