package services

import (
	"context"

	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	"github.com/goldenhorse/ghs_backend/internal/dto"
)

// CurrencySvcFacade defines operations for managing currencies
type CurrencySvcFacade interface {
	// CreateCurrency registers a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, actor string) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a currency by its 3-letter code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
