package dto

import (
	"time"

	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Code, level, root type and nature are derived from the parent, never supplied.
type CreateAccountRequest struct {
	Name            string         `json:"name" binding:"required"`
	ParentAccountID *string        `json:"parentAccountID"` // Required by the service; pointer keeps the error message ours
	CurrencyCode    *string        `json:"currencyCode" binding:"omitempty,len=3,uppercase"`
	NatureOverride  *domain.Nature `json:"natureOverride" binding:"omitempty,oneof=DEBIT CREDIT"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Parent and root type are immutable through this path to preserve hierarchy integrity.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name         *string        `json:"name"`
	Code         *string        `json:"code" binding:"omitempty,acctcode"`
	CurrencyCode *string        `json:"currencyCode" binding:"omitempty,len=3,uppercase"`
	Nature       *domain.Nature `json:"nature" binding:"omitempty,oneof=DEBIT CREDIT"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string          `json:"accountID"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Level           int             `json:"level"`
	ParentAccountID string          `json:"parentAccountID"` // Empty string for roots
	RootType        domain.RootType `json:"rootType"`
	Nature          domain.Nature   `json:"nature"`
	CurrencyCode    string          `json:"currencyCode"`
	IsSystem        bool            `json:"isSystem"`
	Slug            string          `json:"slug,omitempty"`
	Balance         decimal.Decimal `json:"balance"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

// AccountNodeResponse is an account with its children, for tree queries.
type AccountNodeResponse struct {
	AccountResponse
	Children []AccountNodeResponse `json:"children"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		Level:           acc.Level,
		ParentAccountID: acc.ParentAccountID,
		RootType:        acc.RootType,
		Nature:          acc.Nature,
		CurrencyCode:    acc.CurrencyCode,
		IsSystem:        acc.IsSystem,
		Slug:            acc.Slug,
		Balance:         acc.Balance,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToAccountNodeResponse converts a domain.AccountNode tree to its DTO form.
func ToAccountNodeResponse(node domain.AccountNode) AccountNodeResponse {
	children := make([]AccountNodeResponse, len(node.Children))
	for i, child := range node.Children {
		children[i] = ToAccountNodeResponse(child)
	}
	return AccountNodeResponse{
		AccountResponse: ToAccountResponse(&node.Account),
		Children:        children,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Flat  bool   `form:"flat"`
	Query string `form:"query"`
	Level int    `form:"level"`
}

// ListAccountsResponse wraps the flat list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountTreeResponse wraps the materialized tree.
type AccountTreeResponse struct {
	Roots []AccountNodeResponse `json:"roots"`
}
