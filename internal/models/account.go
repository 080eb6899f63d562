package models

import (
	"github.com/shopspring/decimal"
)

// RootType mirrors domain.RootType for DB storage.
type RootType string

const (
	Asset     RootType = "ASSET"
	Liability RootType = "LIABILITY"
	Equity    RootType = "EQUITY"
	Revenue   RootType = "REVENUE"
	Expense   RootType = "EXPENSE"
)

// Nature mirrors domain.Nature for DB storage.
type Nature string

const (
	NatureDebit  Nature = "DEBIT"
	NatureCredit Nature = "CREDIT"
)

// Account represents a row of the accounts table.
// Note: ParentAccountID and Slug use string for nullable columns; empty means NULL.
type Account struct {
	AccountID       string          `db:"account_id"`
	Code            string          `db:"code"` // UNIQUE
	Name            string          `db:"name"`
	Level           int             `db:"level"`
	ParentAccountID string          `db:"parent_account_id"` // Nullable
	RootType        RootType        `db:"root_type"`
	Nature          Nature          `db:"nature"`
	CurrencyCode    string          `db:"currency_code"`
	IsSystem        bool            `db:"is_system"`
	Slug            string          `db:"slug"` // Nullable, UNIQUE when set
	Balance         decimal.Decimal `db:"balance"`
	AuditFields
}
