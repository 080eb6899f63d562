package models

import "github.com/shopspring/decimal"

// TransactionType mirrors domain.TransactionType for DB storage.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction represents a row of the transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	JournalID       string          `db:"journal_id"`
	AccountID       string          `db:"account_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType TransactionType `db:"transaction_type"`
	CurrencyCode    string          `db:"currency_code"`
	Notes           string          `db:"notes"`
	AuditFields
}
