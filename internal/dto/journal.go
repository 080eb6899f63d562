package dto

import (
	"time"

	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is one line of a journal being created.
type CreateTransactionRequest struct {
	AccountID       string                 `json:"accountID" binding:"required"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=DEBIT CREDIT"`
	Notes           string                 `json:"notes"`
}

// CreateJournalRequest defines the data needed to post a balanced journal.
type CreateJournalRequest struct {
	JournalDate  time.Time                  `json:"journalDate"`
	Description  string                     `json:"description" binding:"required"`
	CurrencyCode string                     `json:"currencyCode" binding:"required,len=3,uppercase"`
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required,min=2,dive"`
}

// TransactionResponse defines the data returned for a journal line.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	JournalID       string                 `json:"journalID"`
	AccountID       string                 `json:"accountID"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	CurrencyCode    string                 `json:"currencyCode"`
	Notes           string                 `json:"notes"`
}

// JournalResponse defines the data returned for a journal with its lines.
type JournalResponse struct {
	JournalID    string                `json:"journalID"`
	JournalDate  time.Time             `json:"journalDate"`
	Description  string                `json:"description"`
	CurrencyCode string                `json:"currencyCode"`
	Status       domain.JournalStatus  `json:"status"`
	Transactions []TransactionResponse `json:"transactions"`
	CreatedAt    time.Time             `json:"createdAt"`
	CreatedBy    string                `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO form.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		JournalID:       txn.JournalID,
		AccountID:       txn.AccountID,
		Amount:          txn.Amount,
		TransactionType: txn.TransactionType,
		CurrencyCode:    txn.CurrencyCode,
		Notes:           txn.Notes,
	}
}

// ToJournalResponse converts a domain.Journal plus its lines to the DTO form.
func ToJournalResponse(journal *domain.Journal, transactions []domain.Transaction) JournalResponse {
	lines := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		lines[i] = ToTransactionResponse(txn)
	}
	return JournalResponse{
		JournalID:    journal.JournalID,
		JournalDate:  journal.JournalDate,
		Description:  journal.Description,
		CurrencyCode: journal.CurrencyCode,
		Status:       journal.Status,
		Transactions: lines,
		CreatedAt:    journal.CreatedAt,
		CreatedBy:    journal.CreatedBy,
	}
}
