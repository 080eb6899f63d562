package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterFixedAssetRequest creates a per-asset ledger sub-account under the
// fixed assets system account.
type RegisterFixedAssetRequest struct {
	Name         string  `json:"name" binding:"required"`
	CurrencyCode *string `json:"currencyCode" binding:"omitempty,len=3,uppercase"`
}

// RecordDepreciationRequest posts a depreciation journal for the period.
type RecordDepreciationRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   time.Time       `json:"date"`
	Memo   string          `json:"memo"`
}

// RecordEmployeeAdvanceRequest posts an advance to an employee's ledger account,
// creating the per-employee sub-account on first use.
type RecordEmployeeAdvanceRequest struct {
	EmployeeRef  string          `json:"employeeRef" binding:"required"`
	EmployeeName string          `json:"employeeName" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Date         time.Time       `json:"date"`
}

// PostingResponse returns the journal created by a posting shortcut together
// with the ledger account it targeted.
type PostingResponse struct {
	Journal JournalResponse  `json:"journal"`
	Account *AccountResponse `json:"account,omitempty"`
}
