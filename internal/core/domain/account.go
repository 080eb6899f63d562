package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RootType defines which of the five fixed ledger roots an account descends from.
type RootType string

const (
	Asset     RootType = "ASSET"
	Liability RootType = "LIABILITY"
	Equity    RootType = "EQUITY"
	Revenue   RootType = "REVENUE"
	Expense   RootType = "EXPENSE"
)

// Nature indicates whether increases to an account are recorded as debits or credits.
type Nature string

const (
	NatureDebit  Nature = "DEBIT"
	NatureCredit Nature = "CREDIT"
)

// NatureForRootType returns the default nature implied by a root type.
// ASSET and EXPENSE accounts increase on the debit side, the rest on the credit side.
func NatureForRootType(rt RootType) Nature {
	switch rt {
	case Asset, Expense:
		return NatureDebit
	default:
		return NatureCredit
	}
}

// Account is a node in the chart of accounts.
//
// Code is a dot-delimited path of numeric segments ("1.2.3") that structurally
// encodes the parent chain: a child's code is always parent.Code + "." + segment.
// It is derived on creation, never supplied by callers.
type Account struct {
	AccountID       string          `json:"accountID"`       // Primary Key (UUID)
	Code            string          `json:"code"`            // Unique hierarchical code
	Name            string          `json:"name"`            // User-defined display name
	Level           int             `json:"level"`           // Depth in the tree, roots are 1
	ParentAccountID string          `json:"parentAccountID"` // Empty only for the five roots
	RootType        RootType        `json:"rootType"`        // Fixed at root creation, inherited by descendants
	Nature          Nature          `json:"nature"`          // Inherited from parent unless overridden
	CurrencyCode    string          `json:"currencyCode"`    // FK -> currencies.currency_code
	IsSystem        bool            `json:"isSystem"`        // Bootstrapped accounts end users should not casually remove
	Slug            string          `json:"slug"`            // Stable machine identifier for system accounts, empty otherwise
	Balance         decimal.Decimal `json:"balance"`         // Persisted account balance
	AuditFields
}

// AccountNode is an account plus its materialized children, produced by tree queries.
type AccountNode struct {
	Account
	Children []AccountNode `json:"children"`
}

// LastCodeSegment returns the final dot-delimited segment of code parsed as an
// integer. Unparsable or missing segments count as 0, so a manually edited
// code never breaks sibling allocation.
func LastCodeSegment(code string) int {
	idx := strings.LastIndex(code, ".")
	seg := code
	if idx >= 0 {
		seg = code[idx+1:]
	}
	n, err := strconv.Atoi(seg)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ValidAccountCode reports whether code consists solely of dot-separated
// positive integer segments.
func ValidAccountCode(code string) bool {
	if code == "" {
		return false
	}
	for _, seg := range strings.Split(code, ".") {
		n, err := strconv.Atoi(seg)
		if err != nil || n <= 0 {
			return false
		}
	}
	return true
}
