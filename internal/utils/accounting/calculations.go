package accounting

import (
	"fmt"

	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the correct sign to a transaction amount based
// on the account's nature. Debits increase DEBIT-natured accounts and decrease
// CREDIT-natured ones; credits do the opposite.
func CalculateSignedAmount(txn domain.Transaction, nature domain.Nature) (decimal.Decimal, error) {
	signedAmount := txn.Amount
	isDebit := txn.TransactionType == domain.Debit

	switch nature {
	case domain.NatureDebit:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.NatureCredit:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account nature '%s' encountered for account ID %s", nature, txn.AccountID)
	}
	return signedAmount, nil
}

// ValidateJournalBalance checks that a journal's transactions form a valid
// double-entry posting: at least two lines, strictly positive amounts, and the
// sum of debits equal to the sum of credits.
func ValidateJournalBalance(transactions []domain.Transaction) error {
	if len(transactions) < 2 {
		return fmt.Errorf("journal must have at least two transaction entries")
	}

	zero := decimal.NewFromInt(0)
	debitsSum := zero
	creditsSum := zero

	for _, txn := range transactions {
		if txn.Amount.LessThanOrEqual(zero) {
			return fmt.Errorf("transaction amount must be positive for transaction ID %s", txn.TransactionID)
		}

		if txn.TransactionType == domain.Debit {
			debitsSum = debitsSum.Add(txn.Amount)
		} else {
			creditsSum = creditsSum.Add(txn.Amount)
		}
	}

	if !debitsSum.Equal(creditsSum) {
		return fmt.Errorf("journal entries do not balance: debits sum is %s and credits sum is %s",
			debitsSum.String(), creditsSum.String())
	}
	return nil
}
