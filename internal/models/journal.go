package models

import "time"

// JournalStatus mirrors domain.JournalStatus for DB storage.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// Journal represents a row of the journals table.
type Journal struct {
	JournalID    string        `db:"journal_id"`
	JournalDate  time.Time     `db:"journal_date"`
	Description  string        `db:"description"`
	CurrencyCode string        `db:"currency_code"`
	Status       JournalStatus `db:"status"`
	AuditFields
}
