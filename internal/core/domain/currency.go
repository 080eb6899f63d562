package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "LYD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "Libyan Dinar"
	IsActive     bool   `json:"isActive"`     // Inactive currencies are skipped by default resolution
	AuditFields
}
