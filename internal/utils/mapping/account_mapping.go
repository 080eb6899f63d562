package mapping

import (
	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	"github.com/goldenhorse/ghs_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		Code:            d.Code,
		Name:            d.Name,
		Level:           d.Level,
		ParentAccountID: d.ParentAccountID,
		RootType:        models.RootType(d.RootType),
		Nature:          models.Nature(d.Nature),
		CurrencyCode:    d.CurrencyCode,
		IsSystem:        d.IsSystem,
		Slug:            d.Slug,
		Balance:         d.Balance,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		Code:            m.Code,
		Name:            m.Name,
		Level:           m.Level,
		ParentAccountID: m.ParentAccountID,
		RootType:        domain.RootType(m.RootType),
		Nature:          domain.Nature(m.Nature),
		CurrencyCode:    m.CurrencyCode,
		IsSystem:        m.IsSystem,
		Slug:            m.Slug,
		Balance:         m.Balance,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

