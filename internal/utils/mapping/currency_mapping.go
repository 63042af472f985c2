package mapping

import (
	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	"github.com/mosaicfin/ledger_backend/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode:  d.CurrencyCode,
		Name:          d.Name,
		Symbol:        d.Symbol,
		DecimalPlaces: d.DecimalPlaces,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode:  m.CurrencyCode,
		Name:          m.Name,
		Symbol:        m.Symbol,
		DecimalPlaces: m.DecimalPlaces,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCompanyCurrency converts a domain CompanyCurrency to its model row
func ToModelCompanyCurrency(d domain.CompanyCurrency) models.CompanyCurrency {
	return models.CompanyCurrency{
		CompanyID:    d.CompanyID,
		CurrencyCode: d.CurrencyCode,
		IsEnabled:    d.IsEnabled,
		EnabledAt:    d.EnabledAt,
		DisabledAt:   d.DisabledAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompanyCurrency converts a model CompanyCurrency row to its domain form
func ToDomainCompanyCurrency(m models.CompanyCurrency) domain.CompanyCurrency {
	return domain.CompanyCurrency{
		CompanyID:    m.CompanyID,
		CurrencyCode: m.CurrencyCode,
		IsEnabled:    m.IsEnabled,
		EnabledAt:    m.EnabledAt,
		DisabledAt:   m.DisabledAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompany converts a model Company row to its domain form
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:        m.CompanyID,
		Name:             m.Name,
		BaseCurrencyCode: m.BaseCurrencyCode,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccount converts a model Account row to its domain form
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		AccountType:  domain.AccountType(m.AccountType),
		CurrencyCode: m.CurrencyCode,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
