package models

import "time"

// Company is a tenant row.
type Company struct {
	CompanyID        string `json:"companyID"` // Primary Key (UUID)
	Name             string `json:"name"`
	BaseCurrencyCode string `json:"baseCurrencyCode"`
	IsActive         bool   `json:"isActive"`
	AuditFields
}

// CompanyCurrency is the per-tenant currency enablement row.
type CompanyCurrency struct {
	CompanyID    string     `json:"companyID"`    // Composite PK with CurrencyCode
	CurrencyCode string     `json:"currencyCode"` // FK -> Currency.currencyCode
	IsEnabled    bool       `json:"isEnabled"`
	EnabledAt    time.Time  `json:"enabledAt"`
	DisabledAt   *time.Time `json:"disabledAt,omitempty"`
	AuditFields
}
