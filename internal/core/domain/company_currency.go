package domain

import "time"

// CompanyCurrency is the per-tenant enable/disable state of a catalog currency.
// The (companyID, currencyCode) pair is unique. The tenant's base currency can
// never be disabled.
type CompanyCurrency struct {
	CompanyID    string     `json:"companyID"`
	CurrencyCode string     `json:"currencyCode"`
	IsEnabled    bool       `json:"isEnabled"`
	EnabledAt    time.Time  `json:"enabledAt"`
	DisabledAt   *time.Time `json:"disabledAt,omitempty"`
	AuditFields
}
