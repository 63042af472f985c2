package domain

// Company is a tenant. Every voucher, rate and account belongs to exactly one
// company; there is no cross-tenant visibility.
type Company struct {
	CompanyID        string `json:"companyID"` // Primary Key (UUID)
	Name             string `json:"name"`
	BaseCurrencyCode string `json:"baseCurrencyCode"` // Accounting/reporting currency
	IsActive         bool   `json:"isActive"`
	AuditFields
}
