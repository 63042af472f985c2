package models

// Account is a chart-of-accounts row.
type Account struct {
	AccountID    string `json:"accountID"` // Primary Key (UUID)
	CompanyID    string `json:"companyID"` // FK -> Company.companyID
	Name         string `json:"name"`
	AccountType  string `json:"accountType"`
	CurrencyCode string `json:"currencyCode"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
