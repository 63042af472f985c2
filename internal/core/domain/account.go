package domain

// AccountType classifies an account in the chart of accounts.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is a chart-of-accounts entry. Account management itself lives
// outside the posting engine; the engine only reads accounts to validate
// voucher lines and to guard the currency-disable path.
type Account struct {
	AccountID    string      `json:"accountID"` // Primary Key (UUID)
	CompanyID    string      `json:"companyID"`
	Name         string      `json:"name"`
	AccountType  AccountType `json:"accountType"`
	CurrencyCode string      `json:"currencyCode"`
	IsActive     bool        `json:"isActive"`
	AuditFields
}
