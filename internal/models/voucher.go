package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is a posted voucher header row.
type Voucher struct {
	VoucherID        string          `json:"voucherID"` // Primary Key (UUID)
	CompanyID        string          `json:"companyID"` // FK -> Company.companyID
	VoucherNo        string          `json:"voucherNo"` // Unique per company
	VoucherType      string          `json:"voucherType"`
	VoucherDate      time.Time       `json:"voucherDate"`
	Description      string          `json:"description"`
	CurrencyCode     string          `json:"currencyCode"`
	BaseCurrencyCode string          `json:"baseCurrencyCode"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	Status           string          `json:"status"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	AuditFields
}

// VoucherLine is one posting leg row.
type VoucherLine struct {
	LineID       string          `json:"lineID"`    // Primary Key (UUID)
	VoucherID    string          `json:"voucherID"` // FK -> Voucher.voucherID
	AccountID    string          `json:"accountID"` // FK -> Account.accountID
	Side         string          `json:"side"`      // DEBIT or CREDIT
	Amount       decimal.Decimal `json:"amount"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Notes        string          `json:"notes"`
	CostCenterID string          `json:"costCenterID"`
	AuditFields
}
