package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType is the closed set of voucher kinds the posting engine accepts.
type VoucherType string

const (
	Payment        VoucherType = "PAYMENT"
	Receipt        VoucherType = "RECEIPT"
	JournalEntry   VoucherType = "JOURNAL_ENTRY"
	OpeningBalance VoucherType = "OPENING_BALANCE"
)

// NumberPrefix returns the human-readable voucher number prefix for the kind.
func (t VoucherType) NumberPrefix() string {
	switch t {
	case Payment:
		return "PAY"
	case Receipt:
		return "RCV"
	case JournalEntry:
		return "JNL"
	case OpeningBalance:
		return "OPB"
	}
	return "VCH"
}

// EntrySide indicates whether a voucher line is a debit or a credit leg.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// VoucherStatus is the lifecycle state of a voucher. The engine only ever
// creates DRAFT vouchers; later transitions belong to the workflow component.
type VoucherStatus string

const (
	Draft     VoucherStatus = "DRAFT"
	Approved  VoucherStatus = "APPROVED"
	Cancelled VoucherStatus = "CANCELLED"
)

// BalanceEpsilon is the tolerance used when comparing debit and credit totals.
var BalanceEpsilon = decimal.NewFromFloat(0.01)

// VoucherLine is one posting leg of a voucher. A line is exactly one of debit
// or credit, its amount is strictly positive, and it carries both the
// transaction-currency amount and the converted base-currency amount.
type VoucherLine struct {
	LineID       string          `json:"lineID"` // Primary Key (UUID)
	VoucherID    string          `json:"voucherID"`
	AccountID    string          `json:"accountID"`
	Side         EntrySide       `json:"side"`
	Amount       decimal.Decimal `json:"amount"`       // Transaction currency
	BaseAmount   decimal.Decimal `json:"baseAmount"`   // Tenant base currency
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // Rate applied to this line
	Notes        string          `json:"notes,omitempty"`
	CostCenterID string          `json:"costCenterID,omitempty"`
	AuditFields
}

// Voucher is the immutable, balanced result of a successful posting.
type Voucher struct {
	VoucherID        string          `json:"voucherID"` // Primary Key (UUID)
	CompanyID        string          `json:"companyID"`
	VoucherNo        string          `json:"voucherNo"` // Sequential, e.g. PAY-2025-001
	Type             VoucherType     `json:"type"`
	Date             time.Time       `json:"date"`
	Description      string          `json:"description"`
	CurrencyCode     string          `json:"currencyCode"`     // Transaction currency
	BaseCurrencyCode string          `json:"baseCurrencyCode"` // Tenant base currency
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`     // Rate applied to the whole voucher
	Status           VoucherStatus   `json:"status"`
	Lines            []VoucherLine   `json:"lines,omitempty"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`  // Base currency
	TotalCredit      decimal.Decimal `json:"totalCredit"` // Base currency
	AuditFields
}

// ComputeTotals recalculates TotalDebit and TotalCredit from the lines'
// base-currency amounts.
func (v *Voucher) ComputeTotals() {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range v.Lines {
		if line.Side == Debit {
			totalDebit = totalDebit.Add(line.BaseAmount)
		} else {
			totalCredit = totalCredit.Add(line.BaseAmount)
		}
	}
	v.TotalDebit = totalDebit
	v.TotalCredit = totalCredit
}

// IsBalanced reports whether debits equal credits within BalanceEpsilon.
func (v *Voucher) IsBalanced() bool {
	return v.TotalDebit.Sub(v.TotalCredit).Abs().LessThanOrEqual(BalanceEpsilon)
}
