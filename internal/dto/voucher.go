package dto

import (
	"time"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentVoucherRequest captures a payment intent: money leaves a cash
// account into an expense account.
type CreatePaymentVoucherRequest struct {
	Date             time.Time       `json:"date" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	CashAccountID    string          `json:"cashAccountID" binding:"required"`
	ExpenseAccountID string          `json:"expenseAccountID" binding:"required"`
	Description      string          `json:"description" binding:"required"`
	CurrencyCode     string          `json:"currencyCode,omitempty" binding:"omitempty,len=3,uppercase"`
	CostCenterID     string          `json:"costCenterID,omitempty"`
}

// CreateReceiptVoucherRequest captures a receipt intent: money enters a cash
// account from a revenue account.
type CreateReceiptVoucherRequest struct {
	Date             time.Time       `json:"date" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	CashAccountID    string          `json:"cashAccountID" binding:"required"`
	RevenueAccountID string          `json:"revenueAccountID" binding:"required"`
	Description      string          `json:"description" binding:"required"`
	CurrencyCode     string          `json:"currencyCode,omitempty" binding:"omitempty,len=3,uppercase"`
	CostCenterID     string          `json:"costCenterID,omitempty"`
}

// VoucherLineInput is one user-supplied leg of a journal entry or opening
// balance. Exactly one of Debit or Credit must be positive.
type VoucherLineInput struct {
	AccountID    string          `json:"accountID" binding:"required"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Notes        string          `json:"notes,omitempty"`
	CostCenterID string          `json:"costCenterID,omitempty"`
}

// CreateJournalVoucherRequest captures a free-form journal entry.
type CreateJournalVoucherRequest struct {
	Date         time.Time          `json:"date" binding:"required"`
	Description  string             `json:"description" binding:"required"`
	CurrencyCode string             `json:"currencyCode,omitempty" binding:"omitempty,len=3,uppercase"`
	Lines        []VoucherLineInput `json:"lines" binding:"required"`
}

// CreateOpeningBalanceRequest captures period-zero balances: the accounting
// equation (assets = liabilities + equity) at a point in time.
type CreateOpeningBalanceRequest struct {
	Date         time.Time          `json:"date" binding:"required"`
	Description  string             `json:"description" binding:"required"`
	CurrencyCode string             `json:"currencyCode,omitempty" binding:"omitempty,len=3,uppercase"`
	Lines        []VoucherLineInput `json:"lines" binding:"required"`
}

// UpdateVoucherStatusRequest records a workflow decision made outside the engine.
type UpdateVoucherStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT APPROVED CANCELLED"`
}

// ListVouchersParams holds filters and pagination for voucher listings.
type ListVouchersParams struct {
	Type      string     `form:"type"`
	Status    string     `form:"status"`
	DateFrom  *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo    *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Limit     int        `form:"limit"`
	NextToken *string    `form:"nextToken"`
}

// VoucherLineResponse is one posting leg in an API response.
type VoucherLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	Side         string          `json:"side"`
	Amount       decimal.Decimal `json:"amount"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Notes        string          `json:"notes,omitempty"`
	CostCenterID string          `json:"costCenterID,omitempty"`
}

// VoucherResponse is the posted voucher as returned to API callers.
type VoucherResponse struct {
	VoucherID        string                `json:"voucherID"`
	CompanyID        string                `json:"companyID"`
	VoucherNo        string                `json:"voucherNo"`
	Type             string                `json:"type"`
	Date             time.Time             `json:"date"`
	Description      string                `json:"description"`
	CurrencyCode     string                `json:"currencyCode"`
	BaseCurrencyCode string                `json:"baseCurrencyCode"`
	ExchangeRate     decimal.Decimal       `json:"exchangeRate"`
	Status           string                `json:"status"`
	Lines            []VoucherLineResponse `json:"lines,omitempty"`
	TotalDebit       decimal.Decimal       `json:"totalDebit"`
	TotalCredit      decimal.Decimal       `json:"totalCredit"`
	IsBalanced       bool                  `json:"isBalanced"`
	CreatedAt        time.Time             `json:"createdAt"`
	CreatedBy        string                `json:"createdBy"`
}

// ListVouchersResponse wraps a voucher page with its continuation token.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToVoucherLineResponse converts a domain.VoucherLine to its response DTO.
func ToVoucherLineResponse(line *domain.VoucherLine) VoucherLineResponse {
	return VoucherLineResponse{
		LineID:       line.LineID,
		AccountID:    line.AccountID,
		Side:         string(line.Side),
		Amount:       line.Amount,
		BaseAmount:   line.BaseAmount,
		ExchangeRate: line.ExchangeRate,
		Notes:        line.Notes,
		CostCenterID: line.CostCenterID,
	}
}

// ToVoucherResponse converts a domain.Voucher to its response DTO.
func ToVoucherResponse(voucher *domain.Voucher) VoucherResponse {
	lines := make([]VoucherLineResponse, len(voucher.Lines))
	for i := range voucher.Lines {
		lines[i] = ToVoucherLineResponse(&voucher.Lines[i])
	}
	return VoucherResponse{
		VoucherID:        voucher.VoucherID,
		CompanyID:        voucher.CompanyID,
		VoucherNo:        voucher.VoucherNo,
		Type:             string(voucher.Type),
		Date:             voucher.Date,
		Description:      voucher.Description,
		CurrencyCode:     voucher.CurrencyCode,
		BaseCurrencyCode: voucher.BaseCurrencyCode,
		ExchangeRate:     voucher.ExchangeRate,
		Status:           string(voucher.Status),
		Lines:            lines,
		TotalDebit:       voucher.TotalDebit,
		TotalCredit:      voucher.TotalCredit,
		IsBalanced:       voucher.IsBalanced(),
		CreatedAt:        voucher.CreatedAt,
		CreatedBy:        voucher.CreatedBy,
	}
}
