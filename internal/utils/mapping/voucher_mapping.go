package mapping

import (
	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	"github.com/mosaicfin/ledger_backend/internal/models"
)

// ToModelVoucher converts a domain Voucher header to its model row
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:        d.VoucherID,
		CompanyID:        d.CompanyID,
		VoucherNo:        d.VoucherNo,
		VoucherType:      string(d.Type),
		VoucherDate:      d.Date,
		Description:      d.Description,
		CurrencyCode:     d.CurrencyCode,
		BaseCurrencyCode: d.BaseCurrencyCode,
		ExchangeRate:     d.ExchangeRate,
		Status:           string(d.Status),
		TotalDebit:       d.TotalDebit,
		TotalCredit:      d.TotalCredit,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher row to a domain Voucher header
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:        m.VoucherID,
		CompanyID:        m.CompanyID,
		VoucherNo:        m.VoucherNo,
		Type:             domain.VoucherType(m.VoucherType),
		Date:             m.VoucherDate,
		Description:      m.Description,
		CurrencyCode:     m.CurrencyCode,
		BaseCurrencyCode: m.BaseCurrencyCode,
		ExchangeRate:     m.ExchangeRate,
		Status:           domain.VoucherStatus(m.Status),
		TotalDebit:       m.TotalDebit,
		TotalCredit:      m.TotalCredit,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVoucherLine converts a domain VoucherLine to its model row
func ToModelVoucherLine(d domain.VoucherLine) models.VoucherLine {
	return models.VoucherLine{
		LineID:       d.LineID,
		VoucherID:    d.VoucherID,
		AccountID:    d.AccountID,
		Side:         string(d.Side),
		Amount:       d.Amount,
		BaseAmount:   d.BaseAmount,
		ExchangeRate: d.ExchangeRate,
		Notes:        d.Notes,
		CostCenterID: d.CostCenterID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucherLine converts a model VoucherLine row to its domain form
func ToDomainVoucherLine(m models.VoucherLine) domain.VoucherLine {
	return domain.VoucherLine{
		LineID:       m.LineID,
		VoucherID:    m.VoucherID,
		AccountID:    m.AccountID,
		Side:         domain.EntrySide(m.Side),
		Amount:       m.Amount,
		BaseAmount:   m.BaseAmount,
		ExchangeRate: m.ExchangeRate,
		Notes:        m.Notes,
		CostCenterID: m.CostCenterID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
