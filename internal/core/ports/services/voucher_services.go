package services

import (
	"context"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	"github.com/mosaicfin/ledger_backend/internal/dto"
)

// VoucherSvcFacade defines the posting operations, one per voucher kind, plus
// the tenant-scoped reads.
type VoucherSvcFacade interface {
	CreatePaymentVoucher(ctx context.Context, companyID string, req dto.CreatePaymentVoucherRequest, userID string) (*domain.Voucher, error)
	CreateReceiptVoucher(ctx context.Context, companyID string, req dto.CreateReceiptVoucherRequest, userID string) (*domain.Voucher, error)
	CreateJournalVoucher(ctx context.Context, companyID string, req dto.CreateJournalVoucherRequest, userID string) (*domain.Voucher, error)
	CreateOpeningBalanceVoucher(ctx context.Context, companyID string, req dto.CreateOpeningBalanceRequest, userID string) (*domain.Voucher, error)

	GetVoucherByID(ctx context.Context, companyID, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)

	// UpdateVoucherStatus records a status transition decided elsewhere. The
	// engine stores the new status; it does not enforce workflow rules.
	UpdateVoucherStatus(ctx context.Context, companyID, voucherID string, status domain.VoucherStatus, userID string) error
}

// VoucherNumberSvcFacade produces sequential human-readable voucher numbers.
type VoucherNumberSvcFacade interface {
	// NextVoucherNumber returns the next number for the kind within the fiscal
	// year of the given date, e.g. PAY-2025-001. Allocation is linearizable per
	// (company, kind, year).
	NextVoucherNumber(ctx context.Context, companyID string, voucherType domain.VoucherType, fiscalYear int) (string, error)
}
