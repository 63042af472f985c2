package repositories

import (
	"context"
	"time"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
)

// VoucherListFilter narrows voucher listings. Zero values mean "no filter".
type VoucherListFilter struct {
	Type     domain.VoucherType
	Status   domain.VoucherStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// VoucherReader defines read operations for voucher data
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher header by its unique identifier.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// FindLinesByVoucherID retrieves all line items for a voucher.
	FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.VoucherLine, error)

	// ListVouchersByCompany retrieves a filtered, token-paginated list of
	// vouchers for a company, newest first.
	ListVouchersByCompany(ctx context.Context, companyID string, filter VoucherListFilter, limit int, nextToken *string) ([]domain.Voucher, *string, error)

	// ExistsByVoucherNo reports whether a voucher number is already taken
	// within a company.
	ExistsByVoucherNo(ctx context.Context, companyID, voucherNo string) (bool, error)

	// CountByCurrency counts vouchers referencing a currency on the header or
	// any line. Used by the currency disable guard.
	CountByCurrency(ctx context.Context, companyID, currencyCode string) (int, error)
}

// VoucherWriter defines write operations for voucher data
type VoucherWriter interface {
	// SaveVoucher persists a voucher and its lines atomically. This is the
	// single durable side effect of a posting.
	SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error

	// UpdateVoucherStatus applies a workflow status transition.
	UpdateVoucherStatus(ctx context.Context, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error
}

// VoucherRepositoryFacade combines all voucher repository interfaces
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}

// VoucherRepositoryWithTx extends VoucherRepositoryFacade with transaction capabilities
type VoucherRepositoryWithTx interface {
	VoucherRepositoryFacade
	TransactionManager
}
