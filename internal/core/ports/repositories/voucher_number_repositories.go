package repositories

import (
	"context"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
)

// VoucherNumberRepository allocates sequence values for voucher numbering.
type VoucherNumberRepository interface {
	// NextSequence atomically increments and returns the counter for
	// (companyID, voucherType, fiscalYear). The allocation is linearizable:
	// concurrent callers never observe the same value.
	NextSequence(ctx context.Context, companyID string, voucherType domain.VoucherType, fiscalYear int) (int64, error)
}
