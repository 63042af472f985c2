package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mosaicfin/ledger_backend/internal/apperrors"
	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portsrepo "github.com/mosaicfin/ledger_backend/internal/core/ports/repositories"
)

// PgxVoucherNumberRepository allocates voucher sequence values using pgxpool.
type PgxVoucherNumberRepository struct {
	BaseRepository
}

func newPgxVoucherNumberRepository(pool *pgxpool.Pool) portsrepo.VoucherNumberRepository {
	return &PgxVoucherNumberRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VoucherNumberRepository = (*PgxVoucherNumberRepository)(nil)

// NextSequence atomically increments and returns the counter for
// (companyID, voucherType, fiscalYear). The upsert takes a row lock, so
// concurrent callers serialize on the counter row and never observe the same
// value.
func (r *PgxVoucherNumberRepository) NextSequence(ctx context.Context, companyID string, voucherType domain.VoucherType, fiscalYear int) (int64, error) {
	query := `
		INSERT INTO voucher_sequences (company_id, voucher_type, fiscal_year, next_value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (company_id, voucher_type, fiscal_year)
		DO UPDATE SET next_value = voucher_sequences.next_value + 1
		RETURNING next_value;
	`
	var next int64
	err := r.Pool.QueryRow(ctx, query, companyID, string(voucherType), fiscalYear).Scan(&next)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate voucher sequence", err)
	}
	return next, nil
}
