package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mosaicfin/ledger_backend/internal/apperrors"
	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portsrepo "github.com/mosaicfin/ledger_backend/internal/core/ports/repositories"
	"github.com/mosaicfin/ledger_backend/internal/models"
	"github.com/mosaicfin/ledger_backend/internal/utils/mapping"
	"github.com/mosaicfin/ledger_backend/internal/utils/pagination"
)

// PgxVoucherRepository implements the voucher repository using pgxpool.
type PgxVoucherRepository struct {
	BaseRepository
}

func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryWithTx {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VoucherRepositoryWithTx = (*PgxVoucherRepository)(nil)

const voucherColumns = `
	voucher_id, company_id, voucher_no, voucher_type, voucher_date, description,
	currency_code, base_currency_code, exchange_rate, status, total_debit, total_credit,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.CompanyID,
		&m.VoucherNo,
		&m.VoucherType,
		&m.VoucherDate,
		&m.Description,
		&m.CurrencyCode,
		&m.BaseCurrencyCode,
		&m.ExchangeRate,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveVoucher persists a voucher header and its lines in a single database
// transaction. This is the only durable side effect of a posting.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelVoucher(voucher)
	headerQuery := `
		INSERT INTO vouchers (
			voucher_id, company_id, voucher_no, voucher_type, voucher_date, description,
			currency_code, base_currency_code, exchange_rate, status, total_debit, total_credit,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.VoucherID,
		m.CompanyID,
		m.VoucherNo,
		m.VoucherType,
		m.VoucherDate,
		m.Description,
		m.CurrencyCode,
		m.BaseCurrencyCode,
		m.ExchangeRate,
		m.Status,
		m.TotalDebit,
		m.TotalCredit,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert voucher "+m.VoucherID, err)
	}

	lineQuery := `
		INSERT INTO voucher_lines (
			line_id, voucher_id, account_id, side, amount, base_amount, exchange_rate,
			notes, cost_center_id,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, line := range lines {
		ml := mapping.ToModelVoucherLine(line)
		_, err = tx.Exec(ctx, lineQuery,
			ml.LineID,
			ml.VoucherID,
			ml.AccountID,
			ml.Side,
			ml.Amount,
			ml.BaseAmount,
			ml.ExchangeRate,
			ml.Notes,
			ml.CostCenterID,
			ml.CreatedAt,
			ml.CreatedBy,
			ml.LastUpdatedAt,
			ml.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert voucher line "+ml.LineID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindVoucherByID retrieves a voucher header by its unique identifier.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_id = $1;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("voucher " + voucherID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher "+voucherID, err)
	}
	voucher := mapping.ToDomainVoucher(m)
	return &voucher, nil
}

// FindLinesByVoucherID retrieves all line items for a voucher.
func (r *PgxVoucherRepository) FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.VoucherLine, error) {
	query := `
		SELECT line_id, voucher_id, account_id, side, amount, base_amount, exchange_rate,
		       notes, cost_center_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM voucher_lines
		WHERE voucher_id = $1
		ORDER BY created_at ASC, line_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, voucherID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find lines for voucher "+voucherID, err)
	}
	defer rows.Close()

	lines := make([]domain.VoucherLine, 0)
	for rows.Next() {
		var ml models.VoucherLine
		err := rows.Scan(
			&ml.LineID,
			&ml.VoucherID,
			&ml.AccountID,
			&ml.Side,
			&ml.Amount,
			&ml.BaseAmount,
			&ml.ExchangeRate,
			&ml.Notes,
			&ml.CostCenterID,
			&ml.CreatedAt,
			&ml.CreatedBy,
			&ml.LastUpdatedAt,
			&ml.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher line row", err)
		}
		lines = append(lines, mapping.ToDomainVoucherLine(ml))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate voucher line rows", err)
	}
	return lines, nil
}

// ListVouchersByCompany retrieves a filtered, token-paginated page of vouchers
// for a company, newest first. The returned token resumes after the last row
// of the page.
func (r *PgxVoucherRepository) ListVouchersByCompany(ctx context.Context, companyID string, filter portsrepo.VoucherListFilter, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + voucherColumns + ` FROM vouchers WHERE company_id = $1`)
	args := []interface{}{companyID}
	argIdx := 2

	if filter.Type != "" {
		sb.WriteString(` AND voucher_type = $` + strconv.Itoa(argIdx))
		args = append(args, string(filter.Type))
		argIdx++
	}
	if filter.Status != "" {
		sb.WriteString(` AND status = $` + strconv.Itoa(argIdx))
		args = append(args, string(filter.Status))
		argIdx++
	}
	if filter.DateFrom != nil {
		sb.WriteString(` AND voucher_date >= $` + strconv.Itoa(argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		sb.WriteString(` AND voucher_date <= $` + strconv.Itoa(argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}
	if nextToken != nil && *nextToken != "" {
		voucherDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid pagination token")
		}
		sb.WriteString(` AND (voucher_date, created_at) < ($` + strconv.Itoa(argIdx) + `, $` + strconv.Itoa(argIdx+1) + `)`)
		args = append(args, voucherDate, createdAt)
		argIdx += 2
	}

	// Fetch one extra row to know whether another page exists.
	sb.WriteString(` ORDER BY voucher_date DESC, created_at DESC LIMIT $` + strconv.Itoa(argIdx) + `;`)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list vouchers", err)
	}
	defer rows.Close()

	vouchers := make([]domain.Voucher, 0, limit)
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan voucher row", err)
		}
		vouchers = append(vouchers, mapping.ToDomainVoucher(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate voucher rows", err)
	}

	var newToken *string
	if len(vouchers) > limit {
		vouchers = vouchers[:limit]
		last := vouchers[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		newToken = &token
	}
	return vouchers, newToken, nil
}

// ExistsByVoucherNo reports whether a voucher number is already taken within a
// company.
func (r *PgxVoucherRepository) ExistsByVoucherNo(ctx context.Context, companyID, voucherNo string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM vouchers WHERE company_id = $1 AND voucher_no = $2);`
	var exists bool
	err := r.Pool.QueryRow(ctx, query, companyID, voucherNo).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check voucher number "+voucherNo, err)
	}
	return exists, nil
}

// CountByCurrency counts vouchers referencing a currency on the header.
// Lines carry the header currency, so a header check covers both.
func (r *PgxVoucherRepository) CountByCurrency(ctx context.Context, companyID, currencyCode string) (int, error) {
	query := `SELECT COUNT(*) FROM vouchers WHERE company_id = $1 AND currency_code = $2;`
	var count int
	err := r.Pool.QueryRow(ctx, query, companyID, strings.ToUpper(currencyCode)).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count vouchers by currency", err)
	}
	return count, nil
}

// UpdateVoucherStatus applies a workflow status transition.
func (r *PgxVoucherRepository) UpdateVoucherStatus(ctx context.Context, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE vouchers
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE voucher_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, voucherID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of voucher "+voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + voucherID + " not found")
	}
	return nil
}
