package pgsql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mosaicfin/ledger_backend/internal/apperrors"
	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portsrepo "github.com/mosaicfin/ledger_backend/internal/core/ports/repositories"
	"github.com/mosaicfin/ledger_backend/internal/models"
	"github.com/mosaicfin/ledger_backend/internal/utils/mapping"
)

// PgxCompanyCurrencyRepository implements the per-tenant currency repository using pgxpool.
type PgxCompanyCurrencyRepository struct {
	BaseRepository
}

func newPgxCompanyCurrencyRepository(pool *pgxpool.Pool) portsrepo.CompanyCurrencyRepositoryFacade {
	return &PgxCompanyCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyCurrencyRepositoryFacade = (*PgxCompanyCurrencyRepository)(nil)

const companyCurrencyColumns = `
	company_id, currency_code, is_enabled, enabled_at, disabled_at,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanCompanyCurrency(row pgx.Row) (models.CompanyCurrency, error) {
	var m models.CompanyCurrency
	err := row.Scan(
		&m.CompanyID,
		&m.CurrencyCode,
		&m.IsEnabled,
		&m.EnabledAt,
		&m.DisabledAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindCompanyCurrency retrieves the enable state for a (company, currency) pair.
func (r *PgxCompanyCurrencyRepository) FindCompanyCurrency(ctx context.Context, companyID, currencyCode string) (*domain.CompanyCurrency, error) {
	query := `SELECT ` + companyCurrencyColumns + ` FROM company_currencies WHERE company_id = $1 AND currency_code = $2;`
	m, err := scanCompanyCurrency(r.Pool.QueryRow(ctx, query, companyID, strings.ToUpper(currencyCode)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + currencyCode + " is not configured for company " + companyID)
		}
		return nil, apperrors.NewAppError(500, "failed to find company currency "+currencyCode, err)
	}
	cc := mapping.ToDomainCompanyCurrency(m)
	return &cc, nil
}

// ListCompanyCurrencies retrieves all currency records for a company.
func (r *PgxCompanyCurrencyRepository) ListCompanyCurrencies(ctx context.Context, companyID string) ([]domain.CompanyCurrency, error) {
	query := `SELECT ` + companyCurrencyColumns + ` FROM company_currencies WHERE company_id = $1 ORDER BY currency_code ASC;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list company currencies", err)
	}
	defer rows.Close()

	result := make([]domain.CompanyCurrency, 0)
	for rows.Next() {
		m, err := scanCompanyCurrency(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan company currency row", err)
		}
		result = append(result, mapping.ToDomainCompanyCurrency(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate company currency rows", err)
	}
	return result, nil
}

// EnableCurrencyWithRate enables a currency for a company and records its
// initial rate observation in a single database transaction. A partially
// enabled currency (registry row without a rate, or the reverse) must never
// be observable, so both writes commit or neither does. Enabling the base
// currency passes a nil rate; exchange_rates rejects same-currency pairs.
func (r *PgxCompanyCurrencyRepository) EnableCurrencyWithRate(ctx context.Context, companyCurrency domain.CompanyCurrency, initialRate *domain.ExchangeRate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if initialRate != nil {
		mRate := mapping.ToModelExchangeRate(*initialRate)
		mRate.FromCurrencyCode = strings.ToUpper(mRate.FromCurrencyCode)
		mRate.ToCurrencyCode = strings.ToUpper(mRate.ToCurrencyCode)

		rateQuery := `
			INSERT INTO exchange_rates (
				exchange_rate_id, company_id, from_currency_code, to_currency_code,
				rate, date_effective, origin,
				created_at, created_by, last_updated_at, last_updated_by
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`
		_, err = tx.Exec(ctx, rateQuery,
			mRate.ExchangeRateID,
			mRate.CompanyID,
			mRate.FromCurrencyCode,
			mRate.ToCurrencyCode,
			mRate.Rate,
			mRate.DateEffective,
			mRate.Origin,
			mRate.CreatedAt,
			mRate.CreatedBy,
			mRate.LastUpdatedAt,
			mRate.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert initial rate for "+mRate.FromCurrencyCode, err)
		}
	}

	mCC := mapping.ToModelCompanyCurrency(companyCurrency)
	mCC.CurrencyCode = strings.ToUpper(mCC.CurrencyCode)

	// Re-enabling a previously disabled currency reuses the existing row.
	ccQuery := `
		INSERT INTO company_currencies (
			company_id, currency_code, is_enabled, enabled_at, disabled_at,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (company_id, currency_code) DO UPDATE SET
			is_enabled = EXCLUDED.is_enabled,
			enabled_at = EXCLUDED.enabled_at,
			disabled_at = NULL,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = tx.Exec(ctx, ccQuery,
		mCC.CompanyID,
		mCC.CurrencyCode,
		mCC.IsEnabled,
		mCC.EnabledAt,
		mCC.DisabledAt,
		mCC.CreatedAt,
		mCC.CreatedBy,
		mCC.LastUpdatedAt,
		mCC.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to enable currency "+mCC.CurrencyCode, err)
	}

	return r.Commit(ctx, tx)
}

// DisableCompanyCurrency soft-disables a currency for a company.
func (r *PgxCompanyCurrencyRepository) DisableCompanyCurrency(ctx context.Context, companyID, currencyCode string, disabledBy string, disabledAt time.Time) error {
	query := `
		UPDATE company_currencies
		SET is_enabled = FALSE,
		    disabled_at = $3,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE company_id = $1 AND currency_code = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, companyID, strings.ToUpper(currencyCode), disabledAt, disabledBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to disable currency "+currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency " + currencyCode + " is not configured for company " + companyID)
	}
	return nil
}
