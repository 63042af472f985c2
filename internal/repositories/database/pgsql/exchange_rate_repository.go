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
	"github.com/mosaicfin/ledger_backend/internal/utils/accounting"
	"github.com/mosaicfin/ledger_backend/internal/utils/mapping"
)

// PgxExchangeRateRepository implements the append-only rate store using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `
	exchange_rate_id, company_id, from_currency_code, to_currency_code,
	rate, date_effective, origin,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID,
		&m.CompanyID,
		&m.FromCurrencyCode,
		&m.ToCurrencyCode,
		&m.Rate,
		&m.DateEffective,
		&m.Origin,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindRateForDate retrieves the rate observation dated exactly on the calendar
// date of date for the pair. When the same date carries several observations
// the most recently created one wins.
func (r *PgxExchangeRateRepository) FindRateForDate(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE company_id = $1 AND from_currency_code = $2 AND to_currency_code = $3
		  AND date_effective = $4
		ORDER BY created_at DESC
		LIMIT 1;
	`
	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query,
		companyID, strings.ToUpper(fromCurrencyCode), strings.ToUpper(toCurrencyCode), accounting.DateOnly(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate for " + fromCurrencyCode + "/" + toCurrencyCode + " on " + date.Format("2006-01-02"))
		}
		return nil, apperrors.NewAppError(500, "failed to find rate for date", err)
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// FindMostRecentRate retrieves the most recently created observation ever
// recorded for the pair, regardless of effective date.
func (r *PgxExchangeRateRepository) FindMostRecentRate(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE company_id = $1 AND from_currency_code = $2 AND to_currency_code = $3
		ORDER BY created_at DESC
		LIMIT 1;
	`
	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query,
		companyID, strings.ToUpper(fromCurrencyCode), strings.ToUpper(toCurrencyCode)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate recorded for " + fromCurrencyCode + "/" + toCurrencyCode)
		}
		return nil, apperrors.NewAppError(500, "failed to find most recent rate", err)
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// ListRecentRates retrieves up to limit observations for the pair, most
// recently created first.
func (r *PgxExchangeRateRepository) ListRecentRates(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, limit int) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE company_id = $1 AND from_currency_code = $2 AND to_currency_code = $3
		ORDER BY created_at DESC
		LIMIT $4;
	`
	rows, err := r.Pool.Query(ctx, query,
		companyID, strings.ToUpper(fromCurrencyCode), strings.ToUpper(toCurrencyCode), limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list recent rates", err)
	}
	defer rows.Close()

	rates := make([]domain.ExchangeRate, 0, limit)
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate row", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate exchange rate rows", err)
	}
	return rates, nil
}

// FindExchangeRateByID retrieves a single observation by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE exchange_rate_id = $1;`
	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate " + rateID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate "+rateID, err)
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// SaveExchangeRate appends a new rate observation. The store is append-only,
// so an existing observation for the same pair and date is never touched.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	m.FromCurrencyCode = strings.ToUpper(m.FromCurrencyCode)
	m.ToCurrencyCode = strings.ToUpper(m.ToCurrencyCode)

	query := `
		INSERT INTO exchange_rates (
			exchange_rate_id, company_id, from_currency_code, to_currency_code,
			rate, date_effective, origin,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExchangeRateID,
		m.CompanyID,
		m.FromCurrencyCode,
		m.ToCurrencyCode,
		m.Rate,
		m.DateEffective,
		m.Origin,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save exchange rate", err)
	}
	return nil
}
