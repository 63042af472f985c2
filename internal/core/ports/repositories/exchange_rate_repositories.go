package repositories

import (
	"context"
	"time"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for the append-only rate store.
// All lookups are tenant-scoped; pairs are matched on uppercased codes.
type ExchangeRateReader interface {
	// FindRateForDate retrieves the rate observation dated exactly on date for
	// the pair, preferring the most recently created one on ties.
	FindRateForDate(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, date time.Time) (*domain.ExchangeRate, error)

	// FindMostRecentRate retrieves the most recently created rate ever recorded
	// for the pair, regardless of effective date.
	FindMostRecentRate(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)

	// ListRecentRates retrieves up to limit observations for the pair, most
	// recently created first.
	ListRecentRates(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, limit int) ([]domain.ExchangeRate, error)

	// FindExchangeRateByID retrieves a single observation by its ID.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for the rate store.
// The store is append-only: observations are never updated or deleted.
type ExchangeRateWriter interface {
	// SaveExchangeRate appends a new rate observation.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
