package repositories

import (
	"context"
	"time"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
)

// CompanyCurrencyReader defines read operations for per-tenant currency state
type CompanyCurrencyReader interface {
	// FindCompanyCurrency retrieves the enable state for a (company, currency) pair.
	FindCompanyCurrency(ctx context.Context, companyID, currencyCode string) (*domain.CompanyCurrency, error)

	// ListCompanyCurrencies retrieves all currency records for a company.
	ListCompanyCurrencies(ctx context.Context, companyID string) ([]domain.CompanyCurrency, error)
}

// CompanyCurrencyWriter defines write operations for per-tenant currency state
type CompanyCurrencyWriter interface {
	// EnableCurrencyWithRate enables a currency for a company and records its
	// initial rate as a single atomic operation. Enabling without a rate, or
	// recording the rate without enabling, must not be observable. A nil
	// initialRate enables without seeding; the base currency needs no stored
	// rate to itself and the store rejects same-currency pairs.
	EnableCurrencyWithRate(ctx context.Context, companyCurrency domain.CompanyCurrency, initialRate *domain.ExchangeRate) error

	// DisableCompanyCurrency soft-disables a currency for a company.
	DisableCompanyCurrency(ctx context.Context, companyID, currencyCode string, disabledBy string, disabledAt time.Time) error
}

// CompanyCurrencyRepositoryFacade combines all company currency repository interfaces
type CompanyCurrencyRepositoryFacade interface {
	CompanyCurrencyReader
	CompanyCurrencyWriter
}
