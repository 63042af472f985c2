package repositories

import (
	"context"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
)

// CurrencyReader defines read operations for the global currency catalog
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all catalog currencies, active and inactive.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for the global currency catalog
type CurrencyWriter interface {
	// SaveCurrency inserts or updates a catalog currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency catalog repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
