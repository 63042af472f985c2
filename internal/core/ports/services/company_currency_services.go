package services

import (
	"context"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	"github.com/mosaicfin/ledger_backend/internal/dto"
)

// CompanyCurrencySvcFacade defines the per-tenant currency lifecycle.
type CompanyCurrencySvcFacade interface {
	// EnableCurrency enables a currency for a company, seeding the rate store
	// with the mandatory initial rate in the same logical operation.
	EnableCurrency(ctx context.Context, companyID string, req dto.EnableCompanyCurrencyRequest, userID string) (*domain.CompanyCurrency, error)

	// DisableCurrency soft-disables a currency. Rejected for the base currency
	// and while any account or voucher still references the currency.
	DisableCurrency(ctx context.Context, companyID, currencyCode string, userID string) error

	ListCompanyCurrencies(ctx context.Context, companyID string) ([]domain.CompanyCurrency, error)
}
