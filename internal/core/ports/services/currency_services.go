package services

import (
	"context"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	"github.com/mosaicfin/ledger_backend/internal/dto"
)

// CurrencySvcFacade defines the operations on the global currency catalog.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	DeactivateCurrency(ctx context.Context, currencyCode string, userID string) error
}
