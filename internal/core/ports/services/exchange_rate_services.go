package services

import (
	"context"
	"time"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	"github.com/mosaicfin/ledger_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// RateResolutionSvcFacade resolves the best applicable rate for a pair and date.
type RateResolutionSvcFacade interface {
	// Resolve returns the rate dated exactly on date when one exists, otherwise
	// the most recently created rate for the pair, otherwise an unresolved
	// result. A same-currency pair resolves to RateSourceNone without touching
	// the store; the 1.0 shortcut is the caller's responsibility.
	Resolve(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, date time.Time) (domain.RateResolution, error)
}

// RateDeviationSvcFacade runs advisory heuristics against a proposed rate.
type RateDeviationSvcFacade interface {
	// DetectDeviations returns zero or more warnings. It never blocks.
	DetectDeviations(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, proposedRate decimal.Decimal) ([]domain.RateWarning, error)
}

// ExchangeRateSvcFacade defines rate store operations.
type ExchangeRateSvcFacade interface {
	// SaveReferenceRate appends a reference rate observation; history is never
	// overwritten so later deviation analysis keeps its inputs.
	SaveReferenceRate(ctx context.Context, companyID string, req dto.SaveReferenceRateRequest, creatorUserID string) (*domain.ExchangeRate, error)

	// ListRecentRates returns the latest observations for a pair, newest first.
	ListRecentRates(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, limit int) ([]domain.ExchangeRate, error)

	// GetExchangeRateByID retrieves a single observation scoped to a company.
	GetExchangeRateByID(ctx context.Context, companyID, exchangeRateID string) (*domain.ExchangeRate, error)
}
