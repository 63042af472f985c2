package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mosaicfin/ledger_backend/internal/apperrors"
	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portsrepo "github.com/mosaicfin/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
	"github.com/mosaicfin/ledger_backend/internal/middleware"
	"github.com/mosaicfin/ledger_backend/internal/utils/accounting"
)

// rateResolutionService resolves the best applicable exchange rate for a pair
// and date under the exact-date -> most-recent -> none fallback policy.
//
// It never fabricates a rate. An earlier generation of this system silently
// defaulted missing rates to 1.0 and corrupted ledgers; the unresolved outcome
// is therefore a first-class result, not an error to be papered over here.
type rateResolutionService struct {
	rateRepo portsrepo.ExchangeRateReader
}

// NewRateResolutionService creates a new RateResolutionService.
func NewRateResolutionService(rateRepo portsrepo.ExchangeRateReader) portssvc.RateResolutionSvcFacade {
	return &rateResolutionService{rateRepo: rateRepo}
}

var _ portssvc.RateResolutionSvcFacade = (*rateResolutionService)(nil)

// Resolve implements portssvc.RateResolutionSvcFacade.
func (s *rateResolutionService) Resolve(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, date time.Time) (domain.RateResolution, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fromCode := strings.ToUpper(fromCurrencyCode)
	toCode := strings.ToUpper(toCurrencyCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return domain.RateResolution{}, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	// Rates are effective per calendar date; a posting timestamp must not
	// prevent an exact-date match against a rate stored for the same day.
	date = accounting.DateOnly(date)

	// A same-currency pair is reported as unresolved without querying the
	// store; the caller owns the 1.0 shortcut explicitly.
	if fromCode == toCode {
		return domain.RateResolution{Source: domain.RateSourceNone}, nil
	}

	rate, err := s.rateRepo.FindRateForDate(ctx, companyID, fromCode, toCode, date)
	if err == nil {
		return domain.RateResolution{Rate: rate, Source: domain.RateSourceExactDate}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up exact-date rate", slog.String("error", err.Error()), slog.String("pair", fromCode+"/"+toCode))
		return domain.RateResolution{}, fmt.Errorf("failed to look up rate for date: %w", err)
	}

	rate, err = s.rateRepo.FindMostRecentRate(ctx, companyID, fromCode, toCode)
	if err == nil {
		logger.Debug("Falling back to most recent rate",
			slog.String("pair", fromCode+"/"+toCode),
			slog.Time("requested_date", date),
			slog.Time("rate_date", rate.DateEffective),
		)
		return domain.RateResolution{Rate: rate, Source: domain.RateSourceMostRecent}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up most recent rate", slog.String("error", err.Error()), slog.String("pair", fromCode+"/"+toCode))
		return domain.RateResolution{}, fmt.Errorf("failed to look up most recent rate: %w", err)
	}

	return domain.RateResolution{Source: domain.RateSourceNone}, nil
}
