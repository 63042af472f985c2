package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portsrepo "github.com/mosaicfin/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
	"github.com/mosaicfin/ledger_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// defaultDeviationHistoryLimit is how many recent observations feed the
// average for the percentage heuristic.
const defaultDeviationHistoryLimit = 10

// percentageDeviationThreshold flags proposed rates further than this fraction
// from the recent average.
var percentageDeviationThreshold = decimal.NewFromFloat(0.20)

// decimalShiftBands are checked in order against proposedRate/latestRate; the
// first band containing the ratio wins and at most one decimal-shift warning
// is emitted per call. The tolerances are heuristic and tunable.
var decimalShiftBands = []struct {
	Factor    decimal.Decimal
	Tolerance decimal.Decimal
	Label     string
}{
	{decimal.NewFromInt(10), decimal.NewFromFloat(1.5), "10x"},
	{decimal.NewFromFloat(0.1), decimal.NewFromFloat(0.15), "0.1x"},
	{decimal.NewFromInt(100), decimal.NewFromInt(15), "100x"},
	{decimal.NewFromFloat(0.01), decimal.NewFromFloat(0.015), "0.01x"},
}

// rateDeviationService flags suspicious proposed rates. Warnings are advisory:
// they accompany a rate save or resolution, they never block one.
type rateDeviationService struct {
	rateRepo     portsrepo.ExchangeRateReader
	historyLimit int
}

// NewRateDeviationService creates a new RateDeviationService. historyLimit <= 0
// selects the default of 10 observations.
func NewRateDeviationService(rateRepo portsrepo.ExchangeRateReader, historyLimit int) portssvc.RateDeviationSvcFacade {
	if historyLimit <= 0 {
		historyLimit = defaultDeviationHistoryLimit
	}
	return &rateDeviationService{rateRepo: rateRepo, historyLimit: historyLimit}
}

var _ portssvc.RateDeviationSvcFacade = (*rateDeviationService)(nil)

// DetectDeviations implements portssvc.RateDeviationSvcFacade.
func (s *rateDeviationService) DetectDeviations(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, proposedRate decimal.Decimal) ([]domain.RateWarning, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fromCode := strings.ToUpper(fromCurrencyCode)
	toCode := strings.ToUpper(toCurrencyCode)

	recent, err := s.rateRepo.ListRecentRates(ctx, companyID, fromCode, toCode, s.historyLimit)
	if err != nil {
		logger.Error("Failed to fetch rate history for deviation check", slog.String("error", err.Error()), slog.String("pair", fromCode+"/"+toCode))
		return nil, fmt.Errorf("failed to fetch rate history: %w", err)
	}

	if len(recent) == 0 {
		return []domain.RateWarning{{
			Code:    domain.WarningFirstRate,
			Message: fmt.Sprintf("This is the first rate recorded for %s/%s; no history to compare against", fromCode, toCode),
		}}, nil
	}

	var warnings []domain.RateWarning

	if w := s.checkPercentageDeviation(recent, proposedRate); w != nil {
		warnings = append(warnings, *w)
	}

	// Decimal-shift check runs against the single most recent observation.
	if w := s.checkDecimalShift(recent[0].Rate, proposedRate); w != nil {
		warnings = append(warnings, *w)
	}

	return warnings, nil
}

func (s *rateDeviationService) checkPercentageDeviation(recent []domain.ExchangeRate, proposedRate decimal.Decimal) *domain.RateWarning {
	sum := decimal.Zero
	for _, r := range recent {
		sum = sum.Add(r.Rate)
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(recent))))
	if avg.IsZero() {
		return nil
	}

	deviation := proposedRate.Sub(avg).Abs().Div(avg)
	if deviation.LessThanOrEqual(percentageDeviationThreshold) {
		return nil
	}

	pct := deviation.Mul(decimal.NewFromInt(100))
	return &domain.RateWarning{
		Code: domain.WarningPercentageDeviation,
		Message: fmt.Sprintf("Proposed rate deviates %s%% from the average of the last %d rates",
			pct.Round(2).String(), len(recent)),
		DeviationPct:  &pct,
		SuggestedRate: &avg,
	}
}

func (s *rateDeviationService) checkDecimalShift(latest, proposedRate decimal.Decimal) *domain.RateWarning {
	if latest.IsZero() {
		return nil
	}

	ratio := proposedRate.Div(latest)
	for _, band := range decimalShiftBands {
		if ratio.Sub(band.Factor).Abs().LessThanOrEqual(band.Tolerance) {
			suggested := latest
			return &domain.RateWarning{
				Code: domain.WarningDecimalShift,
				Message: fmt.Sprintf("Proposed rate is roughly %s the last recorded rate %s; possible misplaced decimal point",
					band.Label, latest.String()),
				Magnitude:     band.Label,
				SuggestedRate: &suggested,
			}
		}
	}
	return nil
}
