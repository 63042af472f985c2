package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
	"github.com/mosaicfin/ledger_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RateDeviationServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	service      portssvc.RateDeviationSvcFacade
	companyID    string
}

func (suite *RateDeviationServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewRateDeviationService(suite.mockRateRepo, 10)
	suite.companyID = uuid.NewString()
}

// history builds rate observations newest first, the order the repository
// returns them in.
func (suite *RateDeviationServiceTestSuite) history(rates ...float64) []domain.ExchangeRate {
	out := make([]domain.ExchangeRate, len(rates))
	now := time.Now().UTC()
	for i, r := range rates {
		out[i] = domain.ExchangeRate{
			ExchangeRateID:   uuid.NewString(),
			CompanyID:        suite.companyID,
			FromCurrencyCode: "EUR",
			ToCurrencyCode:   "USD",
			Rate:             decimal.NewFromFloat(r),
			DateEffective:    now.AddDate(0, 0, -i),
			Origin:           domain.RateOriginReference,
		}
	}
	return out
}

func (suite *RateDeviationServiceTestSuite) TestDetect_FirstRate() {
	ctx := context.Background()
	suite.mockRateRepo.On("ListRecentRates", ctx, suite.companyID, "EUR", "USD", 10).
		Return([]domain.ExchangeRate{}, nil).Once()

	warnings, err := suite.service.DetectDeviations(ctx, suite.companyID, "EUR", "USD", decimal.NewFromFloat(1.10))

	suite.NoError(err)
	suite.Len(warnings, 1)
	suite.Equal(domain.WarningFirstRate, warnings[0].Code)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateDeviationServiceTestSuite) TestDetect_WithinThresholdIsQuiet() {
	ctx := context.Background()
	suite.mockRateRepo.On("ListRecentRates", ctx, suite.companyID, "EUR", "USD", 10).
		Return(suite.history(1.10, 1.09, 1.11), nil).Once()

	warnings, err := suite.service.DetectDeviations(ctx, suite.companyID, "EUR", "USD", decimal.NewFromFloat(1.12))

	suite.NoError(err)
	suite.Empty(warnings)
}

func (suite *RateDeviationServiceTestSuite) TestDetect_PercentageDeviation() {
	ctx := context.Background()
	// Average of history is 1.10; a proposed 1.50 is ~36% off.
	suite.mockRateRepo.On("ListRecentRates", ctx, suite.companyID, "EUR", "USD", 10).
		Return(suite.history(1.10, 1.10, 1.10), nil).Once()

	warnings, err := suite.service.DetectDeviations(ctx, suite.companyID, "EUR", "USD", decimal.NewFromFloat(1.50))

	suite.NoError(err)
	suite.Require().Len(warnings, 1)
	w := warnings[0]
	suite.Equal(domain.WarningPercentageDeviation, w.Code)
	suite.Require().NotNil(w.DeviationPct)
	suite.True(w.DeviationPct.GreaterThan(decimal.NewFromInt(20)),
		"deviation pct should exceed the 20%% threshold, got %s", w.DeviationPct)
	suite.Require().NotNil(w.SuggestedRate)
	suite.True(w.SuggestedRate.Equal(decimal.NewFromFloat(1.10)))
}

func (suite *RateDeviationServiceTestSuite) TestDetect_DecimalShiftTenX() {
	ctx := context.Background()
	// 11.0 proposed against a last rate of 1.10 is exactly 10x: a classic
	// misplaced decimal point. The percentage heuristic fires too.
	suite.mockRateRepo.On("ListRecentRates", ctx, suite.companyID, "EUR", "USD", 10).
		Return(suite.history(1.10), nil).Once()

	warnings, err := suite.service.DetectDeviations(ctx, suite.companyID, "EUR", "USD", decimal.NewFromFloat(11.0))

	suite.NoError(err)
	suite.Require().Len(warnings, 2)

	var shift *domain.RateWarning
	for i := range warnings {
		if warnings[i].Code == domain.WarningDecimalShift {
			shift = &warnings[i]
		}
	}
	suite.Require().NotNil(shift)
	suite.Equal("10x", shift.Magnitude)
	suite.Require().NotNil(shift.SuggestedRate)
	suite.True(shift.SuggestedRate.Equal(decimal.NewFromFloat(1.10)))
}

func (suite *RateDeviationServiceTestSuite) TestDetect_DecimalShiftTenthX() {
	ctx := context.Background()
	suite.mockRateRepo.On("ListRecentRates", ctx, suite.companyID, "EUR", "USD", 10).
		Return(suite.history(1.10), nil).Once()

	warnings, err := suite.service.DetectDeviations(ctx, suite.companyID, "EUR", "USD", decimal.NewFromFloat(0.11))

	suite.NoError(err)
	var shift *domain.RateWarning
	for i := range warnings {
		if warnings[i].Code == domain.WarningDecimalShift {
			shift = &warnings[i]
		}
	}
	suite.Require().NotNil(shift)
	suite.Equal("0.1x", shift.Magnitude)
}

func (suite *RateDeviationServiceTestSuite) TestDetect_FirstBandWins() {
	ctx := context.Background()
	// A ratio of 10 sits inside both the 10x band (tolerance 1.5) and, were it
	// checked first, the 100x band would not match. Exactly one decimal-shift
	// warning must come back.
	suite.mockRateRepo.On("ListRecentRates", ctx, suite.companyID, "EUR", "USD", 10).
		Return(suite.history(2.0), nil).Once()

	warnings, err := suite.service.DetectDeviations(ctx, suite.companyID, "EUR", "USD", decimal.NewFromFloat(20.0))

	suite.NoError(err)
	shiftCount := 0
	for _, w := range warnings {
		if w.Code == domain.WarningDecimalShift {
			shiftCount++
			suite.Equal("10x", w.Magnitude)
		}
	}
	suite.Equal(1, shiftCount)
}

func (suite *RateDeviationServiceTestSuite) TestDetect_DefaultHistoryLimit() {
	ctx := context.Background()
	svc := services.NewRateDeviationService(suite.mockRateRepo, 0)
	suite.mockRateRepo.On("ListRecentRates", ctx, suite.companyID, "EUR", "USD", 10).
		Return(suite.history(1.10), nil).Once()

	_, err := svc.DetectDeviations(ctx, suite.companyID, "EUR", "USD", decimal.NewFromFloat(1.10))

	suite.NoError(err)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestRateDeviationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateDeviationServiceTestSuite))
}
