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
	"github.com/mosaicfin/ledger_backend/internal/dto"
	"github.com/mosaicfin/ledger_backend/internal/middleware"
	"github.com/mosaicfin/ledger_backend/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// exchangeRateService owns writes to the append-only rate store.
type exchangeRateService struct {
	rateRepo    portsrepo.ExchangeRateRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencySvc portssvc.CurrencySvcFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:    rateRepo,
		currencySvc: currencySvc,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// SaveReferenceRate appends a new reference rate observation. Existing
// observations are never overwritten, so the deviation detector keeps its
// full history.
func (s *exchangeRateService) SaveReferenceRate(ctx context.Context, companyID string, req dto.SaveReferenceRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	fromCode := strings.ToUpper(req.FromCurrencyCode)
	toCode := strings.ToUpper(req.ToCurrencyCode)
	if fromCode == toCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	if err := s.requireCurrency(ctx, fromCode, "from"); err != nil {
		return nil, err
	}
	if err := s.requireCurrency(ctx, toCode, "to"); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		CompanyID:        companyID,
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             req.Rate,
		DateEffective:    accounting.DateOnly(req.DateEffective),
		Origin:           domain.RateOriginReference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		logger.Error("Failed to save reference rate", slog.String("error", err.Error()), slog.String("pair", fromCode+"/"+toCode))
		return nil, fmt.Errorf("failed to save reference rate: %w", err)
	}

	logger.Info("Reference rate saved", slog.String("exchange_rate_id", rate.ExchangeRateID), slog.String("pair", fromCode+"/"+toCode))
	return &rate, nil
}

// ListRecentRates implements portssvc.ExchangeRateSvcFacade.
func (s *exchangeRateService) ListRecentRates(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, limit int) ([]domain.ExchangeRate, error) {
	fromCode := strings.ToUpper(fromCurrencyCode)
	toCode := strings.ToUpper(toCurrencyCode)
	if limit <= 0 {
		limit = defaultDeviationHistoryLimit
	}

	rates, err := s.rateRepo.ListRecentRates(ctx, companyID, fromCode, toCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// GetExchangeRateByID implements portssvc.ExchangeRateSvcFacade.
func (s *exchangeRateService) GetExchangeRateByID(ctx context.Context, companyID, exchangeRateID string) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindExchangeRateByID(ctx, exchangeRateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find exchange rate %s: %w", exchangeRateID, err)
	}

	// Obscure cross-tenant existence.
	if rate.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return rate, nil
}

func (s *exchangeRateService) requireCurrency(ctx context.Context, code, role string) error {
	_, err := s.currencySvc.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: '%s' currency code '%s' not found", apperrors.ErrValidation, role, code)
		}
		return fmt.Errorf("failed to validate '%s' currency '%s': %w", role, code, err)
	}
	return nil
}
