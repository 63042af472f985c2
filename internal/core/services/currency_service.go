package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mosaicfin/ledger_backend/internal/apperrors"
	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portsrepo "github.com/mosaicfin/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
	"github.com/mosaicfin/ledger_backend/internal/dto"
	"github.com/mosaicfin/ledger_backend/internal/middleware"
)

type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	// Format checks (required, len=3, uppercase, decimal range) are handled by
	// DTO binding; the repo enforces code uniqueness.
	now := time.Now().UTC()

	currency := domain.Currency{
		CurrencyCode:  strings.ToUpper(req.CurrencyCode),
		Name:          req.Name,
		Symbol:        req.Symbol,
		DecimalPlaces: req.DecimalPlaces,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// DeactivateCurrency soft-removes a currency from the catalog. Currencies are
// never deleted; historical vouchers keep referencing them.
func (s *currencyService) DeactivateCurrency(ctx context.Context, currencyCode string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	if !currency.IsActive {
		return fmt.Errorf("%w: currency %s is already inactive", apperrors.ErrConflict, currency.CurrencyCode)
	}

	currency.IsActive = false
	currency.LastUpdatedAt = time.Now().UTC()
	currency.LastUpdatedBy = userID

	if err := s.currencyRepo.SaveCurrency(ctx, *currency); err != nil {
		return fmt.Errorf("failed to deactivate currency %s: %w", currencyCode, err)
	}

	logger.Info("Currency deactivated", "currency_code", currency.CurrencyCode)
	return nil
}
