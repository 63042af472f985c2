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

var (
	// ErrBaseCurrencyDisable rejects disabling the tenant's accounting currency.
	ErrBaseCurrencyDisable = errors.New("the base currency cannot be disabled")
	// ErrCurrencyInUse rejects disabling a currency still referenced by accounts or vouchers.
	ErrCurrencyInUse = errors.New("currency is still referenced and cannot be disabled")
	// ErrBaseRateNotUnit rejects enabling the base currency with a rate other than 1.
	ErrBaseRateNotUnit = errors.New("initial rate for the base currency must be exactly 1")
)

// companyCurrencyService owns the per-tenant currency lifecycle. Enabling a
// currency and seeding its initial rate is one logical operation; the dual
// write is delegated to the repository so no intermediate state is observable.
type companyCurrencyService struct {
	companyCurrencyRepo portsrepo.CompanyCurrencyRepositoryFacade
	currencySvc         portssvc.CurrencySvcFacade
	companySvc          portssvc.CompanySvcFacade
	accountRepo         portsrepo.AccountReader
	voucherRepo         portsrepo.VoucherReader
}

// NewCompanyCurrencyService creates a new CompanyCurrencyService.
func NewCompanyCurrencyService(
	companyCurrencyRepo portsrepo.CompanyCurrencyRepositoryFacade,
	currencySvc portssvc.CurrencySvcFacade,
	companySvc portssvc.CompanySvcFacade,
	accountRepo portsrepo.AccountReader,
	voucherRepo portsrepo.VoucherReader,
) portssvc.CompanyCurrencySvcFacade {
	return &companyCurrencyService{
		companyCurrencyRepo: companyCurrencyRepo,
		currencySvc:         currencySvc,
		companySvc:          companySvc,
		accountRepo:         accountRepo,
		voucherRepo:         voucherRepo,
	}
}

var _ portssvc.CompanyCurrencySvcFacade = (*companyCurrencyService)(nil)

// EnableCurrency implements portssvc.CompanyCurrencySvcFacade.
func (s *companyCurrencyService) EnableCurrency(ctx context.Context, companyID string, req dto.EnableCompanyCurrencyRequest, userID string) (*domain.CompanyCurrency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	code := strings.ToUpper(req.CurrencyCode)

	currency, err := s.currencySvc.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s is not in the catalog", apperrors.ErrValidation, code)
		}
		return nil, err
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: currency %s is inactive in the catalog", apperrors.ErrValidation, code)
	}

	if req.InitialRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: initial rate must be positive", apperrors.ErrValidation)
	}

	baseCurrency, err := s.companySvc.GetBaseCurrency(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if code == baseCurrency && !req.InitialRate.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrBaseRateNotUnit)
	}

	existing, err := s.companyCurrencyRepo.FindCompanyCurrency(ctx, companyID, code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check company currency state: %w", err)
	}
	if existing != nil && existing.IsEnabled {
		return nil, fmt.Errorf("%w: currency %s is already enabled", apperrors.ErrDuplicate, code)
	}

	now := time.Now().UTC()
	companyCurrency := domain.CompanyCurrency{
		CompanyID:    companyID,
		CurrencyCode: code,
		IsEnabled:    true,
		EnabledAt:    now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// The base currency carries no rate to itself; the resolver never queries
	// same-currency pairs and the store rejects them.
	var initialRate *domain.ExchangeRate
	if code != baseCurrency {
		initialRate = &domain.ExchangeRate{
			ExchangeRateID:   uuid.NewString(),
			CompanyID:        companyID,
			FromCurrencyCode: code,
			ToCurrencyCode:   baseCurrency,
			Rate:             req.InitialRate,
			DateEffective:    accounting.DateOnly(now),
			Origin:           domain.RateOriginReference,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	// Rate seed and enablement flip happen inside one repository transaction.
	if err := s.companyCurrencyRepo.EnableCurrencyWithRate(ctx, companyCurrency, initialRate); err != nil {
		logger.Error("Failed to enable currency", slog.String("error", err.Error()), slog.String("company_id", companyID), slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to enable currency %s: %w", code, err)
	}

	logger.Info("Currency enabled for company", slog.String("company_id", companyID), slog.String("currency_code", code))
	return &companyCurrency, nil
}

// DisableCurrency implements portssvc.CompanyCurrencySvcFacade.
func (s *companyCurrencyService) DisableCurrency(ctx context.Context, companyID, currencyCode string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	code := strings.ToUpper(currencyCode)

	baseCurrency, err := s.companySvc.GetBaseCurrency(ctx, companyID)
	if err != nil {
		return err
	}
	if code == baseCurrency {
		return fmt.Errorf("%w: %s", apperrors.ErrForbidden, ErrBaseCurrencyDisable)
	}

	companyCurrency, err := s.companyCurrencyRepo.FindCompanyCurrency(ctx, companyID, code)
	if err != nil {
		return fmt.Errorf("failed to find company currency %s: %w", code, err)
	}
	if !companyCurrency.IsEnabled {
		return fmt.Errorf("%w: currency %s is already disabled", apperrors.ErrConflict, code)
	}

	accountRefs, err := s.accountRepo.CountByCurrency(ctx, companyID, code)
	if err != nil {
		return fmt.Errorf("failed to count accounts using currency %s: %w", code, err)
	}
	if accountRefs > 0 {
		return fmt.Errorf("%w: %w: %d account(s) use it", apperrors.ErrConflict, ErrCurrencyInUse, accountRefs)
	}

	voucherRefs, err := s.voucherRepo.CountByCurrency(ctx, companyID, code)
	if err != nil {
		return fmt.Errorf("failed to count vouchers using currency %s: %w", code, err)
	}
	if voucherRefs > 0 {
		return fmt.Errorf("%w: %w: %d voucher(s) use it", apperrors.ErrConflict, ErrCurrencyInUse, voucherRefs)
	}

	now := time.Now().UTC()
	if err := s.companyCurrencyRepo.DisableCompanyCurrency(ctx, companyID, code, userID, now); err != nil {
		logger.Error("Failed to disable currency", slog.String("error", err.Error()), slog.String("company_id", companyID), slog.String("currency_code", code))
		return fmt.Errorf("failed to disable currency %s: %w", code, err)
	}

	logger.Info("Currency disabled for company", slog.String("company_id", companyID), slog.String("currency_code", code))
	return nil
}

// ListCompanyCurrencies implements portssvc.CompanyCurrencySvcFacade.
func (s *companyCurrencyService) ListCompanyCurrencies(ctx context.Context, companyID string) ([]domain.CompanyCurrency, error) {
	currencies, err := s.companyCurrencyRepo.ListCompanyCurrencies(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company currencies: %w", err)
	}
	if currencies == nil {
		return []domain.CompanyCurrency{}, nil
	}
	return currencies, nil
}
