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
	// ErrRateNotFound aborts a posting in a currency with no stored rate.
	// The caller must obtain a manual rate and retry via the reference-rate
	// save path; the engine never substitutes 1.0.
	ErrRateNotFound = errors.New("Exchange rate not found")
	// ErrCurrencyNotEnabled rejects posting in a currency the tenant has not enabled.
	ErrCurrencyNotEnabled = errors.New("Currency is not enabled for this company")
)

// voucherService turns validated transaction intents into persisted, balanced,
// currency-correct vouchers. One exported operation per voucher kind; all of
// them run the same pipeline: build lines -> resolve currency and rate ->
// assign number -> persist.
type voucherService struct {
	voucherRepo         portsrepo.VoucherRepositoryWithTx
	companyCurrencyRepo portsrepo.CompanyCurrencyReader
	companySvc          portssvc.CompanySvcFacade
	currencySvc         portssvc.CurrencySvcFacade
	rateResolutionSvc   portssvc.RateResolutionSvcFacade
	numberSvc           portssvc.VoucherNumberSvcFacade
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(
	voucherRepo portsrepo.VoucherRepositoryWithTx,
	companyCurrencyRepo portsrepo.CompanyCurrencyReader,
	companySvc portssvc.CompanySvcFacade,
	currencySvc portssvc.CurrencySvcFacade,
	rateResolutionSvc portssvc.RateResolutionSvcFacade,
	numberSvc portssvc.VoucherNumberSvcFacade,
) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo:         voucherRepo,
		companyCurrencyRepo: companyCurrencyRepo,
		companySvc:          companySvc,
		currencySvc:         currencySvc,
		rateResolutionSvc:   rateResolutionSvc,
		numberSvc:           numberSvc,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreatePaymentVoucher implements portssvc.VoucherSvcFacade.
func (s *voucherService) CreatePaymentVoucher(ctx context.Context, companyID string, req dto.CreatePaymentVoucherRequest, userID string) (*domain.Voucher, error) {
	intent, err := buildPaymentIntent(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return s.postVoucher(ctx, companyID, userID, intent)
}

// CreateReceiptVoucher implements portssvc.VoucherSvcFacade.
func (s *voucherService) CreateReceiptVoucher(ctx context.Context, companyID string, req dto.CreateReceiptVoucherRequest, userID string) (*domain.Voucher, error) {
	intent, err := buildReceiptIntent(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return s.postVoucher(ctx, companyID, userID, intent)
}

// CreateJournalVoucher implements portssvc.VoucherSvcFacade.
func (s *voucherService) CreateJournalVoucher(ctx context.Context, companyID string, req dto.CreateJournalVoucherRequest, userID string) (*domain.Voucher, error) {
	intent, err := buildJournalIntent(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return s.postVoucher(ctx, companyID, userID, intent)
}

// CreateOpeningBalanceVoucher implements portssvc.VoucherSvcFacade.
func (s *voucherService) CreateOpeningBalanceVoucher(ctx context.Context, companyID string, req dto.CreateOpeningBalanceRequest, userID string) (*domain.Voucher, error) {
	intent, err := buildOpeningBalanceIntent(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return s.postVoucher(ctx, companyID, userID, intent)
}

// postVoucher is the shared pipeline behind every voucher kind. The repository
// save at the end is the single durable side effect; any earlier failure
// leaves no partial state (and consumes no voucher number, since numbering
// happens after validation and rate resolution succeed).
func (s *voucherService) postVoucher(ctx context.Context, companyID, userID string, intent voucherIntent) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	baseCurrency, err := s.companySvc.GetBaseCurrency(ctx, companyID)
	if err != nil {
		return nil, err
	}
	baseCurrency = strings.ToUpper(baseCurrency)

	// Base amounts round to the base currency's precision, not to whatever
	// the storage column happens to keep.
	baseCatalog, err := s.currencySvc.GetCurrencyByCode(ctx, baseCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to load base currency %s: %w", baseCurrency, err)
	}
	basePlaces := baseCatalog.DecimalPlaces

	currency := strings.ToUpper(intent.CurrencyCode)
	if currency == "" {
		currency = baseCurrency
	}

	rate := decimal.NewFromInt(1)
	if currency != baseCurrency {
		if err := s.requireEnabledCurrency(ctx, companyID, currency); err != nil {
			return nil, err
		}

		resolution, err := s.rateResolutionSvc.Resolve(ctx, companyID, currency, baseCurrency, intent.Date)
		if err != nil {
			return nil, err
		}
		if !resolution.Resolved() {
			logger.Warn("Posting aborted: no exchange rate for pair",
				slog.String("company_id", companyID),
				slog.String("pair", currency+"/"+baseCurrency),
				slog.Time("date", intent.Date),
			)
			return nil, ErrRateNotFound
		}
		rate = resolution.Rate.Rate
	}

	voucherNo, err := s.numberSvc.NextVoucherNumber(ctx, companyID, intent.Type, accounting.FiscalYear(intent.Date))
	if err != nil {
		return nil, err
	}

	// The sequence is linearizable, so a taken number means something outside
	// the generator wrote a voucher with it. Refuse rather than collide on
	// the unique constraint mid-transaction.
	taken, err := s.voucherRepo.ExistsByVoucherNo(ctx, companyID, voucherNo)
	if err != nil {
		return nil, fmt.Errorf("failed to check voucher number %s: %w", voucherNo, err)
	}
	if taken {
		return nil, fmt.Errorf("%w: voucher number %s is already taken", apperrors.ErrConflict, voucherNo)
	}

	now := time.Now().UTC()
	voucherID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	lines := make([]domain.VoucherLine, len(intent.Lines))
	for i, raw := range intent.Lines {
		lines[i] = domain.VoucherLine{
			LineID:       uuid.NewString(),
			VoucherID:    voucherID,
			AccountID:    raw.AccountID,
			Side:         raw.Side,
			Amount:       raw.Amount,
			BaseAmount:   accounting.RoundToPlaces(raw.Amount.Mul(rate), basePlaces),
			ExchangeRate: rate,
			Notes:        raw.Notes,
			CostCenterID: raw.CostCenterID,
			AuditFields:  audit,
		}
	}

	voucher := domain.Voucher{
		VoucherID:        voucherID,
		CompanyID:        companyID,
		VoucherNo:        voucherNo,
		Type:             intent.Type,
		Date:             intent.Date,
		Description:      intent.Description,
		CurrencyCode:     currency,
		BaseCurrencyCode: baseCurrency,
		ExchangeRate:     rate,
		Status:           domain.Draft,
		Lines:            lines,
		AuditFields:      audit,
	}
	voucher.ComputeTotals()

	if err := s.voucherRepo.SaveVoucher(ctx, voucher, lines); err != nil {
		logger.Error("Failed to save voucher", slog.String("error", err.Error()), slog.String("voucher_no", voucherNo), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	logger.Info("Voucher posted",
		slog.String("voucher_id", voucherID),
		slog.String("voucher_no", voucherNo),
		slog.String("type", string(intent.Type)),
		slog.String("company_id", companyID),
	)
	return &voucher, nil
}

func (s *voucherService) requireEnabledCurrency(ctx context.Context, companyID, currency string) error {
	companyCurrency, err := s.companyCurrencyRepo.FindCompanyCurrency(ctx, companyID, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrCurrencyNotEnabled, currency)
		}
		return fmt.Errorf("failed to check currency enablement: %w", err)
	}
	if !companyCurrency.IsEnabled {
		return fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrCurrencyNotEnabled, currency)
	}
	return nil
}

// GetVoucherByID implements portssvc.VoucherSvcFacade.
func (s *voucherService) GetVoucherByID(ctx context.Context, companyID, voucherID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}

	// Obscure cross-tenant existence.
	if voucher.CompanyID != companyID {
		logger.Warn("Voucher requested from wrong company", slog.String("voucher_id", voucherID), slog.String("requested_company", companyID))
		return nil, apperrors.ErrNotFound
	}

	lines, err := s.voucherRepo.FindLinesByVoucherID(ctx, voucherID)
	if err != nil {
		logger.Error("Failed to fetch voucher lines", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to retrieve lines for voucher %s: %w", voucherID, apperrors.ErrInternal)
	}
	voucher.Lines = lines
	voucher.ComputeTotals()

	return voucher, nil
}

// ListVouchers implements portssvc.VoucherSvcFacade.
func (s *voucherService) ListVouchers(ctx context.Context, companyID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filter := portsrepo.VoucherListFilter{
		Type:     domain.VoucherType(strings.ToUpper(params.Type)),
		Status:   domain.VoucherStatus(strings.ToUpper(params.Status)),
		DateFrom: params.DateFrom,
		DateTo:   params.DateTo,
	}

	vouchers, nextToken, err := s.voucherRepo.ListVouchersByCompany(ctx, companyID, filter, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list vouchers", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to retrieve vouchers: %w", err)
	}

	responses := make([]dto.VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = dto.ToVoucherResponse(&vouchers[i])
	}

	return &dto.ListVouchersResponse{Vouchers: responses, NextToken: nextToken}, nil
}

// UpdateVoucherStatus implements portssvc.VoucherSvcFacade. Workflow rules
// (who may approve, when cancellation is allowed) live with the caller; this
// only records the outcome.
func (s *voucherService) UpdateVoucherStatus(ctx context.Context, companyID, voucherID string, status domain.VoucherStatus, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	switch status {
	case domain.Draft, domain.Approved, domain.Cancelled:
	default:
		return fmt.Errorf("%w: unknown voucher status '%s'", apperrors.ErrValidation, status)
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	if voucher.CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	if voucher.Status == status {
		return fmt.Errorf("%w: voucher %s is already %s", apperrors.ErrConflict, voucher.VoucherNo, status)
	}

	if err := s.voucherRepo.UpdateVoucherStatus(ctx, voucherID, status, userID, time.Now().UTC()); err != nil {
		logger.Error("Failed to update voucher status", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return fmt.Errorf("failed to update status of voucher %s: %w", voucherID, err)
	}

	logger.Info("Voucher status updated", slog.String("voucher_no", voucher.VoucherNo), slog.String("status", string(status)))
	return nil
}
