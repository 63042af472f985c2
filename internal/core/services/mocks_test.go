package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portsrepo "github.com/mosaicfin/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
	"github.com/mosaicfin/ledger_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryWithTx = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error {
	args := m.Called(ctx, voucher, lines)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.VoucherLine, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VoucherLine), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchersByCompany(ctx context.Context, companyID string, filter portsrepo.VoucherListFilter, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	args := m.Called(ctx, companyID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Voucher), returnedNextToken, args.Error(2)
}

func (m *MockVoucherRepository) ExistsByVoucherNo(ctx context.Context, companyID, voucherNo string) (bool, error) {
	args := m.Called(ctx, companyID, voucherNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoucherRepository) CountByCurrency(ctx context.Context, companyID, currencyCode string) (int, error) {
	args := m.Called(ctx, companyID, currencyCode)
	return args.Int(0), args.Error(1)
}

func (m *MockVoucherRepository) UpdateVoucherStatus(ctx context.Context, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, voucherID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockVoucherRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockVoucherRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockVoucherRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock CompanyCurrencyRepository ---
type MockCompanyCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyCurrencyRepositoryFacade = (*MockCompanyCurrencyRepository)(nil)

func (m *MockCompanyCurrencyRepository) FindCompanyCurrency(ctx context.Context, companyID, currencyCode string) (*domain.CompanyCurrency, error) {
	args := m.Called(ctx, companyID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyCurrency), args.Error(1)
}

func (m *MockCompanyCurrencyRepository) ListCompanyCurrencies(ctx context.Context, companyID string) ([]domain.CompanyCurrency, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyCurrency), args.Error(1)
}

func (m *MockCompanyCurrencyRepository) EnableCurrencyWithRate(ctx context.Context, companyCurrency domain.CompanyCurrency, initialRate *domain.ExchangeRate) error {
	args := m.Called(ctx, companyCurrency, initialRate)
	return args.Error(0)
}

func (m *MockCompanyCurrencyRepository) DisableCompanyCurrency(ctx context.Context, companyID, currencyCode string, disabledBy string, disabledAt time.Time) error {
	args := m.Called(ctx, companyID, currencyCode, disabledBy, disabledAt)
	return args.Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

func (m *MockExchangeRateRepository) FindRateForDate(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, companyID, fromCurrencyCode, toCurrencyCode, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindMostRecentRate(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, companyID, fromCurrencyCode, toCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListRecentRates(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, limit int) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, companyID, fromCurrencyCode, toCurrencyCode, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CountByCurrency(ctx context.Context, companyID, currencyCode string) (int, error) {
	args := m.Called(ctx, companyID, currencyCode)
	return args.Int(0), args.Error(1)
}

// --- Mock VoucherNumberRepository ---
type MockVoucherNumberRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherNumberRepository = (*MockVoucherNumberRepository)(nil)

func (m *MockVoucherNumberRepository) NextSequence(ctx context.Context, companyID string, voucherType domain.VoucherType, fiscalYear int) (int64, error) {
	args := m.Called(ctx, companyID, voucherType, fiscalYear)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

func (m *MockCompanyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) GetBaseCurrency(ctx context.Context, companyID string) (string, error) {
	args := m.Called(ctx, companyID)
	return args.String(0), args.Error(1)
}

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) DeactivateCurrency(ctx context.Context, currencyCode string, userID string) error {
	args := m.Called(ctx, currencyCode, userID)
	return args.Error(0)
}

// --- Mock RateResolutionService ---
type MockRateResolutionService struct {
	mock.Mock
}

var _ portssvc.RateResolutionSvcFacade = (*MockRateResolutionService)(nil)

func (m *MockRateResolutionService) Resolve(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, date time.Time) (domain.RateResolution, error) {
	args := m.Called(ctx, companyID, fromCurrencyCode, toCurrencyCode, date)
	return args.Get(0).(domain.RateResolution), args.Error(1)
}

// --- Mock VoucherNumberService ---
type MockVoucherNumberService struct {
	mock.Mock
}

var _ portssvc.VoucherNumberSvcFacade = (*MockVoucherNumberService)(nil)

func (m *MockVoucherNumberService) NextVoucherNumber(ctx context.Context, companyID string, voucherType domain.VoucherType, fiscalYear int) (string, error) {
	args := m.Called(ctx, companyID, voucherType, fiscalYear)
	return args.String(0), args.Error(1)
}

// --- Mock RateDeviationService ---
type MockRateDeviationService struct {
	mock.Mock
}

var _ portssvc.RateDeviationSvcFacade = (*MockRateDeviationService)(nil)

func (m *MockRateDeviationService) DetectDeviations(ctx context.Context, companyID, fromCurrencyCode, toCurrencyCode string, proposedRate decimal.Decimal) ([]domain.RateWarning, error) {
	args := m.Called(ctx, companyID, fromCurrencyCode, toCurrencyCode, proposedRate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateWarning), args.Error(1)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}
