package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mosaicfin/ledger_backend/internal/apperrors"
	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
	"github.com/mosaicfin/ledger_backend/internal/core/services"
	"github.com/mosaicfin/ledger_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockCCRepo      *MockCompanyCurrencyRepository
	mockCompanySvc  *MockCompanyService
	mockCurrencySvc *MockCurrencyService
	mockRateResSvc  *MockRateResolutionService
	mockNumberSvc   *MockVoucherNumberService
	service         portssvc.VoucherSvcFacade

	companyID     string
	userID        string
	cashAccountID string
	expAccountID  string
	revAccountID  string
	date          time.Time
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockCCRepo = new(MockCompanyCurrencyRepository)
	suite.mockCompanySvc = new(MockCompanyService)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.mockRateResSvc = new(MockRateResolutionService)
	suite.mockNumberSvc = new(MockVoucherNumberService)
	suite.service = services.NewVoucherService(
		suite.mockVoucherRepo,
		suite.mockCCRepo,
		suite.mockCompanySvc,
		suite.mockCurrencySvc,
		suite.mockRateResSvc,
		suite.mockNumberSvc,
	)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.cashAccountID = uuid.NewString()
	suite.expAccountID = uuid.NewString()
	suite.revAccountID = uuid.NewString()
	suite.date = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
}

func (suite *VoucherServiceTestSuite) expectBaseCurrency(code string) {
	suite.expectBaseCurrencyWithPlaces(code, 2)
}

func (suite *VoucherServiceTestSuite) expectBaseCurrencyWithPlaces(code string, places int) {
	suite.mockCompanySvc.On("GetBaseCurrency", mock.Anything, suite.companyID).Return(code, nil)
	suite.mockCurrencySvc.On("GetCurrencyByCode", mock.Anything, code).
		Return(&domain.Currency{CurrencyCode: code, DecimalPlaces: places, IsActive: true}, nil)
}

func (suite *VoucherServiceTestSuite) TestCreatePaymentVoucher_BaseCurrency() {
	ctx := context.Background()
	req := dto.CreatePaymentVoucherRequest{
		Date:             suite.date,
		Amount:           decimal.NewFromInt(150),
		CashAccountID:    suite.cashAccountID,
		ExpenseAccountID: suite.expAccountID,
		Description:      "Office rent June",
	}

	suite.expectBaseCurrency("USD")
	suite.mockNumberSvc.On("NextVoucherNumber", mock.Anything, suite.companyID, domain.Payment, 2025).
		Return("PAY-2025-001", nil).Once()
	suite.mockVoucherRepo.On("ExistsByVoucherNo", mock.Anything, suite.companyID, "PAY-2025-001").Return(false, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", mock.Anything, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.VoucherLine")).
		Return(nil).Once()

	voucher, err := suite.service.CreatePaymentVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("PAY-2025-001", voucher.VoucherNo)
	suite.Equal(domain.Payment, voucher.Type)
	suite.Equal(domain.Draft, voucher.Status)
	suite.Equal("USD", voucher.CurrencyCode)
	suite.Equal("USD", voucher.BaseCurrencyCode)
	suite.True(voucher.ExchangeRate.Equal(decimal.NewFromInt(1)))

	suite.Require().Len(voucher.Lines, 2)
	suite.Equal(suite.expAccountID, voucher.Lines[0].AccountID)
	suite.Equal(domain.Debit, voucher.Lines[0].Side)
	suite.Equal(suite.cashAccountID, voucher.Lines[1].AccountID)
	suite.Equal(domain.Credit, voucher.Lines[1].Side)
	suite.True(voucher.Lines[0].BaseAmount.Equal(decimal.NewFromInt(150)))

	suite.True(voucher.TotalDebit.Equal(decimal.NewFromInt(150)))
	suite.True(voucher.TotalCredit.Equal(decimal.NewFromInt(150)))
	suite.True(voucher.IsBalanced())

	// Same-currency postings never consult the rate store.
	suite.mockRateResSvc.AssertNotCalled(suite.T(), "Resolve")
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateReceiptVoucher_Success() {
	ctx := context.Background()
	req := dto.CreateReceiptVoucherRequest{
		Date:             suite.date,
		Amount:           decimal.NewFromInt(500),
		CashAccountID:    suite.cashAccountID,
		RevenueAccountID: suite.revAccountID,
		Description:      "Customer invoice settled",
	}

	suite.expectBaseCurrency("USD")
	suite.mockNumberSvc.On("NextVoucherNumber", mock.Anything, suite.companyID, domain.Receipt, 2025).
		Return("RCV-2025-007", nil).Once()
	suite.mockVoucherRepo.On("ExistsByVoucherNo", mock.Anything, suite.companyID, "RCV-2025-007").Return(false, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	voucher, err := suite.service.CreateReceiptVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("RCV-2025-007", voucher.VoucherNo)
	suite.Require().Len(voucher.Lines, 2)
	// Receipt flips the sides relative to payment: cash is debited.
	suite.Equal(suite.cashAccountID, voucher.Lines[0].AccountID)
	suite.Equal(domain.Debit, voucher.Lines[0].Side)
	suite.Equal(suite.revAccountID, voucher.Lines[1].AccountID)
	suite.Equal(domain.Credit, voucher.Lines[1].Side)
}

func (suite *VoucherServiceTestSuite) TestCreateJournalVoucher_ForeignCurrency() {
	ctx := context.Background()
	req := dto.CreateJournalVoucherRequest{
		Date:         suite.date,
		Description:  "EUR supplier accrual",
		CurrencyCode: "EUR",
		Lines: []dto.VoucherLineInput{
			{AccountID: suite.expAccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.cashAccountID, Credit: decimal.NewFromInt(100)},
		},
	}

	suite.expectBaseCurrency("USD")
	suite.mockCCRepo.On("FindCompanyCurrency", mock.Anything, suite.companyID, "EUR").
		Return(&domain.CompanyCurrency{CompanyID: suite.companyID, CurrencyCode: "EUR", IsEnabled: true}, nil).Once()
	suite.mockRateResSvc.On("Resolve", mock.Anything, suite.companyID, "EUR", "USD", suite.date).
		Return(domain.RateResolution{
			Rate: &domain.ExchangeRate{
				FromCurrencyCode: "EUR",
				ToCurrencyCode:   "USD",
				Rate:             decimal.NewFromFloat(1.10),
				DateEffective:    suite.date,
			},
			Source: domain.RateSourceExactDate,
		}, nil).Once()
	suite.mockNumberSvc.On("NextVoucherNumber", mock.Anything, suite.companyID, domain.JournalEntry, 2025).
		Return("JNL-2025-003", nil).Once()
	suite.mockVoucherRepo.On("ExistsByVoucherNo", mock.Anything, suite.companyID, "JNL-2025-003").Return(false, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	voucher, err := suite.service.CreateJournalVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("EUR", voucher.CurrencyCode)
	suite.True(voucher.ExchangeRate.Equal(decimal.NewFromFloat(1.10)))
	suite.Require().Len(voucher.Lines, 2)
	// Amounts stay in EUR; base amounts carry the converted USD value.
	suite.True(voucher.Lines[0].Amount.Equal(decimal.NewFromInt(100)))
	suite.True(voucher.Lines[0].BaseAmount.Equal(decimal.NewFromInt(110)))
	suite.True(voucher.TotalDebit.Equal(decimal.NewFromInt(110)))
	suite.True(voucher.TotalCredit.Equal(decimal.NewFromInt(110)))
	suite.True(voucher.IsBalanced())
}

func (suite *VoucherServiceTestSuite) TestCreateJournalVoucher_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalVoucherRequest{
		Date:        suite.date,
		Description: "Broken entry",
		Lines: []dto.VoucherLineInput{
			{AccountID: suite.expAccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.cashAccountID, Credit: decimal.NewFromInt(90)},
		},
	}

	voucher, err := suite.service.CreateJournalVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrUnbalancedEntry)
	// A rejected posting consumes no voucher number and writes nothing.
	suite.mockNumberSvc.AssertNotCalled(suite.T(), "NextVoucherNumber")
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher")
}

func (suite *VoucherServiceTestSuite) TestCreateJournalVoucher_BothSidesOnOneLine() {
	ctx := context.Background()
	req := dto.CreateJournalVoucherRequest{
		Date:        suite.date,
		Description: "Both sides",
		Lines: []dto.VoucherLineInput{
			{AccountID: suite.expAccountID, Debit: decimal.NewFromInt(50), Credit: decimal.NewFromInt(50)},
			{AccountID: suite.cashAccountID, Credit: decimal.NewFromInt(50)},
		},
	}

	_, err := suite.service.CreateJournalVoucher(ctx, suite.companyID, req, suite.userID)

	suite.ErrorIs(err, services.ErrBothSides)
}

func (suite *VoucherServiceTestSuite) TestCreateJournalVoucher_TooFewLines() {
	ctx := context.Background()
	req := dto.CreateJournalVoucherRequest{
		Date:        suite.date,
		Description: "One leg",
		Lines: []dto.VoucherLineInput{
			{AccountID: suite.expAccountID, Debit: decimal.NewFromInt(50)},
		},
	}

	_, err := suite.service.CreateJournalVoucher(ctx, suite.companyID, req, suite.userID)

	suite.ErrorIs(err, services.ErrMinLines)
}

func (suite *VoucherServiceTestSuite) TestCreatePaymentVoucher_NoRate() {
	ctx := context.Background()
	req := dto.CreatePaymentVoucherRequest{
		Date:             suite.date,
		Amount:           decimal.NewFromInt(100),
		CashAccountID:    suite.cashAccountID,
		ExpenseAccountID: suite.expAccountID,
		Description:      "EUR payment without any rate",
		CurrencyCode:     "EUR",
	}

	suite.expectBaseCurrency("USD")
	suite.mockCCRepo.On("FindCompanyCurrency", mock.Anything, suite.companyID, "EUR").
		Return(&domain.CompanyCurrency{CompanyID: suite.companyID, CurrencyCode: "EUR", IsEnabled: true}, nil).Once()
	suite.mockRateResSvc.On("Resolve", mock.Anything, suite.companyID, "EUR", "USD", suite.date).
		Return(domain.RateResolution{Source: domain.RateSourceNone}, nil).Once()

	voucher, err := suite.service.CreatePaymentVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Nil(voucher)
	suite.ErrorIs(err, services.ErrRateNotFound)
	suite.mockNumberSvc.AssertNotCalled(suite.T(), "NextVoucherNumber")
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher")
}

func (suite *VoucherServiceTestSuite) TestCreatePaymentVoucher_CurrencyNotEnabled() {
	ctx := context.Background()
	req := dto.CreatePaymentVoucherRequest{
		Date:             suite.date,
		Amount:           decimal.NewFromInt(100),
		CashAccountID:    suite.cashAccountID,
		ExpenseAccountID: suite.expAccountID,
		Description:      "Payment in unenabled currency",
		CurrencyCode:     "JPY",
	}

	suite.expectBaseCurrency("USD")
	suite.mockCCRepo.On("FindCompanyCurrency", mock.Anything, suite.companyID, "JPY").
		Return(nil, apperrors.ErrNotFound).Once()

	voucher, err := suite.service.CreatePaymentVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Nil(voucher)
	suite.ErrorIs(err, services.ErrCurrencyNotEnabled)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateResSvc.AssertNotCalled(suite.T(), "Resolve")
}

func (suite *VoucherServiceTestSuite) TestCreatePaymentVoucher_SameAccount() {
	ctx := context.Background()
	req := dto.CreatePaymentVoucherRequest{
		Date:             suite.date,
		Amount:           decimal.NewFromInt(100),
		CashAccountID:    suite.cashAccountID,
		ExpenseAccountID: suite.cashAccountID,
		Description:      "Self transfer",
	}

	_, err := suite.service.CreatePaymentVoucher(ctx, suite.companyID, req, suite.userID)

	suite.ErrorIs(err, services.ErrSameAccount)
}

func (suite *VoucherServiceTestSuite) TestCreateOpeningBalanceVoucher_Success() {
	ctx := context.Background()
	equityAccountID := uuid.NewString()
	req := dto.CreateOpeningBalanceRequest{
		Date:        suite.date,
		Description: "Opening balances FY2025",
		Lines: []dto.VoucherLineInput{
			{AccountID: suite.cashAccountID, Debit: decimal.NewFromInt(10000)},
			{AccountID: equityAccountID, Credit: decimal.NewFromInt(10000)},
		},
	}

	suite.expectBaseCurrency("USD")
	suite.mockNumberSvc.On("NextVoucherNumber", mock.Anything, suite.companyID, domain.OpeningBalance, 2025).
		Return("OPB-2025-001", nil).Once()
	suite.mockVoucherRepo.On("ExistsByVoucherNo", mock.Anything, suite.companyID, "OPB-2025-001").Return(false, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	voucher, err := suite.service.CreateOpeningBalanceVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.OpeningBalance, voucher.Type)
	suite.Equal("OPB-2025-001", voucher.VoucherNo)
	suite.True(voucher.IsBalanced())
}

func (suite *VoucherServiceTestSuite) TestCreateOpeningBalanceVoucher_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateOpeningBalanceRequest{
		Date:        suite.date,
		Description: "Broken opening",
		Lines: []dto.VoucherLineInput{
			{AccountID: suite.cashAccountID, Debit: decimal.NewFromInt(10000)},
			{AccountID: uuid.NewString(), Credit: decimal.NewFromInt(9000)},
		},
	}

	_, err := suite.service.CreateOpeningBalanceVoucher(ctx, suite.companyID, req, suite.userID)

	suite.ErrorIs(err, services.ErrOpeningUnbalanced)
}

func (suite *VoucherServiceTestSuite) TestCreateJournalVoucher_RoundsBaseAmounts() {
	ctx := context.Background()
	req := dto.CreateJournalVoucherRequest{
		Date:         suite.date,
		Description:  "EUR accrual with awkward rate",
		CurrencyCode: "EUR",
		Lines: []dto.VoucherLineInput{
			{AccountID: suite.expAccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.cashAccountID, Credit: decimal.NewFromInt(100)},
		},
	}

	suite.expectBaseCurrency("USD")
	suite.mockCCRepo.On("FindCompanyCurrency", mock.Anything, suite.companyID, "EUR").
		Return(&domain.CompanyCurrency{CompanyID: suite.companyID, CurrencyCode: "EUR", IsEnabled: true}, nil).Once()
	suite.mockRateResSvc.On("Resolve", mock.Anything, suite.companyID, "EUR", "USD", suite.date).
		Return(domain.RateResolution{
			Rate:   &domain.ExchangeRate{FromCurrencyCode: "EUR", ToCurrencyCode: "USD", Rate: decimal.NewFromFloat(1.23456)},
			Source: domain.RateSourceExactDate,
		}, nil).Once()
	suite.mockNumberSvc.On("NextVoucherNumber", mock.Anything, suite.companyID, domain.JournalEntry, 2025).
		Return("JNL-2025-009", nil).Once()
	suite.mockVoucherRepo.On("ExistsByVoucherNo", mock.Anything, suite.companyID, "JNL-2025-009").Return(false, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	voucher, err := suite.service.CreateJournalVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	// 100 x 1.23456 = 123.456 rounds to the base currency's two places.
	suite.True(voucher.Lines[0].BaseAmount.Equal(decimal.NewFromFloat(123.46)),
		"got %s", voucher.Lines[0].BaseAmount)
	suite.True(voucher.TotalDebit.Equal(decimal.NewFromFloat(123.46)))
	suite.True(voucher.TotalCredit.Equal(decimal.NewFromFloat(123.46)))
}

func (suite *VoucherServiceTestSuite) TestCreateJournalVoucher_ZeroDecimalBase() {
	ctx := context.Background()
	req := dto.CreateJournalVoucherRequest{
		Date:         suite.date,
		Description:  "USD expense in yen books",
		CurrencyCode: "USD",
		Lines: []dto.VoucherLineInput{
			{AccountID: suite.expAccountID, Debit: decimal.NewFromInt(10)},
			{AccountID: suite.cashAccountID, Credit: decimal.NewFromInt(10)},
		},
	}

	suite.expectBaseCurrencyWithPlaces("JPY", 0)
	suite.mockCCRepo.On("FindCompanyCurrency", mock.Anything, suite.companyID, "USD").
		Return(&domain.CompanyCurrency{CompanyID: suite.companyID, CurrencyCode: "USD", IsEnabled: true}, nil).Once()
	suite.mockRateResSvc.On("Resolve", mock.Anything, suite.companyID, "USD", "JPY", suite.date).
		Return(domain.RateResolution{
			Rate:   &domain.ExchangeRate{FromCurrencyCode: "USD", ToCurrencyCode: "JPY", Rate: decimal.NewFromFloat(147.35)},
			Source: domain.RateSourceMostRecent,
		}, nil).Once()
	suite.mockNumberSvc.On("NextVoucherNumber", mock.Anything, suite.companyID, domain.JournalEntry, 2025).
		Return("JNL-2025-010", nil).Once()
	suite.mockVoucherRepo.On("ExistsByVoucherNo", mock.Anything, suite.companyID, "JNL-2025-010").Return(false, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	voucher, err := suite.service.CreateJournalVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	// 10 x 147.35 = 1473.5 rounds to a whole yen amount.
	suite.True(voucher.Lines[0].BaseAmount.Equal(decimal.NewFromInt(1474)),
		"got %s", voucher.Lines[0].BaseAmount)
}

func (suite *VoucherServiceTestSuite) TestCreatePaymentVoucher_NumberCollision() {
	ctx := context.Background()
	req := dto.CreatePaymentVoucherRequest{
		Date:             suite.date,
		Amount:           decimal.NewFromInt(150),
		CashAccountID:    suite.cashAccountID,
		ExpenseAccountID: suite.expAccountID,
		Description:      "Office rent June",
	}

	suite.expectBaseCurrency("USD")
	suite.mockNumberSvc.On("NextVoucherNumber", mock.Anything, suite.companyID, domain.Payment, 2025).
		Return("PAY-2025-001", nil).Once()
	suite.mockVoucherRepo.On("ExistsByVoucherNo", mock.Anything, suite.companyID, "PAY-2025-001").Return(true, nil).Once()

	voucher, err := suite.service.CreatePaymentVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestGetVoucherByID_WrongCompany() {
	ctx := context.Background()
	voucherID := uuid.NewString()

	suite.mockVoucherRepo.On("FindVoucherByID", mock.Anything, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, CompanyID: uuid.NewString()}, nil).Once()

	voucher, err := suite.service.GetVoucherByID(ctx, suite.companyID, voucherID)

	// Cross-tenant lookups read as not found, not forbidden.
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "FindLinesByVoucherID")
}

func (suite *VoucherServiceTestSuite) TestGetVoucherByID_Success() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	rate := decimal.NewFromInt(1)

	suite.mockVoucherRepo.On("FindVoucherByID", mock.Anything, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, CompanyID: suite.companyID}, nil).Once()
	suite.mockVoucherRepo.On("FindLinesByVoucherID", mock.Anything, voucherID).
		Return([]domain.VoucherLine{
			{LineID: uuid.NewString(), VoucherID: voucherID, Side: domain.Debit, Amount: decimal.NewFromInt(75), BaseAmount: decimal.NewFromInt(75), ExchangeRate: rate},
			{LineID: uuid.NewString(), VoucherID: voucherID, Side: domain.Credit, Amount: decimal.NewFromInt(75), BaseAmount: decimal.NewFromInt(75), ExchangeRate: rate},
		}, nil).Once()

	voucher, err := suite.service.GetVoucherByID(ctx, suite.companyID, voucherID)

	suite.Require().NoError(err)
	suite.Len(voucher.Lines, 2)
	suite.True(voucher.TotalDebit.Equal(decimal.NewFromInt(75)))
	suite.True(voucher.TotalCredit.Equal(decimal.NewFromInt(75)))
}

func (suite *VoucherServiceTestSuite) TestListVouchers_DefaultLimit() {
	ctx := context.Background()

	suite.mockVoucherRepo.On("ListVouchersByCompany", mock.Anything, suite.companyID, mock.Anything, 20, (*string)(nil)).
		Return([]domain.Voucher{}, nil, nil).Once()

	page, err := suite.service.ListVouchers(ctx, suite.companyID, dto.ListVouchersParams{})

	suite.Require().NoError(err)
	suite.Empty(page.Vouchers)
	suite.Nil(page.NextToken)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucherStatus_Success() {
	ctx := context.Background()
	voucherID := uuid.NewString()

	suite.mockVoucherRepo.On("FindVoucherByID", mock.Anything, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, CompanyID: suite.companyID, VoucherNo: "PAY-2025-001", Status: domain.Draft}, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucherStatus", mock.Anything, voucherID, domain.Approved, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.UpdateVoucherStatus(ctx, suite.companyID, voucherID, domain.Approved, suite.userID)

	suite.NoError(err)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucherStatus_UnknownStatus() {
	ctx := context.Background()

	err := suite.service.UpdateVoucherStatus(ctx, suite.companyID, uuid.NewString(), domain.VoucherStatus("POSTED"), suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "FindVoucherByID", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucherStatus_AlreadyInStatus() {
	ctx := context.Background()
	voucherID := uuid.NewString()

	suite.mockVoucherRepo.On("FindVoucherByID", mock.Anything, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, CompanyID: suite.companyID, VoucherNo: "JNL-2025-004", Status: domain.Cancelled}, nil).Once()

	err := suite.service.UpdateVoucherStatus(ctx, suite.companyID, voucherID, domain.Cancelled, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "UpdateVoucherStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucherStatus_WrongCompany() {
	ctx := context.Background()
	voucherID := uuid.NewString()

	suite.mockVoucherRepo.On("FindVoucherByID", mock.Anything, voucherID).
		Return(&domain.Voucher{VoucherID: voucherID, CompanyID: uuid.NewString(), Status: domain.Draft}, nil).Once()

	err := suite.service.UpdateVoucherStatus(ctx, suite.companyID, voucherID, domain.Approved, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "UpdateVoucherStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
