package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/mosaicfin/ledger_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	companyRepo := newPgxCompanyRepository(dbPool)
	companyCurrencyRepo := newPgxCompanyCurrencyRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	voucherRepo := newPgxVoucherRepository(dbPool)
	voucherNumberRepo := newPgxVoucherNumberRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo:        currencyRepo,
		CompanyRepo:         companyRepo,
		CompanyCurrencyRepo: companyCurrencyRepo,
		ExchangeRateRepo:    exchangeRateRepo,
		VoucherRepo:         voucherRepo,
		AccountRepo:         accountRepo,
		VoucherNumberRepo:   voucherNumberRepo,
	}
}
