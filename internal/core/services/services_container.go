package services

import (
	portsrepo "github.com/mosaicfin/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
	"github.com/mosaicfin/ledger_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Company = NewCompanyService(repos.CompanyRepo)

	container.RateResolution = NewRateResolutionService(repos.ExchangeRateRepo)
	container.RateDeviation = NewRateDeviationService(repos.ExchangeRateRepo, cfg.DeviationHistoryLimit)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)

	container.CompanyCurrency = NewCompanyCurrencyService(
		repos.CompanyCurrencyRepo,
		container.Currency,
		container.Company,
		repos.AccountRepo,
		repos.VoucherRepo,
	)

	numberSvc := NewVoucherNumberService(repos.VoucherNumberRepo)
	container.Voucher = NewVoucherService(
		repos.VoucherRepo,
		repos.CompanyCurrencyRepo,
		container.Company,
		container.Currency,
		container.RateResolution,
		numberSvc,
	)

	return container
}
