package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service layer.
type RepositoryProvider struct {
	CurrencyRepo        CurrencyRepositoryFacade
	CompanyRepo         CompanyRepositoryFacade
	CompanyCurrencyRepo CompanyCurrencyRepositoryFacade
	ExchangeRateRepo    ExchangeRateRepositoryFacade
	VoucherRepo         VoucherRepositoryWithTx
	AccountRepo         AccountRepositoryFacade
	VoucherNumberRepo   VoucherNumberRepository
}
