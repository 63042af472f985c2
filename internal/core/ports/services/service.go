package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Currency        CurrencySvcFacade
	Company         CompanySvcFacade
	CompanyCurrency CompanyCurrencySvcFacade
	ExchangeRate    ExchangeRateSvcFacade
	RateResolution  RateResolutionSvcFacade
	RateDeviation   RateDeviationSvcFacade
	Voucher         VoucherSvcFacade
}
