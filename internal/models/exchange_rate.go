package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one immutable rate observation row.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"` // Primary Key (UUID)
	CompanyID        string          `json:"companyID"`      // FK -> Company.companyID
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	Origin           string          `json:"origin"` // MANUAL or REFERENCE
	AuditFields
}
