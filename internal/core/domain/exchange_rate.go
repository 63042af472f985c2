package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateOrigin records how an exchange rate entered the store.
type RateOrigin string

const (
	RateOriginManual    RateOrigin = "MANUAL"
	RateOriginReference RateOrigin = "REFERENCE"
)

// ExchangeRate is a single immutable rate observation for a tenant.
// Multiple observations may exist for the same pair and date; ties are broken
// by the most recent CreatedAt. The store is append-only.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"` // Primary Key (UUID)
	CompanyID        string          `json:"companyID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"` // Uppercased on save
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // Uppercased on save
	Rate             decimal.Decimal `json:"rate"`             // Strictly positive
	DateEffective    time.Time       `json:"dateEffective"`
	Origin           RateOrigin      `json:"origin"`
	AuditFields
}
