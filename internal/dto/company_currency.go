package dto

import (
	"time"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EnableCompanyCurrencyRequest defines the structure for enabling a currency
// for a tenant. The initial rate is mandatory: enabling and seeding the rate
// store happen as one operation.
type EnableCompanyCurrencyRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	InitialRate  decimal.Decimal `json:"initialRate" binding:"required"`
}

// CompanyCurrencyResponse defines the structure for API responses containing
// per-tenant currency state.
type CompanyCurrencyResponse struct {
	CompanyID    string     `json:"companyID"`
	CurrencyCode string     `json:"currencyCode"`
	IsEnabled    bool       `json:"isEnabled"`
	EnabledAt    time.Time  `json:"enabledAt"`
	DisabledAt   *time.Time `json:"disabledAt,omitempty"`
}

// ToCompanyCurrencyResponse converts a domain.CompanyCurrency to its response DTO.
func ToCompanyCurrencyResponse(cc *domain.CompanyCurrency) CompanyCurrencyResponse {
	return CompanyCurrencyResponse{
		CompanyID:    cc.CompanyID,
		CurrencyCode: cc.CurrencyCode,
		IsEnabled:    cc.IsEnabled,
		EnabledAt:    cc.EnabledAt,
		DisabledAt:   cc.DisabledAt,
	}
}

// ToListCompanyCurrencyResponse converts a slice of domain company currencies
// to response DTOs.
func ToListCompanyCurrencyResponse(ccs []domain.CompanyCurrency) []CompanyCurrencyResponse {
	responses := make([]CompanyCurrencyResponse, len(ccs))
	for i := range ccs {
		responses[i] = ToCompanyCurrencyResponse(&ccs[i])
	}
	return responses
}
