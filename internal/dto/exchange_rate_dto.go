package dto

import (
	"time"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveReferenceRateRequest defines the structure for appending a reference rate.
type SaveReferenceRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,len=3,uppercase"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,len=3,uppercase"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	DateEffective    time.Time       `json:"dateEffective" binding:"required"`
}

// CheckRateDeviationRequest defines the structure for an advisory deviation check.
type CheckRateDeviationRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,len=3,uppercase"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,len=3,uppercase"`
	ProposedRate     decimal.Decimal `json:"proposedRate" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing rate details.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	CompanyID        string          `json:"companyID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	Origin           string          `json:"origin"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// RateResolutionResponse reports the outcome of a rate lookup, including the
// fallback tag so callers can surface staleness to the user.
type RateResolutionResponse struct {
	Source string                `json:"source"`
	Rate   *ExchangeRateResponse `json:"rate,omitempty"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   rate.ExchangeRateID,
		CompanyID:        rate.CompanyID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		DateEffective:    rate.DateEffective,
		Origin:           string(rate.Origin),
		CreatedAt:        rate.CreatedAt,
		CreatedBy:        rate.CreatedBy,
	}
}

// ToRateResolutionResponse converts a domain.RateResolution to its response DTO.
func ToRateResolutionResponse(res domain.RateResolution) RateResolutionResponse {
	resp := RateResolutionResponse{Source: string(res.Source)}
	if res.Rate != nil {
		rate := ToExchangeRateResponse(res.Rate)
		resp.Rate = &rate
	}
	return resp
}

// RateWarningResponse is one advisory warning from the deviation detector.
type RateWarningResponse struct {
	Code          string           `json:"code"`
	Message       string           `json:"message"`
	DeviationPct  *decimal.Decimal `json:"deviationPct,omitempty"`
	Magnitude     string           `json:"magnitude,omitempty"`
	SuggestedRate *decimal.Decimal `json:"suggestedRate,omitempty"`
}

// ToRateWarningResponse converts a domain.RateWarning to its response DTO.
func ToRateWarningResponse(w *domain.RateWarning) RateWarningResponse {
	return RateWarningResponse{
		Code:          string(w.Code),
		Message:       w.Message,
		DeviationPct:  w.DeviationPct,
		Magnitude:     w.Magnitude,
		SuggestedRate: w.SuggestedRate,
	}
}

// ToListRateWarningResponse converts a slice of domain warnings to response DTOs.
func ToListRateWarningResponse(warnings []domain.RateWarning) []RateWarningResponse {
	responses := make([]RateWarningResponse, len(warnings))
	for i := range warnings {
		responses[i] = ToRateWarningResponse(&warnings[i])
	}
	return responses
}
