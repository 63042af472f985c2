package domain

import "github.com/shopspring/decimal"

// RateWarningCode identifies the kind of advisory raised against a proposed rate.
type RateWarningCode string

const (
	// WarningFirstRate is informational: no history exists for the pair yet.
	WarningFirstRate RateWarningCode = "FIRST_RATE"
	// WarningPercentageDeviation flags a proposed rate far from the recent average.
	WarningPercentageDeviation RateWarningCode = "PERCENTAGE_DEVIATION"
	// WarningDecimalShift flags a proposed rate that looks like a misplaced decimal point.
	WarningDecimalShift RateWarningCode = "DECIMAL_SHIFT"
)

// RateWarning is an advisory result from the deviation detector. Warnings never
// block a posting; they exist to catch typos and fraud before a human confirms.
type RateWarning struct {
	Code          RateWarningCode  `json:"code"`
	Message       string           `json:"message"`
	DeviationPct  *decimal.Decimal `json:"deviationPct,omitempty"`  // Set for PERCENTAGE_DEVIATION
	Magnitude     string           `json:"magnitude,omitempty"`     // Set for DECIMAL_SHIFT (e.g., "10x")
	SuggestedRate *decimal.Decimal `json:"suggestedRate,omitempty"` // Average or prior rate, when comparable
}
