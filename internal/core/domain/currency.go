package domain

// Currency represents a currency known to the global catalog.
// Currencies are never deleted, only deactivated.
type Currency struct {
	CurrencyCode  string `json:"currencyCode"`  // Primary Key, 3-letter uppercase (e.g., "USD")
	Name          string `json:"name"`          // e.g., "US Dollar"
	Symbol        string `json:"symbol"`        // e.g., "$"
	DecimalPlaces int    `json:"decimalPlaces"` // 0..4, drives rounding and display
	IsActive      bool   `json:"isActive"`
	AuditFields
}
