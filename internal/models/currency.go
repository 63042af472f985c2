package models

// Currency is a catalog currency row.
type Currency struct {
	CurrencyCode  string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	DecimalPlaces int    `json:"decimalPlaces"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}
