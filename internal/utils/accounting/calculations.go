package accounting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FiscalYear returns the fiscal year a voucher date falls in. Numbering
// sequences reset per fiscal year; a non-calendar fiscal year only needs a
// change here.
func FiscalYear(date time.Time) int {
	return date.Year()
}

// DateOnly truncates a timestamp to its UTC calendar date. Rate effective
// dates carry day granularity; posting timestamps must be truncated before
// they ever reach the rate store.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// RoundToPlaces rounds an amount to a currency's decimal places.
// Example: 123.456 with places 2 rounds to 123.46; with places 0 to 123.
func RoundToPlaces(amount decimal.Decimal, places int) decimal.Decimal {
	return amount.Round(int32(places))
}

// WithinEpsilon reports whether two amounts are equal within the tolerance.
func WithinEpsilon(a, b, epsilon decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(epsilon)
}

// FormatVoucherNumber renders a sequence value as a human-readable voucher
// number, e.g. PAY-2025-001. The sequence part grows past three digits rather
// than wrapping.
func FormatVoucherNumber(prefix string, fiscalYear int, sequence int64) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, fiscalYear, sequence)
}
