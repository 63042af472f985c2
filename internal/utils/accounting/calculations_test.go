package accounting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFiscalYear(t *testing.T) {
	assert.Equal(t, 2025, FiscalYear(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, FiscalYear(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, 2024, FiscalYear(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestWithinEpsilon(t *testing.T) {
	eps := decimal.NewFromFloat(0.01)

	assert.True(t, WithinEpsilon(decimal.NewFromInt(100), decimal.NewFromInt(100), eps))
	assert.True(t, WithinEpsilon(decimal.NewFromFloat(100.00), decimal.NewFromFloat(100.01), eps))
	assert.False(t, WithinEpsilon(decimal.NewFromFloat(100.00), decimal.NewFromFloat(100.02), eps))
	assert.True(t, WithinEpsilon(decimal.NewFromFloat(100.01), decimal.NewFromFloat(100.00), eps), "tolerance is symmetric")
}

func TestFormatVoucherNumber(t *testing.T) {
	assert.Equal(t, "PAY-2025-001", FormatVoucherNumber("PAY", 2025, 1))
	assert.Equal(t, "JNL-2024-042", FormatVoucherNumber("JNL", 2024, 42))
	assert.Equal(t, "RCV-2025-999", FormatVoucherNumber("RCV", 2025, 999))
	assert.Equal(t, "OPB-2025-1000", FormatVoucherNumber("OPB", 2025, 1000))
}
