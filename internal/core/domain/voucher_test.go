package domain_test

import (
	"testing"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVoucher_ComputeTotals(t *testing.T) {
	v := domain.Voucher{
		Lines: []domain.VoucherLine{
			{Side: domain.Debit, BaseAmount: decimal.NewFromInt(100)},
			{Side: domain.Debit, BaseAmount: decimal.NewFromInt(50)},
			{Side: domain.Credit, BaseAmount: decimal.NewFromInt(150)},
		},
	}

	v.ComputeTotals()

	assert.True(t, v.TotalDebit.Equal(decimal.NewFromInt(150)), "total debit should be 150, got %s", v.TotalDebit)
	assert.True(t, v.TotalCredit.Equal(decimal.NewFromInt(150)), "total credit should be 150, got %s", v.TotalCredit)
}

func TestVoucher_ComputeTotals_Empty(t *testing.T) {
	v := domain.Voucher{}
	v.ComputeTotals()

	assert.True(t, v.TotalDebit.IsZero())
	assert.True(t, v.TotalCredit.IsZero())
	assert.True(t, v.IsBalanced(), "an empty voucher is trivially balanced")
}

func TestVoucher_IsBalanced(t *testing.T) {
	tests := []struct {
		name        string
		totalDebit  decimal.Decimal
		totalCredit decimal.Decimal
		want        bool
	}{
		{
			name:        "exactly balanced",
			totalDebit:  decimal.NewFromInt(100),
			totalCredit: decimal.NewFromInt(100),
			want:        true,
		},
		{
			name:        "within epsilon",
			totalDebit:  decimal.NewFromFloat(100.00),
			totalCredit: decimal.NewFromFloat(100.01),
			want:        true,
		},
		{
			name:        "just outside epsilon",
			totalDebit:  decimal.NewFromFloat(100.00),
			totalCredit: decimal.NewFromFloat(100.02),
			want:        false,
		},
		{
			name:        "grossly unbalanced",
			totalDebit:  decimal.NewFromInt(100),
			totalCredit: decimal.NewFromInt(90),
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := domain.Voucher{TotalDebit: tt.totalDebit, TotalCredit: tt.totalCredit}
			assert.Equal(t, tt.want, v.IsBalanced())
		})
	}
}

func TestVoucherType_NumberPrefix(t *testing.T) {
	assert.Equal(t, "PAY", domain.Payment.NumberPrefix())
	assert.Equal(t, "RCV", domain.Receipt.NumberPrefix())
	assert.Equal(t, "JNL", domain.JournalEntry.NumberPrefix())
	assert.Equal(t, "OPB", domain.OpeningBalance.NumberPrefix())
	assert.Equal(t, "VCH", domain.VoucherType("SOMETHING_ELSE").NumberPrefix())
}
