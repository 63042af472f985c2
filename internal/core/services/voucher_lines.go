package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	"github.com/mosaicfin/ledger_backend/internal/dto"
	"github.com/shopspring/decimal"
)

var (
	// ErrMinLines rejects vouchers with fewer than two posting legs.
	ErrMinLines = errors.New("At least 2 lines are required")
	// ErrBothSides rejects a single line carrying both a debit and a credit.
	ErrBothSides = errors.New("Cannot have both debit and credit")
	// ErrUnbalancedEntry rejects journal entries whose debits and credits differ.
	ErrUnbalancedEntry = errors.New("Entry is not balanced")
	// ErrOpeningUnbalanced rejects opening balances whose debits and credits differ.
	ErrOpeningUnbalanced = errors.New("Opening balances not balanced")
	// ErrAmountNotPositive rejects zero or negative line amounts.
	ErrAmountNotPositive = errors.New("Amount must be positive")
	// ErrDateRequired rejects vouchers without a date.
	ErrDateRequired = errors.New("Voucher date is required")
	// ErrSameAccount rejects payments/receipts where both legs hit one account.
	ErrSameAccount = errors.New("Cash and counterparty accounts must differ")
)

// rawLine is one posting leg before currency conversion: the shape the line
// builders emit and the posting pipeline consumes.
type rawLine struct {
	AccountID    string
	Side         domain.EntrySide
	Amount       decimal.Decimal
	Notes        string
	CostCenterID string
}

// voucherIntent is a validated transaction intent: kind, header fields and raw
// lines, ready for the shared posting pipeline. One builder per voucher kind
// produces it; the pipeline is generic over the kind.
type voucherIntent struct {
	Type         domain.VoucherType
	Date         time.Time
	Description  string
	CurrencyCode string // empty means the tenant's base currency
	Lines        []rawLine
}

// buildPaymentIntent validates a payment request and produces its two legs:
// debit the expense account, credit the cash account.
func buildPaymentIntent(req dto.CreatePaymentVoucherRequest) (voucherIntent, error) {
	if err := validateTwoLeg(req.Date, req.Amount, req.CashAccountID, req.ExpenseAccountID); err != nil {
		return voucherIntent{}, err
	}
	return voucherIntent{
		Type:         domain.Payment,
		Date:         req.Date,
		Description:  req.Description,
		CurrencyCode: req.CurrencyCode,
		Lines: []rawLine{
			{AccountID: req.ExpenseAccountID, Side: domain.Debit, Amount: req.Amount, CostCenterID: req.CostCenterID},
			{AccountID: req.CashAccountID, Side: domain.Credit, Amount: req.Amount, CostCenterID: req.CostCenterID},
		},
	}, nil
}

// buildReceiptIntent validates a receipt request and produces its two legs:
// debit the cash account, credit the revenue account.
func buildReceiptIntent(req dto.CreateReceiptVoucherRequest) (voucherIntent, error) {
	if err := validateTwoLeg(req.Date, req.Amount, req.CashAccountID, req.RevenueAccountID); err != nil {
		return voucherIntent{}, err
	}
	return voucherIntent{
		Type:         domain.Receipt,
		Date:         req.Date,
		Description:  req.Description,
		CurrencyCode: req.CurrencyCode,
		Lines: []rawLine{
			{AccountID: req.CashAccountID, Side: domain.Debit, Amount: req.Amount, CostCenterID: req.CostCenterID},
			{AccountID: req.RevenueAccountID, Side: domain.Credit, Amount: req.Amount, CostCenterID: req.CostCenterID},
		},
	}, nil
}

// buildJournalIntent validates a free-form journal entry.
func buildJournalIntent(req dto.CreateJournalVoucherRequest) (voucherIntent, error) {
	lines, err := buildMultiLegLines(req.Date, req.Lines, ErrUnbalancedEntry)
	if err != nil {
		return voucherIntent{}, err
	}
	return voucherIntent{
		Type:         domain.JournalEntry,
		Date:         req.Date,
		Description:  req.Description,
		CurrencyCode: req.CurrencyCode,
		Lines:        lines,
	}, nil
}

// buildOpeningBalanceIntent validates period-zero balances. The shape matches
// a journal entry; only the unbalanced failure message differs.
func buildOpeningBalanceIntent(req dto.CreateOpeningBalanceRequest) (voucherIntent, error) {
	lines, err := buildMultiLegLines(req.Date, req.Lines, ErrOpeningUnbalanced)
	if err != nil {
		return voucherIntent{}, err
	}
	return voucherIntent{
		Type:         domain.OpeningBalance,
		Date:         req.Date,
		Description:  req.Description,
		CurrencyCode: req.CurrencyCode,
		Lines:        lines,
	}, nil
}

// validateTwoLeg covers the shared payment/receipt rules.
func validateTwoLeg(date time.Time, amount decimal.Decimal, cashAccountID, counterAccountID string) error {
	if date.IsZero() {
		return ErrDateRequired
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrAmountNotPositive
	}
	if cashAccountID == counterAccountID {
		return ErrSameAccount
	}
	return nil
}

// buildMultiLegLines validates user-supplied legs and converts them to raw
// lines. Each leg must be exactly one of debit or credit with a positive
// amount, and the sides must balance within the epsilon.
func buildMultiLegLines(date time.Time, inputs []dto.VoucherLineInput, unbalancedErr error) ([]rawLine, error) {
	if date.IsZero() {
		return nil, ErrDateRequired
	}
	if len(inputs) < 2 {
		return nil, ErrMinLines
	}

	lines := make([]rawLine, 0, len(inputs))
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, in := range inputs {
		hasDebit := in.Debit.GreaterThan(decimal.Zero)
		hasCredit := in.Credit.GreaterThan(decimal.Zero)

		if hasDebit && hasCredit {
			return nil, fmt.Errorf("%w (line %d)", ErrBothSides, i+1)
		}
		if !hasDebit && !hasCredit {
			return nil, fmt.Errorf("%w (line %d)", ErrAmountNotPositive, i+1)
		}
		if in.Debit.IsNegative() || in.Credit.IsNegative() {
			return nil, fmt.Errorf("%w (line %d)", ErrAmountNotPositive, i+1)
		}

		line := rawLine{
			AccountID:    in.AccountID,
			Notes:        in.Notes,
			CostCenterID: in.CostCenterID,
		}
		if hasDebit {
			line.Side = domain.Debit
			line.Amount = in.Debit
			totalDebit = totalDebit.Add(in.Debit)
		} else {
			line.Side = domain.Credit
			line.Amount = in.Credit
			totalCredit = totalCredit.Add(in.Credit)
		}
		lines = append(lines, line)
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(domain.BalanceEpsilon) {
		return nil, fmt.Errorf("%w: debits are %s, credits are %s", unbalancedErr, totalDebit.String(), totalCredit.String())
	}

	return lines, nil
}
