package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CostBasisTracker maintains the per-depositor deposit/withdrawal history needed
// for individual profit computation, independent of share count. Transfers of
// shares do not transfer cost basis: a recipient of transferred shares computes
// profit relative to their own history. Entries are created on first deposit and
// never deleted, so history survives a full withdrawal.
type CostBasisTracker struct {
	deposited      map[Address]decimal.Decimal
	withdrawn      map[Address]decimal.Decimal
	totalDeposited decimal.Decimal
	totalWithdrawn decimal.Decimal
}

// NewCostBasisTracker creates an empty tracker
func NewCostBasisTracker() *CostBasisTracker {
	return &CostBasisTracker{
		deposited: make(map[Address]decimal.Decimal),
		withdrawn: make(map[Address]decimal.Decimal),
	}
}

// RecordDeposit increments a depositor's cumulative deposited value
func (t *CostBasisTracker) RecordDeposit(depositor Address, value decimal.Decimal) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: deposit value must be positive", ErrInvalidInput)
	}
	t.deposited[depositor] = t.deposited[depositor].Add(value)
	t.totalDeposited = t.totalDeposited.Add(value)
	return nil
}

// RecordWithdrawal increments a depositor's cumulative withdrawn value.
// The value recorded is what actually left the fund, valued at the
// pre-withdrawal basket price.
func (t *CostBasisTracker) RecordWithdrawal(depositor Address, value decimal.Decimal) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: withdrawal value cannot be negative", ErrInvalidInput)
	}
	t.withdrawn[depositor] = t.withdrawn[depositor].Add(value)
	t.totalWithdrawn = t.totalWithdrawn.Add(value)
	return nil
}

// DepositedBy returns a depositor's cumulative deposited value
func (t *CostBasisTracker) DepositedBy(depositor Address) decimal.Decimal {
	return t.deposited[depositor]
}

// WithdrawnBy returns a depositor's cumulative withdrawn value
func (t *CostBasisTracker) WithdrawnBy(depositor Address) decimal.Decimal {
	return t.withdrawn[depositor]
}

// TotalDeposited returns the value ever deposited across all depositors
func (t *CostBasisTracker) TotalDeposited() decimal.Decimal {
	return t.totalDeposited
}

// TotalWithdrawn returns the value ever withdrawn across all depositors
func (t *CostBasisTracker) TotalWithdrawn() decimal.Decimal {
	return t.totalWithdrawn
}

// ProfitOf computes a depositor's individual profit against their own cost basis:
// (shares * currentShareValue + cumulative withdrawn) - cumulative deposited.
// May be negative.
func (t *CostBasisTracker) ProfitOf(depositor Address, shares, currentShareValue decimal.Decimal) decimal.Decimal {
	holding := shares.Mul(currentShareValue)
	return holding.Add(t.withdrawn[depositor]).Sub(t.deposited[depositor])
}

// FundProfit computes the aggregate form of the same law:
// current fund value - total deposited + total withdrawn.
// This is a fund-wide display figure; fee accrual uses the high-water-mark law instead.
func (t *CostBasisTracker) FundProfit(currentFundValue decimal.Decimal) decimal.Decimal {
	return currentFundValue.Sub(t.totalDeposited).Add(t.totalWithdrawn)
}
