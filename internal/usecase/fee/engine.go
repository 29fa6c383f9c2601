package fee

import (
	"errors"

	"github.com/shopspring/decimal"
)

var totalPercentage = decimal.NewFromInt(10000)

// Engine computes the manager's performance fee and the platform's cut of it
// under high-water-mark semantics, without double-charging across claims or
// deposit/withdraw cycles.
//
// The baseline the fee is measured against is the capital currently attributable
// to investors: total value ever deposited, minus total value ever withdrawn,
// minus what the manager has already cashed out. Deposits advance the baseline
// by exactly their value at deposit time, so new capital never retroactively
// appears as profit. Losses do not lower the baseline: the manager must recover
// them before accruing new fees.
type Engine struct {
	SuccessFeeBP  decimal.Decimal
	PlatformFeeBP decimal.Decimal

	cashedOut decimal.Decimal // value the manager+platform have already claimed
}

// NewEngine creates a fee Engine from basis-point parameters
func NewEngine(successFeeBP, platformFeeBP int64) *Engine {
	return &Engine{
		SuccessFeeBP:  decimal.NewFromInt(successFeeBP),
		PlatformFeeBP: decimal.NewFromInt(platformFeeBP),
	}
}

// ManagerCut returns the manager's remaining claimable cut and the total cut
// ever accrued (claimed + remaining), given the current fund value and the
// cost-basis totals. Read-only projection: calling it repeatedly without an
// intervening trade or deposit returns identical results, and it is all-zero
// on a fresh fund with no profit.
func (e *Engine) ManagerCut(fundValue, totalDeposited, totalWithdrawn decimal.Decimal) (remaining, total decimal.Decimal) {
	if e.SuccessFeeBP.IsZero() {
		return decimal.Zero, decimal.Zero
	}

	// Capital currently attributable to investors. Can be negative when the
	// manager performs well and investors withdraw more than they deposited.
	baseline := totalDeposited.Sub(totalWithdrawn).Sub(e.cashedOut)

	profit := fundValue.Sub(baseline)
	if profit.LessThanOrEqual(decimal.Zero) {
		// Loss floor: below the high-water mark the remaining cut is zero,
		// never negative, and the baseline is not lowered.
		return decimal.Zero, e.cashedOut
	}

	total = profit.Mul(e.SuccessFeeBP).Div(totalPercentage)
	remaining = total.Sub(e.cashedOut)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return remaining, total
}

// SplitCut divides a claimable cut into the manager's and the platform's parts
func (e *Engine) SplitCut(cut decimal.Decimal) (managerPart, platformPart decimal.Decimal) {
	platformPart = cut.Mul(e.PlatformFeeBP).Div(totalPercentage)
	managerPart = cut.Sub(platformPart)
	return managerPart, platformPart
}

// RecordCashOut advances the claimed total after a fee claim settles, so the
// same profit cannot be claimed twice
func (e *Engine) RecordCashOut(cut decimal.Decimal) error {
	if cut.IsNegative() {
		return errors.New("cashed out amount cannot be negative")
	}
	e.cashedOut = e.cashedOut.Add(cut)
	return nil
}

// CashedOut returns the value already claimed by manager and platform
func (e *Engine) CashedOut() decimal.Decimal {
	return e.cashedOut
}
