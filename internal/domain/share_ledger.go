package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InitialShareRate is the number of shares minted per unit of quote value for
// the very first deposit. It establishes the genesis price-per-share; every
// later issuance is proportional to fund value, so the constant only fixes the
// reference scale.
var InitialShareRate = decimal.NewFromInt(1)

// ShareLedger is the fungible accounting token representing proportional fund
// ownership. Standard mint/burn/transfer semantics plus the fund-specific
// issuance rule. Not safe for concurrent use; the FundController serializes access.
type ShareLedger struct {
	balances    map[Address]decimal.Decimal
	totalShares decimal.Decimal
}

// NewShareLedger creates an empty share ledger (total supply zero)
func NewShareLedger() *ShareLedger {
	return &ShareLedger{balances: make(map[Address]decimal.Decimal)}
}

// IssueShares mints shares for a deposit worth contributedValue, priced against the
// fund value before the deposit was received.
// Logic:
//  1. If total supply is zero, mint contributedValue * InitialShareRate
//  2. Otherwise mint contributedValue * totalShares / fundValueBefore, which
//     preserves every existing holder's proportional value
//
// Fails on a zero or negative contribution, and on a non-positive fund value
// when shares are already outstanding (the proportional price would be undefined).
func (l *ShareLedger) IssueShares(holder Address, contributedValue, fundValueBefore decimal.Decimal) (decimal.Decimal, error) {
	if contributedValue.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: contributed value must be positive", ErrInvalidInput)
	}

	var minted decimal.Decimal
	if l.totalShares.IsZero() {
		minted = contributedValue.Mul(InitialShareRate)
	} else {
		if fundValueBefore.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, fmt.Errorf("%w: fund value must be positive to price a deposit", ErrInvalidInput)
		}
		minted = contributedValue.Mul(l.totalShares).Div(fundValueBefore)
	}

	l.balances[holder] = l.balances[holder].Add(minted)
	l.totalShares = l.totalShares.Add(minted)
	return minted, nil
}

// RedeemShares burns shares from a holder. The caller is responsible for
// transferring out the proportional asset basket before or after as its
// accounting discipline requires.
func (l *ShareLedger) RedeemShares(holder Address, shares decimal.Decimal) error {
	if shares.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: shares to burn must be positive", ErrInvalidInput)
	}
	balance := l.balances[holder]
	if balance.LessThan(shares) {
		return fmt.Errorf("%w: %s holds %s, cannot burn %s", ErrInsufficientShares, holder, balance, shares)
	}
	l.balances[holder] = balance.Sub(shares)
	l.totalShares = l.totalShares.Sub(shares)
	return nil
}

// Transfer moves shares between holders. No fee-related side effects: the fee
// mechanism is computed at claim time from aggregate state, so shares are
// freely transferable without breaking fee accounting. Cost basis deliberately
// does not travel with the shares.
func (l *ShareLedger) Transfer(from, to Address, shares decimal.Decimal) error {
	if shares.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: transfer amount must be positive", ErrInvalidInput)
	}
	balance := l.balances[from]
	if balance.LessThan(shares) {
		return fmt.Errorf("%w: %s holds %s, cannot transfer %s", ErrInsufficientShares, from, balance, shares)
	}
	l.balances[from] = balance.Sub(shares)
	l.balances[to] = l.balances[to].Add(shares)
	return nil
}

// BalanceOf returns the share balance of a holder (zero if unknown)
func (l *ShareLedger) BalanceOf(holder Address) decimal.Decimal {
	return l.balances[holder]
}

// TotalShares returns the outstanding share supply
func (l *ShareLedger) TotalShares() decimal.Decimal {
	return l.totalShares
}
