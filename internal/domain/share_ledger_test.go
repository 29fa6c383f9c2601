package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const (
	alice = Address("0xAlice")
	bob   = Address("0xBob")
)

func TestShareLedger_GenesisIssuance(t *testing.T) {
	ledger := NewShareLedger()

	minted, err := ledger.IssueShares(alice, decimal.NewFromInt(100), decimal.Zero)

	assert.NoError(t, err)
	expected := decimal.NewFromInt(100).Mul(InitialShareRate)
	assert.True(t, minted.Equal(expected))
	assert.True(t, ledger.TotalShares().Equal(expected))
	assert.True(t, ledger.BalanceOf(alice).Equal(expected))
}

func TestShareLedger_ProportionalIssuancePreservesValue(t *testing.T) {
	ledger := NewShareLedger()
	_, err := ledger.IssueShares(alice, decimal.NewFromInt(100), decimal.Zero)
	assert.NoError(t, err)

	// Fund value doubled since Alice deposited; Bob's 100 buys half as many shares
	minted, err := ledger.IssueShares(bob, decimal.NewFromInt(100), decimal.NewFromInt(200))

	assert.NoError(t, err)
	assert.True(t, minted.Equal(ledger.BalanceOf(alice).Div(decimal.NewFromInt(2))),
		"B should receive exactly half the shares A received for the same contribution")
}

func TestShareLedger_IssuanceFairnessWithoutTrades(t *testing.T) {
	ledger := NewShareLedger()

	// Deposits with no intervening value change: share of supply == share of value contributed
	_, err := ledger.IssueShares(alice, decimal.NewFromInt(300), decimal.Zero)
	assert.NoError(t, err)
	_, err = ledger.IssueShares(bob, decimal.NewFromInt(100), decimal.NewFromInt(300))
	assert.NoError(t, err)

	aliceFraction := ledger.BalanceOf(alice).Div(ledger.TotalShares())
	assert.True(t, aliceFraction.Equal(decimal.NewFromFloat(0.75)))
}

func TestShareLedger_IssueSharesRejectsZeroContribution(t *testing.T) {
	ledger := NewShareLedger()

	_, err := ledger.IssueShares(alice, decimal.Zero, decimal.Zero)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestShareLedger_RedeemShares(t *testing.T) {
	ledger := NewShareLedger()
	minted, err := ledger.IssueShares(alice, decimal.NewFromInt(100), decimal.Zero)
	assert.NoError(t, err)

	assert.NoError(t, ledger.RedeemShares(alice, minted))
	assert.True(t, ledger.BalanceOf(alice).IsZero())
	assert.True(t, ledger.TotalShares().IsZero())
}

func TestShareLedger_RedeemMoreThanHeld(t *testing.T) {
	ledger := NewShareLedger()
	minted, err := ledger.IssueShares(alice, decimal.NewFromInt(100), decimal.Zero)
	assert.NoError(t, err)

	err = ledger.RedeemShares(alice, minted.Add(decimal.NewFromInt(1)))

	assert.ErrorIs(t, err, ErrInsufficientShares)
}

func TestShareLedger_Transfer(t *testing.T) {
	ledger := NewShareLedger()
	minted, err := ledger.IssueShares(alice, decimal.NewFromInt(100), decimal.Zero)
	assert.NoError(t, err)

	assert.NoError(t, ledger.Transfer(alice, bob, minted))

	assert.True(t, ledger.BalanceOf(alice).IsZero())
	assert.True(t, ledger.BalanceOf(bob).Equal(minted))
	// Supply unchanged by transfers
	assert.True(t, ledger.TotalShares().Equal(minted))
}

func TestShareLedger_TransferInsufficientShares(t *testing.T) {
	ledger := NewShareLedger()

	err := ledger.Transfer(alice, bob, decimal.NewFromInt(1))

	assert.ErrorIs(t, err, ErrInsufficientShares)
}
