package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCostBasisTracker_ProfitAgainstOwnBasis(t *testing.T) {
	tracker := NewCostBasisTracker()
	assert.NoError(t, tracker.RecordDeposit(alice, decimal.NewFromInt(100)))

	// Alice holds 100 shares now worth 1.5 each
	profit := tracker.ProfitOf(alice, decimal.NewFromInt(100), decimal.NewFromFloat(1.5))

	assert.True(t, profit.Equal(decimal.NewFromInt(50)))
}

func TestCostBasisTracker_ProfitMayBeNegative(t *testing.T) {
	tracker := NewCostBasisTracker()
	assert.NoError(t, tracker.RecordDeposit(alice, decimal.NewFromInt(100)))

	profit := tracker.ProfitOf(alice, decimal.NewFromInt(100), decimal.NewFromFloat(0.5))

	assert.True(t, profit.Equal(decimal.NewFromInt(-50)))
}

func TestCostBasisTracker_WithdrawalsCountTowardProfit(t *testing.T) {
	tracker := NewCostBasisTracker()
	assert.NoError(t, tracker.RecordDeposit(alice, decimal.NewFromInt(100)))
	assert.NoError(t, tracker.RecordWithdrawal(alice, decimal.NewFromInt(190)))

	// Fully withdrawn at a gain: zero shares left, 90 realized profit
	profit := tracker.ProfitOf(alice, decimal.Zero, decimal.Zero)

	assert.True(t, profit.Equal(decimal.NewFromInt(90)))
}

func TestCostBasisTracker_HistorySurvivesFullWithdrawal(t *testing.T) {
	tracker := NewCostBasisTracker()
	assert.NoError(t, tracker.RecordDeposit(alice, decimal.NewFromInt(100)))
	assert.NoError(t, tracker.RecordWithdrawal(alice, decimal.NewFromInt(100)))

	assert.True(t, tracker.DepositedBy(alice).Equal(decimal.NewFromInt(100)))
	assert.True(t, tracker.WithdrawnBy(alice).Equal(decimal.NewFromInt(100)))
}

func TestCostBasisTracker_FundProfitAggregateLaw(t *testing.T) {
	tracker := NewCostBasisTracker()
	assert.NoError(t, tracker.RecordDeposit(alice, decimal.NewFromInt(100)))
	assert.NoError(t, tracker.RecordDeposit(bob, decimal.NewFromInt(100)))
	assert.NoError(t, tracker.RecordWithdrawal(alice, decimal.NewFromInt(50)))

	// Fund currently worth 250: profit = 250 - 200 + 50
	profit := tracker.FundProfit(decimal.NewFromInt(250))

	assert.True(t, profit.Equal(decimal.NewFromInt(100)))
}

func TestCostBasisTracker_RejectsNonPositiveDeposit(t *testing.T) {
	tracker := NewCostBasisTracker()

	assert.ErrorIs(t, tracker.RecordDeposit(alice, decimal.Zero), ErrInvalidInput)
	assert.ErrorIs(t, tracker.RecordWithdrawal(alice, decimal.NewFromInt(-1)), ErrInvalidInput)
}
