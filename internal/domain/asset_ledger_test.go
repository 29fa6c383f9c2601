package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const (
	quoteAsset = Asset("DAI")
	batAsset   = Asset("0xBAT")
	cotAsset   = Asset("0xCOT")
)

func TestAssetLedger_QuoteAssetAlwaysListed(t *testing.T) {
	ledger := NewAssetLedger(quoteAsset)

	assert.Equal(t, []Asset{quoteAsset}, ledger.ListAssets())
	assert.True(t, ledger.BalanceOf(quoteAsset).IsZero())
}

func TestAssetLedger_RegisterAssetIsIdempotent(t *testing.T) {
	ledger := NewAssetLedger(quoteAsset)

	ledger.RegisterAsset(batAsset)
	ledger.RegisterAsset(batAsset)
	ledger.RegisterAsset(cotAsset)

	// Insertion order is stable
	assert.Equal(t, []Asset{quoteAsset, batAsset, cotAsset}, ledger.ListAssets())
}

func TestAssetLedger_CreditRegistersNewAsset(t *testing.T) {
	ledger := NewAssetLedger(quoteAsset)

	err := ledger.Credit(batAsset, decimal.NewFromInt(100))

	assert.NoError(t, err)
	assert.Equal(t, []Asset{quoteAsset, batAsset}, ledger.ListAssets())
	assert.True(t, ledger.BalanceOf(batAsset).Equal(decimal.NewFromInt(100)))
}

func TestAssetLedger_DebitInsufficientBalance(t *testing.T) {
	ledger := NewAssetLedger(quoteAsset)
	assert.NoError(t, ledger.Credit(batAsset, decimal.NewFromInt(50)))

	err := ledger.Debit(batAsset, decimal.NewFromInt(51))

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	// Balance untouched on failure
	assert.True(t, ledger.BalanceOf(batAsset).Equal(decimal.NewFromInt(50)))
}

func TestAssetLedger_DebitUnknownAsset(t *testing.T) {
	ledger := NewAssetLedger(quoteAsset)

	err := ledger.Debit(batAsset, decimal.NewFromInt(1))

	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestAssetLedger_RemoveAssetRequiresZeroBalance(t *testing.T) {
	ledger := NewAssetLedger(quoteAsset)
	assert.NoError(t, ledger.Credit(batAsset, decimal.NewFromInt(10)))

	err := ledger.RemoveAsset(batAsset, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Once the balance returns to zero, pruning succeeds
	assert.NoError(t, ledger.Debit(batAsset, decimal.NewFromInt(10)))
	assert.NoError(t, ledger.RemoveAsset(batAsset, 1))
	assert.Equal(t, []Asset{quoteAsset}, ledger.ListAssets())
}

func TestAssetLedger_RemoveAssetRejectsStaleIndex(t *testing.T) {
	ledger := NewAssetLedger(quoteAsset)
	ledger.RegisterAsset(batAsset)
	ledger.RegisterAsset(cotAsset)

	// Index 2 is cotAsset, not batAsset: a list-reordering race must fail
	err := ledger.RemoveAsset(batAsset, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, []Asset{quoteAsset, batAsset, cotAsset}, ledger.ListAssets())
}

func TestAssetLedger_QuoteAssetCannotBeRemoved(t *testing.T) {
	ledger := NewAssetLedger(quoteAsset)

	err := ledger.RemoveAsset(quoteAsset, 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
