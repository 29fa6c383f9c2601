package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetLedger tracks which assets a fund currently holds and their on-hand balances.
// The held-asset list keeps insertion order so valuation and pro-rata withdrawal
// iterate deterministically. The ledger is not safe for concurrent use; the
// FundController serializes access to it.
type AssetLedger struct {
	quoteAsset Asset
	assets     []Asset
	balances   map[Asset]decimal.Decimal
}

// NewAssetLedger creates a ledger seeded with the fund's quote asset.
// The quote asset is always listed, even at zero balance, and can never be pruned.
func NewAssetLedger(quoteAsset Asset) *AssetLedger {
	return &AssetLedger{
		quoteAsset: quoteAsset,
		assets:     []Asset{quoteAsset},
		balances:   map[Asset]decimal.Decimal{quoteAsset: decimal.Zero},
	}
}

// RegisterAsset appends the asset to the held-assets list if absent.
// Idempotent: registering an already-listed asset is a no-op.
func (l *AssetLedger) RegisterAsset(asset Asset) {
	if _, ok := l.balances[asset]; ok {
		return
	}
	l.assets = append(l.assets, asset)
	l.balances[asset] = decimal.Zero
}

// RemoveAsset prunes a zero-balance asset from the list.
// The caller must pass the expected index to guard against list-reordering
// races between reading the list and requesting the removal.
// The quote asset is never removable.
func (l *AssetLedger) RemoveAsset(asset Asset, index int) error {
	if asset == l.quoteAsset {
		return fmt.Errorf("%w: quote asset cannot be removed", ErrInvalidInput)
	}
	if index < 0 || index >= len(l.assets) || l.assets[index] != asset {
		return fmt.Errorf("%w: index %d does not match asset %s", ErrInvalidInput, index, asset)
	}
	if !l.balances[asset].IsZero() {
		return fmt.Errorf("%w: asset %s still has a balance", ErrInvalidInput, asset)
	}
	l.assets = append(l.assets[:index], l.assets[index+1:]...)
	delete(l.balances, asset)
	return nil
}

// ListAssets returns the held asset identifiers in insertion order.
// The returned slice is a copy and safe for the caller to iterate while mutating the ledger.
func (l *AssetLedger) ListAssets() []Asset {
	out := make([]Asset, len(l.assets))
	copy(out, l.assets)
	return out
}

// BalanceOf returns the on-hand balance of an asset (zero if not held)
func (l *AssetLedger) BalanceOf(asset Asset) decimal.Decimal {
	return l.balances[asset]
}

// Credit increases the balance of an asset, registering it if new
func (l *AssetLedger) Credit(asset Asset, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: credit amount cannot be negative", ErrInvalidInput)
	}
	l.RegisterAsset(asset)
	l.balances[asset] = l.balances[asset].Add(amount)
	return nil
}

// Debit decreases the balance of an asset.
// Fails without mutating anything if the asset is unknown or the balance is too low.
func (l *AssetLedger) Debit(asset Asset, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: debit amount cannot be negative", ErrInvalidInput)
	}
	balance, ok := l.balances[asset]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, asset)
	}
	if balance.LessThan(amount) {
		return fmt.Errorf("%w: %s balance %s < %s", ErrInsufficientBalance, asset, balance, amount)
	}
	l.balances[asset] = balance.Sub(amount)
	return nil
}
