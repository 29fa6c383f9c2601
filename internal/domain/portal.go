package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExchangePortal is the external exchange/aggregator integration.
// The core trusts its reported net output.
type ExchangePortal interface {
	// Quote returns a non-committing estimate of swapping amount of src into dest.
	// Read-only: must not mutate state. A zero result is a valid "no liquidity"
	// answer, not an error.
	Quote(ctx context.Context, src Asset, amount decimal.Decimal, dest Asset) (decimal.Decimal, error)

	// Trade executes the swap and returns the destination amount actually received.
	// routingData is venue-specific and passed through opaquely.
	Trade(ctx context.Context, src Asset, amount decimal.Decimal, dest Asset, minReturn decimal.Decimal, routingData []byte) (decimal.Decimal, error)
}

// PoolPortal is the external liquidity-pool integration, converting a pair of
// assets into a pool-share asset and back.
type PoolPortal interface {
	// Buy spends fund assets to acquire poolToken. It reports both the pool
	// tokens received and exactly which asset amounts were spent, so the core
	// can keep its balance bookkeeping all-or-nothing.
	Buy(ctx context.Context, amount decimal.Decimal, choice PoolChoice, poolToken Asset) (received decimal.Decimal, spent []AssetAmount, err error)

	// Sell redeems poolToken back into the underlying pair and reports the
	// asset amounts received.
	Sell(ctx context.Context, amount decimal.Decimal, choice PoolChoice, poolToken Asset) (received []AssetAmount, err error)
}

// LendingPortal is the external lending-market integration that wraps assets
// into yield-bearing representations and back.
type LendingPortal interface {
	// UnderlyingOf reports which asset a wrapped token represents
	UnderlyingOf(wrapped Asset) (Asset, error)

	// Mint wraps amount of the underlying into the wrapped token and returns
	// the wrapped amount received.
	Mint(ctx context.Context, amount decimal.Decimal, wrapped Asset) (decimal.Decimal, error)

	// RedeemByPercent unwraps percent (0,100] of wrappedHeld and returns the
	// underlying amount received.
	RedeemByPercent(ctx context.Context, percent decimal.Decimal, wrappedHeld decimal.Decimal, wrapped Asset) (decimal.Decimal, error)
}

// PermittedDirectory is the read-only whitelist of approved exchange and pool
// portal addresses, consulted but not computed by the core.
type PermittedDirectory interface {
	IsPermitted(portal Address) bool
}

// AssetTransferor moves assets between the fund's custody and external
// addresses. TransferOut may hand control to recipient-owned code before
// returning, which is the reentrancy vector the FundController guards against:
// all internal accounting completes before any TransferOut is issued.
type AssetTransferor interface {
	TransferIn(ctx context.Context, asset Asset, from Address, amount decimal.Decimal) error
	TransferOut(ctx context.Context, asset Asset, to Address, amount decimal.Decimal) error
}
