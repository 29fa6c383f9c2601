package valuation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/blockvest/smartfund-backend/internal/domain"
)

// Engine converts heterogeneous fund holdings into a single unit-of-account
// value using read-only quotes from the exchange portal. Fund value is derived,
// never stored: it is recomputed from live quotes at read time and fluctuates
// with external market state even without any fund-initiated action.
type Engine struct {
	Exchange   domain.ExchangePortal
	QuoteAsset domain.Asset
}

// NewEngine creates a new valuation Engine instance
func NewEngine(exchange domain.ExchangePortal, quoteAsset domain.Asset) *Engine {
	return &Engine{
		Exchange:   exchange,
		QuoteAsset: quoteAsset,
	}
}

// ValueOf prices an amount of an asset in the quote asset.
// Logic:
//  1. The quote asset itself is valued at par
//  2. A zero amount is worth zero without consulting the portal
//  3. Everything else uses the portal's non-committing quote
//
// A zero-valued quote is a valid "no liquidity" result. A portal error
// propagates: failing the valuation is preferable to silently pricing an
// illiquid asset at zero, which would let a manager hide losses or give
// investors a false redemption price.
func (e *Engine) ValueOf(ctx context.Context, asset domain.Asset, amount decimal.Decimal) (decimal.Decimal, error) {
	if asset == e.QuoteAsset {
		return amount, nil
	}
	if amount.IsZero() {
		return decimal.Zero, nil
	}

	value, err := e.Exchange.Quote(ctx, asset, amount, e.QuoteAsset)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: quoting %s: %v", domain.ErrExternalFailure, asset, err)
	}
	return value, nil
}

// FundValue sums ValueOf over every asset the ledger holds, in insertion order
func (e *Engine) FundValue(ctx context.Context, ledger *domain.AssetLedger) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, asset := range ledger.ListAssets() {
		value, err := e.ValueOf(ctx, asset, ledger.BalanceOf(asset))
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(value)
	}
	return total, nil
}
