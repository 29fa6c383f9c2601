package portal

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/blockvest/smartfund-backend/internal/domain"
)

// SimulatedExchange is an in-process exchange portal with configurable
// per-asset prices, used for paper-trading deployments and tests. Prices are
// expressed in an arbitrary common unit; a swap of src into dest returns
// amount * price(src) / price(dest). An asset with no configured price quotes
// at zero (no liquidity).
type SimulatedExchange struct {
	mu     sync.RWMutex
	prices map[domain.Asset]decimal.Decimal
}

// NewSimulatedExchange creates an exchange with the given initial prices
func NewSimulatedExchange(prices map[domain.Asset]decimal.Decimal) *SimulatedExchange {
	e := &SimulatedExchange{prices: make(map[domain.Asset]decimal.Decimal)}
	for asset, price := range prices {
		e.prices[asset] = price
	}
	return e
}

// SetPrice updates an asset's price, simulating external market movement
func (e *SimulatedExchange) SetPrice(asset domain.Asset, price decimal.Decimal) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prices[asset] = price
}

// Quote returns the non-committing conversion estimate
func (e *SimulatedExchange) Quote(ctx context.Context, src domain.Asset, amount decimal.Decimal, dest domain.Asset) (decimal.Decimal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.convert(src, amount, dest)
}

// Trade executes at the quoted price and returns the destination amount
func (e *SimulatedExchange) Trade(ctx context.Context, src domain.Asset, amount decimal.Decimal, dest domain.Asset, minReturn decimal.Decimal, routingData []byte) (decimal.Decimal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	received, err := e.convert(src, amount, dest)
	if err != nil {
		return decimal.Zero, err
	}
	if received.LessThan(minReturn) {
		return decimal.Zero, fmt.Errorf("simulated exchange: return %s below minimum %s", received, minReturn)
	}
	return received, nil
}

func (e *SimulatedExchange) convert(src domain.Asset, amount decimal.Decimal, dest domain.Asset) (decimal.Decimal, error) {
	srcPrice, ok := e.prices[src]
	if !ok || srcPrice.IsZero() {
		// Unpriced asset: a zero quote is the "no liquidity" answer
		return decimal.Zero, nil
	}
	destPrice, ok := e.prices[dest]
	if !ok || destPrice.IsZero() {
		return decimal.Zero, fmt.Errorf("simulated exchange: no price for destination asset %s", dest)
	}
	return amount.Mul(srcPrice).Div(destPrice), nil
}
