package portal

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/blockvest/smartfund-backend/internal/domain"
)

var poolHundred = decimal.NewFromInt(100)

// poolConfig fixes the connector amounts backing one unit of a pool token
type poolConfig struct {
	assetA domain.Asset
	assetB domain.Asset
	unitA  decimal.Decimal // amount of assetA per pool token
	unitB  decimal.Decimal // amount of assetB per pool token
}

// SimulatedPool is an in-process liquidity-pool portal. Buying amount pool
// tokens spends the configured connector amounts for each unit; selling
// returns them.
type SimulatedPool struct {
	mu    sync.RWMutex
	pools map[domain.Asset]poolConfig
}

// NewSimulatedPool creates a pool portal with no pools registered
func NewSimulatedPool() *SimulatedPool {
	return &SimulatedPool{pools: make(map[domain.Asset]poolConfig)}
}

// RegisterPool configures the connector pair backing a pool token
func (p *SimulatedPool) RegisterPool(poolToken, assetA, assetB domain.Asset, unitA, unitB decimal.Decimal) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pools[poolToken] = poolConfig{assetA: assetA, assetB: assetB, unitA: unitA, unitB: unitB}
}

// Buy acquires amount pool tokens and reports the connector amounts spent
func (p *SimulatedPool) Buy(ctx context.Context, amount decimal.Decimal, choice domain.PoolChoice, poolToken domain.Asset) (decimal.Decimal, []domain.AssetAmount, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	cfg, ok := p.pools[poolToken]
	if !ok {
		return decimal.Zero, nil, fmt.Errorf("simulated pool: unknown pool token %s", poolToken)
	}
	spent := []domain.AssetAmount{
		{Asset: cfg.assetA, Amount: amount.Mul(cfg.unitA)},
		{Asset: cfg.assetB, Amount: amount.Mul(cfg.unitB)},
	}
	return amount, spent, nil
}

// Sell redeems amount pool tokens back into the connector pair
func (p *SimulatedPool) Sell(ctx context.Context, amount decimal.Decimal, choice domain.PoolChoice, poolToken domain.Asset) ([]domain.AssetAmount, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	cfg, ok := p.pools[poolToken]
	if !ok {
		return nil, fmt.Errorf("simulated pool: unknown pool token %s", poolToken)
	}
	received := []domain.AssetAmount{
		{Asset: cfg.assetA, Amount: amount.Mul(cfg.unitA)},
		{Asset: cfg.assetB, Amount: amount.Mul(cfg.unitB)},
	}
	return received, nil
}

// SimulatedLending is an in-process lending portal wrapping assets into
// yield-bearing representations at a configurable exchange rate.
type SimulatedLending struct {
	mu    sync.RWMutex
	wraps map[domain.Asset]domain.Asset    // wrapped -> underlying
	rates map[domain.Asset]decimal.Decimal // wrapped units per underlying unit
}

// NewSimulatedLending creates a lending portal with no markets registered
func NewSimulatedLending() *SimulatedLending {
	return &SimulatedLending{
		wraps: make(map[domain.Asset]domain.Asset),
		rates: make(map[domain.Asset]decimal.Decimal),
	}
}

// RegisterMarket configures a wrapped asset, its underlying, and the mint rate
func (l *SimulatedLending) RegisterMarket(wrapped, underlying domain.Asset, rate decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.wraps[wrapped] = underlying
	l.rates[wrapped] = rate
}

// UnderlyingOf reports which asset a wrapped token represents
func (l *SimulatedLending) UnderlyingOf(wrapped domain.Asset) (domain.Asset, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	underlying, ok := l.wraps[wrapped]
	if !ok {
		return "", fmt.Errorf("simulated lending: unknown wrapped asset %s", wrapped)
	}
	return underlying, nil
}

// Mint wraps amount of the underlying and returns the wrapped amount received
func (l *SimulatedLending) Mint(ctx context.Context, amount decimal.Decimal, wrapped domain.Asset) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rate, ok := l.rates[wrapped]
	if !ok {
		return decimal.Zero, fmt.Errorf("simulated lending: unknown wrapped asset %s", wrapped)
	}
	return amount.Mul(rate), nil
}

// RedeemByPercent unwraps percent of the held wrapped amount back into the underlying
func (l *SimulatedLending) RedeemByPercent(ctx context.Context, percent decimal.Decimal, wrappedHeld decimal.Decimal, wrapped domain.Asset) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rate, ok := l.rates[wrapped]
	if !ok {
		return decimal.Zero, fmt.Errorf("simulated lending: unknown wrapped asset %s", wrapped)
	}
	redeemed := wrappedHeld.Mul(percent).Div(poolHundred)
	return redeemed.Div(rate), nil
}

// StaticDirectory is a fixed permission list of approved portal addresses
type StaticDirectory struct {
	permitted map[domain.Address]bool
}

// NewStaticDirectory creates a directory permitting the given addresses
func NewStaticDirectory(addrs ...domain.Address) *StaticDirectory {
	permitted := make(map[domain.Address]bool, len(addrs))
	for _, addr := range addrs {
		permitted[addr] = true
	}
	return &StaticDirectory{permitted: permitted}
}

// IsPermitted reports whether a portal address is approved
func (d *StaticDirectory) IsPermitted(portal domain.Address) bool {
	return d.permitted[portal]
}
