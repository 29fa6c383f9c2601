//go:build integration

package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockvest/smartfund-backend/internal/adapter/portal"
	"github.com/blockvest/smartfund-backend/internal/domain"
	"github.com/blockvest/smartfund-backend/internal/usecase/fund"
	"github.com/blockvest/smartfund-backend/internal/usecase/registry"
)

const (
	manager  = domain.Address("0xManager")
	platform = domain.Address("0xPlatform")
	alice    = domain.Address("0xAlice")
	bob      = domain.Address("0xBob")

	exchangeAddr = domain.Address("portal-exchange")
	poolsAddr    = domain.Address("portal-pool")

	batToken = domain.Asset("0xBAT")
)

// memoryFundRepository is an in-process FundRepository for wiring full
// scenarios without a database
type memoryFundRepository struct {
	mu    sync.Mutex
	funds map[uuid.UUID]*domain.Fund
}

func newMemoryFundRepository() *memoryFundRepository {
	return &memoryFundRepository{funds: make(map[uuid.UUID]*domain.Fund)}
}

func (r *memoryFundRepository) Create(ctx context.Context, f *domain.Fund) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funds[f.ID] = f
	return nil
}

func (r *memoryFundRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fund, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.funds[id]
	if !ok {
		return nil, fmt.Errorf("fund not found: %s", id)
	}
	return f, nil
}

func (r *memoryFundRepository) List(ctx context.Context) ([]*domain.Fund, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Fund, 0, len(r.funds))
	for _, f := range r.funds {
		out = append(out, f)
	}
	return out, nil
}

// memoryTradeRepository is an in-process TradeRecordRepository
type memoryTradeRepository struct {
	mu      sync.Mutex
	records []*domain.TradeRecord
}

func (r *memoryTradeRepository) Create(ctx context.Context, record *domain.TradeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *memoryTradeRepository) ListByFund(ctx context.Context, fundID uuid.UUID, limit, offset int) ([]*domain.TradeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.TradeRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].FundID == fundID {
			matched = append(matched, r.records[i])
		}
	}
	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *memoryTradeRepository) Count(ctx context.Context, fundID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, record := range r.records {
		if record.FundID == fundID {
			count++
		}
	}
	return count, nil
}

type env struct {
	registry  *registry.Service
	exchange  *portal.SimulatedExchange
	custody   *portal.CustodyBook
	tradeRepo *memoryTradeRepository
}

func newEnv() *env {
	exchange := portal.NewSimulatedExchange(map[domain.Asset]decimal.Decimal{
		domain.NativeAsset: decimal.NewFromInt(1),
	})
	custody := portal.NewCustodyBook()
	tradeRepo := &memoryTradeRepository{}

	collab := fund.Collaborators{
		Exchange:     exchange,
		ExchangeAddr: exchangeAddr,
		Pools:        portal.NewSimulatedPool(),
		PoolsAddr:    poolsAddr,
		Lending:      portal.NewSimulatedLending(),
		Permitted:    portal.NewStaticDirectory(exchangeAddr, poolsAddr),
		Transferor:   custody,
		TradeRepo:    tradeRepo,
	}
	return &env{
		registry:  registry.NewService(newMemoryFundRepository(), collab),
		exchange:  exchange,
		custody:   custody,
		tradeRepo: tradeRepo,
	}
}

func (e *env) createFund(t *testing.T, successFeeBP int64) *fund.Controller {
	t.Helper()
	controller, err := e.registry.CreateFund(context.Background(), registry.CreateFundInput{
		Name:         "Lifecycle Fund",
		Manager:      manager,
		Platform:     platform,
		SuccessFeeBP: successFeeBP,
		BaseAsset:    domain.NativeAsset,
		QuoteAsset:   domain.NativeAsset,
	})
	require.NoError(t, err)
	return controller
}

// TestFundLifecycle_ProfitAndFees runs a full fund lifecycle: two depositors,
// a trade into a token that appreciates, a partial withdrawal, and the
// manager's fee claim.
func TestFundLifecycle_ProfitAndFees(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	controller := e.createFund(t, 1000)

	// alice funds up and deposits 1
	e.custody.Seed(alice, domain.NativeAsset, decimal.NewFromInt(1))
	minted, err := controller.Deposit(ctx, alice, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, minted.Equal(decimal.NewFromInt(1)))

	// the manager moves the whole fund into BAT at price 1
	e.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	_, err = controller.Trade(ctx, manager, fund.TradeInput{
		SrcAsset:    domain.NativeAsset,
		SrcAmount:   decimal.NewFromInt(1),
		DestAsset:   batToken,
		NativeValue: decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	count, err := e.tradeRepo.Count(ctx, controller.Fund.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// BAT doubles: fund value 2, accrued cut 0.1
	e.exchange.SetPrice(batToken, decimal.NewFromInt(2))
	remaining, fundValue, total, err := controller.CalculateFundManagerCut(ctx)
	require.NoError(t, err)
	assert.True(t, fundValue.Equal(decimal.NewFromInt(2)))
	assert.True(t, remaining.Equal(decimal.NewFromFloat(0.1)))
	assert.True(t, total.Equal(decimal.NewFromFloat(0.1)))

	// bob buys in at the net-of-cut share price
	e.custody.Seed(bob, domain.NativeAsset, decimal.NewFromInt(1))
	bobShares, err := controller.Deposit(ctx, bob, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, bobShares.Equal(decimal.NewFromInt(1).Div(decimal.NewFromFloat(1.9))),
		"bobShares = %s", bobShares)

	// alice's paper profit is unchanged by bob's arrival
	aliceProfit, err := controller.CalculateAddressProfit(ctx, alice)
	require.NoError(t, err)
	assert.True(t, aliceProfit.Equal(decimal.NewFromInt(1)), "aliceProfit = %s", aliceProfit)

	// the manager claims the accrued cut; shares outstanding are unchanged
	sharesBefore := controller.TotalShares()
	claimed, err := controller.FundManagerWithdraw(ctx, manager)
	require.NoError(t, err)
	assert.True(t, claimed.Equal(decimal.NewFromFloat(0.1)))
	assert.True(t, controller.TotalShares().Equal(sharesBefore))

	// nothing further is claimable at this value
	remaining, _, _, err = controller.CalculateFundManagerCut(ctx)
	require.NoError(t, err)
	assert.True(t, remaining.IsZero())
}

// TestFundLifecycle_FullWithdrawalRetainsCut checks that investors leaving a
// profitable fund leave the manager's accrued cut behind.
func TestFundLifecycle_FullWithdrawalRetainsCut(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	controller := e.createFund(t, 1000)

	e.custody.Seed(alice, domain.NativeAsset, decimal.NewFromInt(1))
	_, err := controller.Deposit(ctx, alice, decimal.NewFromInt(1))
	require.NoError(t, err)

	e.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	_, err = controller.Trade(ctx, manager, fund.TradeInput{
		SrcAsset:    domain.NativeAsset,
		SrcAmount:   decimal.NewFromInt(1),
		DestAsset:   batToken,
		NativeValue: decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	e.exchange.SetPrice(batToken, decimal.NewFromInt(2))

	// full withdrawal via the 0-means-everything convention
	withdrawn, err := controller.Withdraw(ctx, alice, 0)
	require.NoError(t, err)
	assert.True(t, withdrawn.Equal(decimal.NewFromFloat(1.9)), "withdrawn = %s", withdrawn)
	assert.True(t, controller.TotalShares().IsZero())

	value, err := controller.CalculateFundValue(ctx)
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromFloat(0.1)), "value = %s", value)

	claimed, err := controller.FundManagerWithdraw(ctx, manager)
	require.NoError(t, err)
	assert.True(t, claimed.Equal(decimal.NewFromFloat(0.1)))

	value, err = controller.CalculateFundValue(ctx)
	require.NoError(t, err)
	assert.True(t, value.IsZero(), "value = %s", value)
}

// TestFundLifecycle_ReentrantRecipient checks that recipient code firing
// during a payout cannot re-enter the fund, while the original withdrawal
// still completes.
func TestFundLifecycle_ReentrantRecipient(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	controller := e.createFund(t, 0)

	e.custody.Seed(alice, domain.NativeAsset, decimal.NewFromInt(1))
	_, err := controller.Deposit(ctx, alice, decimal.NewFromInt(1))
	require.NoError(t, err)

	var nestedErr error
	e.custody.RegisterHook(alice, func(ctx context.Context, asset domain.Asset, amount decimal.Decimal) error {
		_, nestedErr = controller.Withdraw(ctx, alice, 0)
		return nil
	})

	withdrawn, err := controller.Withdraw(ctx, alice, 0)

	require.NoError(t, err)
	assert.True(t, withdrawn.Equal(decimal.NewFromInt(1)))
	assert.ErrorIs(t, nestedErr, domain.ErrReentrancy)
	assert.True(t, e.custody.BalanceOf(alice, domain.NativeAsset).Equal(decimal.NewFromInt(1)))
}

// TestFundLifecycle_IsolatedFunds checks that two funds created through the
// registry keep fully independent ledgers.
func TestFundLifecycle_IsolatedFunds(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	first := e.createFund(t, 0)
	second := e.createFund(t, 0)

	e.custody.Seed(alice, domain.NativeAsset, decimal.NewFromInt(2))
	_, err := first.Deposit(ctx, alice, decimal.NewFromInt(2))
	require.NoError(t, err)

	assert.True(t, first.TotalShares().Equal(decimal.NewFromInt(2)))
	assert.True(t, second.TotalShares().IsZero())

	got, err := e.registry.Get(first.Fund.ID)
	require.NoError(t, err)
	assert.Same(t, first, got)

	funds, err := e.registry.List(ctx)
	require.NoError(t, err)
	assert.Len(t, funds, 2)
}
