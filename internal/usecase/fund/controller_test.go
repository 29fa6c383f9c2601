package fund

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blockvest/smartfund-backend/internal/adapter/portal"
	"github.com/blockvest/smartfund-backend/internal/domain"
)

const (
	manager  = domain.Address("0xManager")
	platform = domain.Address("0xPlatform")
	alice    = domain.Address("0xAlice")
	bob      = domain.Address("0xBob")

	exchangeAddr = domain.Address("portal-exchange")
	poolsAddr    = domain.Address("portal-pool")

	batToken     = domain.Asset("0xBAT")
	lpToken      = domain.Asset("0xLP")
	wrappedToken = domain.Asset("0xcETH")
)

// MockTradeRecordRepository is a mock implementation of TradeRecordRepository for testing
type MockTradeRecordRepository struct {
	mock.Mock
}

func (m *MockTradeRecordRepository) Create(ctx context.Context, record *domain.TradeRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTradeRecordRepository) ListByFund(ctx context.Context, fundID uuid.UUID, limit, offset int) ([]*domain.TradeRecord, error) {
	args := m.Called(ctx, fundID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TradeRecord), args.Error(1)
}

func (m *MockTradeRecordRepository) Count(ctx context.Context, fundID uuid.UUID) (int, error) {
	args := m.Called(ctx, fundID)
	return args.Int(0), args.Error(1)
}

type fixture struct {
	controller *Controller
	exchange   *portal.SimulatedExchange
	custody    *portal.CustodyBook
	pools      *portal.SimulatedPool
	lending    *portal.SimulatedLending
	tradeRepo  *MockTradeRecordRepository
}

// newFixture wires a controller for a native-asset fund against the in-process
// portal simulators, with the native asset priced at 1.
func newFixture(successFeeBP, platformFeeBP int64, whitelistOnly bool) *fixture {
	exchange := portal.NewSimulatedExchange(map[domain.Asset]decimal.Decimal{
		domain.NativeAsset: decimal.NewFromInt(1),
	})
	custody := portal.NewCustodyBook()
	pools := portal.NewSimulatedPool()
	lending := portal.NewSimulatedLending()
	tradeRepo := new(MockTradeRecordRepository)
	tradeRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	fundRecord := &domain.Fund{
		ID:            uuid.New(),
		Name:          "Test Fund",
		Manager:       manager,
		Platform:      platform,
		SuccessFeeBP:  successFeeBP,
		PlatformFeeBP: platformFeeBP,
		BaseAsset:     domain.NativeAsset,
		QuoteAsset:    domain.NativeAsset,
		WhitelistOnly: whitelistOnly,
		CreatedAt:     time.Now(),
	}

	controller := NewController(fundRecord, Collaborators{
		Exchange:     exchange,
		ExchangeAddr: exchangeAddr,
		Pools:        pools,
		PoolsAddr:    poolsAddr,
		Lending:      lending,
		Permitted:    portal.NewStaticDirectory(exchangeAddr, poolsAddr),
		Transferor:   custody,
		TradeRepo:    tradeRepo,
	})
	return &fixture{
		controller: controller,
		exchange:   exchange,
		custody:    custody,
		pools:      pools,
		lending:    lending,
		tradeRepo:  tradeRepo,
	}
}

func (f *fixture) deposit(t *testing.T, from domain.Address, amount decimal.Decimal) decimal.Decimal {
	t.Helper()
	f.custody.Seed(from, domain.NativeAsset, amount)
	minted, err := f.controller.Deposit(context.Background(), from, amount)
	assert.NoError(t, err)
	return minted
}

// tradeNativeToBAT swaps amount of the native asset into BAT at the configured price
func (f *fixture) tradeNativeToBAT(t *testing.T, amount decimal.Decimal) {
	t.Helper()
	_, err := f.controller.Trade(context.Background(), manager, TradeInput{
		SrcAsset:    domain.NativeAsset,
		SrcAmount:   amount,
		DestAsset:   batToken,
		MinReturn:   decimal.Zero,
		NativeValue: amount,
	})
	assert.NoError(t, err)
}

func TestDeposit_MintsInitialShares(t *testing.T) {
	f := newFixture(0, 0, false)

	minted := f.deposit(t, alice, decimal.NewFromInt(1))

	assert.True(t, minted.Equal(decimal.NewFromInt(1)))
	assert.True(t, f.controller.TotalShares().Equal(decimal.NewFromInt(1)))
	assert.True(t, f.controller.BalanceOf(alice).Equal(decimal.NewFromInt(1)))
	assert.True(t, f.custody.BalanceOf(alice, domain.NativeAsset).IsZero())

	value, err := f.controller.CalculateFundValue(context.Background())
	assert.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromInt(1)))
}

func TestDeposit_RejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(0, 0, false)

	_, err := f.controller.Deposit(context.Background(), alice, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.controller.Deposit(context.Background(), alice, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeposit_FailsWhenDepositorCannotPay(t *testing.T) {
	f := newFixture(0, 0, false)

	_, err := f.controller.Deposit(context.Background(), alice, decimal.NewFromInt(1))

	assert.ErrorIs(t, err, domain.ErrExternalFailure)
	assert.True(t, f.controller.TotalShares().IsZero())
}

func TestDeposit_SecondDepositorPaysCurrentSharePrice(t *testing.T) {
	f := newFixture(0, 0, false)

	f.deposit(t, alice, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	f.tradeNativeToBAT(t, decimal.NewFromInt(1))

	// fund value doubles before bob arrives
	f.exchange.SetPrice(batToken, decimal.NewFromInt(2))
	minted := f.deposit(t, bob, decimal.NewFromInt(1))

	assert.True(t, minted.Equal(decimal.NewFromFloat(0.5)), "minted = %s", minted)
	assert.True(t, f.controller.TotalShares().Equal(decimal.NewFromFloat(1.5)))

	// fund now holds 1 native + 1 BAT priced at 2
	value, err := f.controller.CalculateFundValue(context.Background())
	assert.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromInt(3)))

	aliceProfit, err := f.controller.CalculateAddressProfit(context.Background(), alice)
	assert.NoError(t, err)
	assert.True(t, aliceProfit.Equal(decimal.NewFromInt(1)), "aliceProfit = %s", aliceProfit)

	bobProfit, err := f.controller.CalculateAddressProfit(context.Background(), bob)
	assert.NoError(t, err)
	assert.True(t, bobProfit.IsZero(), "bobProfit = %s", bobProfit)
}

func TestDeposit_PricedNetOfAccruedManagerCut(t *testing.T) {
	f := newFixture(1000, 0, false)

	f.deposit(t, alice, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	f.tradeNativeToBAT(t, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(2))

	// fund value 2, accrued cut 0.1: bob's share price is set by the
	// 1.9 attributable to investors, not the headline 2
	minted := f.deposit(t, bob, decimal.NewFromInt(1))

	expected := decimal.NewFromInt(1).Div(decimal.NewFromFloat(1.9))
	assert.True(t, minted.Equal(expected), "minted = %s, expected = %s", minted, expected)
}

func TestWithdraw_ZeroPercentMeansEverything(t *testing.T) {
	f := newFixture(0, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(1))

	withdrawn, err := f.controller.Withdraw(context.Background(), alice, 0)

	assert.NoError(t, err)
	assert.True(t, withdrawn.Equal(decimal.NewFromInt(1)))
	assert.True(t, f.controller.BalanceOf(alice).IsZero())
	assert.True(t, f.controller.TotalShares().IsZero())
	assert.True(t, f.custody.BalanceOf(alice, domain.NativeAsset).Equal(decimal.NewFromInt(1)))
}

func TestWithdraw_HalfByBasisPoints(t *testing.T) {
	f := newFixture(0, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(1))

	withdrawn, err := f.controller.Withdraw(context.Background(), alice, 5000)

	assert.NoError(t, err)
	assert.True(t, withdrawn.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, f.controller.BalanceOf(alice).Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, f.custody.BalanceOf(alice, domain.NativeAsset).Equal(decimal.NewFromFloat(0.5)))
}

func TestWithdraw_PaysOutEveryHeldAsset(t *testing.T) {
	f := newFixture(0, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(2))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	f.tradeNativeToBAT(t, decimal.NewFromInt(1))

	_, err := f.controller.Withdraw(context.Background(), alice, 5000)

	assert.NoError(t, err)
	assert.True(t, f.custody.BalanceOf(alice, domain.NativeAsset).Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, f.custody.BalanceOf(alice, batToken).Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, f.controller.Assets.BalanceOf(domain.NativeAsset).Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, f.controller.Assets.BalanceOf(batToken).Equal(decimal.NewFromFloat(0.5)))
}

func TestWithdraw_RejectsInvalidPercent(t *testing.T) {
	f := newFixture(0, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(1))

	_, err := f.controller.Withdraw(context.Background(), alice, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.controller.Withdraw(context.Background(), alice, 10001)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWithdraw_RejectsHolderWithoutShares(t *testing.T) {
	f := newFixture(0, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(1))

	_, err := f.controller.Withdraw(context.Background(), bob, 0)

	assert.ErrorIs(t, err, domain.ErrInsufficientShares)
}

func TestWithdraw_LeavesAccruedManagerCutInFund(t *testing.T) {
	f := newFixture(1000, 0, false)
	ctx := context.Background()

	f.deposit(t, alice, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	f.tradeNativeToBAT(t, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(2))

	// fund value 2, accrued cut 0.1: a full withdrawal pays 1.9 and
	// leaves the cut behind
	withdrawn, err := f.controller.Withdraw(ctx, alice, 0)
	assert.NoError(t, err)
	assert.True(t, withdrawn.Equal(decimal.NewFromFloat(1.9)), "withdrawn = %s", withdrawn)
	assert.True(t, f.custody.BalanceOf(alice, batToken).Equal(decimal.NewFromFloat(0.95)))
	assert.True(t, f.controller.TotalShares().IsZero())

	value, err := f.controller.CalculateFundValue(ctx)
	assert.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromFloat(0.1)), "value = %s", value)

	// the retained value is still claimable by the manager
	claimed, err := f.controller.FundManagerWithdraw(ctx, manager)
	assert.NoError(t, err)
	assert.True(t, claimed.Equal(decimal.NewFromFloat(0.1)), "claimed = %s", claimed)
	assert.True(t, f.custody.BalanceOf(manager, batToken).Equal(decimal.NewFromFloat(0.05)))
}

func TestTrade_SwapsThroughExchangePortal(t *testing.T) {
	f := newFixture(0, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromFloat(0.5))

	record, err := f.controller.Trade(context.Background(), manager, TradeInput{
		SrcAsset:    domain.NativeAsset,
		SrcAmount:   decimal.NewFromInt(1),
		DestAsset:   batToken,
		MinReturn:   decimal.NewFromInt(2),
		NativeValue: decimal.NewFromInt(1),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.TradeKindExchange, record.Kind)
	assert.Equal(t, domain.NativeAsset, record.SrcAsset)
	assert.Equal(t, batToken, record.DestAsset)
	assert.True(t, record.DestAmount.Equal(decimal.NewFromInt(2)))

	assert.True(t, f.controller.Assets.BalanceOf(domain.NativeAsset).IsZero())
	assert.True(t, f.controller.Assets.BalanceOf(batToken).Equal(decimal.NewFromInt(2)))
	f.tradeRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestTrade_OnlyManagerMayTrade(t *testing.T) {
	f := newFixture(0, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))

	_, err := f.controller.Trade(context.Background(), alice, TradeInput{
		SrcAsset:    domain.NativeAsset,
		SrcAmount:   decimal.NewFromInt(1),
		DestAsset:   batToken,
		NativeValue: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTrade_RejectsSameSrcAndDest(t *testing.T) {
	f := newFixture(0, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(1))

	_, err := f.controller.Trade(context.Background(), manager, TradeInput{
		SrcAsset:    domain.NativeAsset,
		SrcAmount:   decimal.NewFromInt(1),
		DestAsset:   domain.NativeAsset,
		NativeValue: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTrade_NativeValueMustMatchNativeTrades(t *testing.T) {
	f := newFixture(0, 0, false)
	ctx := context.Background()
	f.deposit(t, alice, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))

	// native trade with mismatched attached value
	_, err := f.controller.Trade(ctx, manager, TradeInput{
		SrcAsset:    domain.NativeAsset,
		SrcAmount:   decimal.NewFromInt(1),
		DestAsset:   batToken,
		NativeValue: decimal.NewFromFloat(0.5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// token trade with native value attached
	f.tradeNativeToBAT(t, decimal.NewFromInt(1))
	_, err = f.controller.Trade(ctx, manager, TradeInput{
		SrcAsset:    batToken,
		SrcAmount:   decimal.NewFromInt(1),
		DestAsset:   domain.NativeAsset,
		NativeValue: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTrade_RejectsOverspend(t *testing.T) {
	f := newFixture(0, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))

	_, err := f.controller.Trade(context.Background(), manager, TradeInput{
		SrcAsset:    domain.NativeAsset,
		SrcAmount:   decimal.NewFromInt(2),
		DestAsset:   batToken,
		NativeValue: decimal.NewFromInt(2),
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestTrade_SlippageGuardFailsWithoutMutation(t *testing.T) {
	f := newFixture(0, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))

	_, err := f.controller.Trade(context.Background(), manager, TradeInput{
		SrcAsset:    domain.NativeAsset,
		SrcAmount:   decimal.NewFromInt(1),
		DestAsset:   batToken,
		MinReturn:   decimal.NewFromInt(2),
		NativeValue: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, domain.ErrExternalFailure)
	assert.True(t, f.controller.Assets.BalanceOf(domain.NativeAsset).Equal(decimal.NewFromInt(1)))
	assert.True(t, f.controller.Assets.BalanceOf(batToken).IsZero())
	f.tradeRepo.AssertNotCalled(t, "Create")
}

func TestTrade_RejectsUnpermittedExchangePortal(t *testing.T) {
	f := newFixture(0, 0, false)
	// rebuild the controller against a directory that permits nothing
	fundRecord := f.controller.Fund
	controller := NewController(fundRecord, Collaborators{
		Exchange:     f.exchange,
		ExchangeAddr: exchangeAddr,
		Pools:        f.pools,
		PoolsAddr:    poolsAddr,
		Lending:      f.lending,
		Permitted:    portal.NewStaticDirectory(),
		Transferor:   f.custody,
		TradeRepo:    f.tradeRepo,
	})
	f.custody.Seed(alice, domain.NativeAsset, decimal.NewFromInt(1))
	_, err := controller.Deposit(context.Background(), alice, decimal.NewFromInt(1))
	assert.NoError(t, err)

	_, err = controller.Trade(context.Background(), manager, TradeInput{
		SrcAsset:    domain.NativeAsset,
		SrcAmount:   decimal.NewFromInt(1),
		DestAsset:   batToken,
		NativeValue: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestManagerCut_AccruesOnProfitOnly(t *testing.T) {
	f := newFixture(1000, 0, false)
	ctx := context.Background()

	f.deposit(t, alice, decimal.NewFromInt(1))

	remaining, fundValue, total, err := f.controller.CalculateFundManagerCut(ctx)
	assert.NoError(t, err)
	assert.True(t, remaining.IsZero())
	assert.True(t, fundValue.Equal(decimal.NewFromInt(1)))
	assert.True(t, total.IsZero())

	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	f.tradeNativeToBAT(t, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(2))

	remaining, fundValue, total, err = f.controller.CalculateFundManagerCut(ctx)
	assert.NoError(t, err)
	assert.True(t, remaining.Equal(decimal.NewFromFloat(0.1)), "remaining = %s", remaining)
	assert.True(t, fundValue.Equal(decimal.NewFromInt(2)))
	assert.True(t, total.Equal(decimal.NewFromFloat(0.1)))

	profit, err := f.controller.CalculateFundProfit(ctx)
	assert.NoError(t, err)
	assert.True(t, profit.Equal(decimal.NewFromInt(1)))
}

func TestFundManagerWithdraw_ClaimsAccruedCut(t *testing.T) {
	f := newFixture(1000, 0, false)
	ctx := context.Background()

	f.deposit(t, alice, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	f.tradeNativeToBAT(t, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(2))

	sharesBefore := f.controller.TotalShares()
	claimed, err := f.controller.FundManagerWithdraw(ctx, manager)

	assert.NoError(t, err)
	assert.True(t, claimed.Equal(decimal.NewFromFloat(0.1)), "claimed = %s", claimed)
	// 0.1 of value out of a fund holding 1 BAT at price 2
	assert.True(t, f.custody.BalanceOf(manager, batToken).Equal(decimal.NewFromFloat(0.05)))
	// the claim settles share-neutral
	assert.True(t, f.controller.TotalShares().Equal(sharesBefore))

	value, err := f.controller.CalculateFundValue(ctx)
	assert.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromFloat(1.9)), "value = %s", value)

	// the same profit cannot be claimed twice
	remaining, _, total, err := f.controller.CalculateFundManagerCut(ctx)
	assert.NoError(t, err)
	assert.True(t, remaining.IsZero())
	assert.True(t, total.Equal(decimal.NewFromFloat(0.1)))

	claimed, err = f.controller.FundManagerWithdraw(ctx, manager)
	assert.NoError(t, err)
	assert.True(t, claimed.IsZero())
}

func TestFundManagerWithdraw_NothingAccruedIsNoOp(t *testing.T) {
	f := newFixture(1000, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(1))

	claimed, err := f.controller.FundManagerWithdraw(context.Background(), manager)

	assert.NoError(t, err)
	assert.True(t, claimed.IsZero())
	assert.True(t, f.custody.BalanceOf(manager, domain.NativeAsset).IsZero())
}

func TestFundManagerWithdraw_OnlyManagerMayClaim(t *testing.T) {
	f := newFixture(1000, 0, false)

	_, err := f.controller.FundManagerWithdraw(context.Background(), alice)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestFundManagerWithdraw_SplitsPlatformShare(t *testing.T) {
	f := newFixture(1000, 2000, false)
	ctx := context.Background()

	f.deposit(t, alice, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	f.tradeNativeToBAT(t, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(2))

	claimed, err := f.controller.FundManagerWithdraw(ctx, manager)

	assert.NoError(t, err)
	assert.True(t, claimed.Equal(decimal.NewFromFloat(0.1)))
	// platform takes 20% of the cut, manager the rest, paid in BAT at price 2
	assert.True(t, f.custody.BalanceOf(manager, batToken).Equal(decimal.NewFromFloat(0.04)),
		"manager BAT = %s", f.custody.BalanceOf(manager, batToken))
	assert.True(t, f.custody.BalanceOf(platform, batToken).Equal(decimal.NewFromFloat(0.01)),
		"platform BAT = %s", f.custody.BalanceOf(platform, batToken))
}

func TestWithdraw_ReentrantCallIsRejectedWhileOuterCompletes(t *testing.T) {
	f := newFixture(0, 0, false)
	ctx := context.Background()
	f.deposit(t, alice, decimal.NewFromInt(1))

	var nestedErr error
	f.custody.RegisterHook(alice, func(ctx context.Context, asset domain.Asset, amount decimal.Decimal) error {
		// recipient code firing during the payout tries to withdraw again
		_, nestedErr = f.controller.Withdraw(ctx, alice, 5000)
		return nil
	})

	withdrawn, err := f.controller.Withdraw(ctx, alice, 0)

	assert.NoError(t, err)
	assert.True(t, withdrawn.Equal(decimal.NewFromInt(1)))
	assert.ErrorIs(t, nestedErr, domain.ErrReentrancy)
	// exactly one payout happened
	assert.True(t, f.custody.BalanceOf(alice, domain.NativeAsset).Equal(decimal.NewFromInt(1)))
	assert.True(t, f.controller.TotalShares().IsZero())
}

func TestDeposit_WhitelistEnforcement(t *testing.T) {
	f := newFixture(0, 0, true)
	ctx := context.Background()
	f.custody.Seed(alice, domain.NativeAsset, decimal.NewFromInt(2))
	f.custody.Seed(bob, domain.NativeAsset, decimal.NewFromInt(1))

	_, err := f.controller.Deposit(ctx, alice, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotWhitelisted)

	assert.NoError(t, f.controller.SetWhitelistAddress(manager, alice, true))
	_, err = f.controller.Deposit(ctx, alice, decimal.NewFromInt(1))
	assert.NoError(t, err)

	// removal takes effect immediately
	assert.NoError(t, f.controller.SetWhitelistAddress(manager, alice, false))
	_, err = f.controller.Deposit(ctx, alice, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotWhitelisted)

	// disabling the mode opens the fund to anyone
	assert.NoError(t, f.controller.SetWhitelistOnly(manager, false))
	_, err = f.controller.Deposit(ctx, bob, decimal.NewFromInt(1))
	assert.NoError(t, err)
}

func TestWhitelist_OnlyManagerMayConfigure(t *testing.T) {
	f := newFixture(0, 0, true)

	err := f.controller.SetWhitelistAddress(alice, alice, true)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = f.controller.SetWhitelistOnly(alice, false)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTransferShares_ProfitFollowsEachHoldersOwnBasis(t *testing.T) {
	f := newFixture(0, 0, false)
	ctx := context.Background()
	f.deposit(t, alice, decimal.NewFromInt(1))

	assert.NoError(t, f.controller.TransferShares(alice, bob, decimal.NewFromFloat(0.5)))

	assert.True(t, f.controller.BalanceOf(alice).Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, f.controller.BalanceOf(bob).Equal(decimal.NewFromFloat(0.5)))

	// alice's basis stays with her: down half a unit against her deposit
	aliceProfit, err := f.controller.CalculateAddressProfit(ctx, alice)
	assert.NoError(t, err)
	assert.True(t, aliceProfit.Equal(decimal.NewFromFloat(-0.5)), "aliceProfit = %s", aliceProfit)

	// bob never deposited, so his whole slice shows as profit
	bobProfit, err := f.controller.CalculateAddressProfit(ctx, bob)
	assert.NoError(t, err)
	assert.True(t, bobProfit.Equal(decimal.NewFromFloat(0.5)), "bobProfit = %s", bobProfit)
}

func TestTransferShares_RejectsOverdraw(t *testing.T) {
	f := newFixture(0, 0, false)
	f.deposit(t, alice, decimal.NewFromInt(1))

	err := f.controller.TransferShares(alice, bob, decimal.NewFromInt(2))

	assert.ErrorIs(t, err, domain.ErrInsufficientShares)
}

func TestBuyPool_SpendsConnectorsAndHoldsPoolToken(t *testing.T) {
	f := newFixture(0, 0, false)
	ctx := context.Background()
	f.deposit(t, alice, decimal.NewFromInt(2))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	f.tradeNativeToBAT(t, decimal.NewFromInt(1))
	f.pools.RegisterPool(lpToken, domain.NativeAsset, batToken, decimal.NewFromInt(1), decimal.NewFromInt(1))

	err := f.controller.BuyPool(ctx, manager, decimal.NewFromInt(1), domain.PoolChoiceUniswap, lpToken)

	assert.NoError(t, err)
	assert.True(t, f.controller.Assets.BalanceOf(domain.NativeAsset).IsZero())
	assert.True(t, f.controller.Assets.BalanceOf(batToken).IsZero())
	assert.True(t, f.controller.Assets.BalanceOf(lpToken).Equal(decimal.NewFromInt(1)))
	// one trade for the swap, one per connector leg
	f.tradeRepo.AssertNumberOfCalls(t, "Create", 3)
}

func TestSellPool_RestoresConnectorPair(t *testing.T) {
	f := newFixture(0, 0, false)
	ctx := context.Background()
	f.deposit(t, alice, decimal.NewFromInt(2))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	f.tradeNativeToBAT(t, decimal.NewFromInt(1))
	f.pools.RegisterPool(lpToken, domain.NativeAsset, batToken, decimal.NewFromInt(1), decimal.NewFromInt(1))
	assert.NoError(t, f.controller.BuyPool(ctx, manager, decimal.NewFromInt(1), domain.PoolChoiceUniswap, lpToken))

	err := f.controller.SellPool(ctx, manager, decimal.NewFromInt(1), domain.PoolChoiceUniswap, lpToken)

	assert.NoError(t, err)
	assert.True(t, f.controller.Assets.BalanceOf(lpToken).IsZero())
	assert.True(t, f.controller.Assets.BalanceOf(domain.NativeAsset).Equal(decimal.NewFromInt(1)))
	assert.True(t, f.controller.Assets.BalanceOf(batToken).Equal(decimal.NewFromInt(1)))
}

func TestPoolOperations_ValidateCallerAndInput(t *testing.T) {
	f := newFixture(0, 0, false)
	ctx := context.Background()
	f.deposit(t, alice, decimal.NewFromInt(1))
	f.pools.RegisterPool(lpToken, domain.NativeAsset, batToken, decimal.NewFromInt(1), decimal.NewFromInt(1))

	err := f.controller.BuyPool(ctx, alice, decimal.NewFromInt(1), domain.PoolChoiceUniswap, lpToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = f.controller.BuyPool(ctx, manager, decimal.Zero, domain.PoolChoiceUniswap, lpToken)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// holding no BAT, the portal would spend more than the fund holds
	err = f.controller.BuyPool(ctx, manager, decimal.NewFromInt(1), domain.PoolChoiceUniswap, lpToken)
	assert.ErrorIs(t, err, domain.ErrExternalFailure)

	err = f.controller.SellPool(ctx, manager, decimal.NewFromInt(1), domain.PoolChoiceUniswap, lpToken)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestCompoundMint_WrapsUnderlying(t *testing.T) {
	f := newFixture(0, 0, false)
	ctx := context.Background()
	f.deposit(t, alice, decimal.NewFromInt(1))
	f.lending.RegisterMarket(wrappedToken, domain.NativeAsset, decimal.NewFromInt(50))

	err := f.controller.CompoundMint(ctx, manager, decimal.NewFromInt(1), wrappedToken)

	assert.NoError(t, err)
	assert.True(t, f.controller.Assets.BalanceOf(domain.NativeAsset).IsZero())
	assert.True(t, f.controller.Assets.BalanceOf(wrappedToken).Equal(decimal.NewFromInt(50)))
}

func TestCompoundRedeemByPercent_UnwrapsSlice(t *testing.T) {
	f := newFixture(0, 0, false)
	ctx := context.Background()
	f.deposit(t, alice, decimal.NewFromInt(1))
	f.lending.RegisterMarket(wrappedToken, domain.NativeAsset, decimal.NewFromInt(50))
	assert.NoError(t, f.controller.CompoundMint(ctx, manager, decimal.NewFromInt(1), wrappedToken))

	err := f.controller.CompoundRedeemByPercent(ctx, manager, decimal.NewFromInt(50), wrappedToken)

	assert.NoError(t, err)
	assert.True(t, f.controller.Assets.BalanceOf(wrappedToken).Equal(decimal.NewFromInt(25)))
	assert.True(t, f.controller.Assets.BalanceOf(domain.NativeAsset).Equal(decimal.NewFromFloat(0.5)))
}

func TestCompoundOperations_ValidateInput(t *testing.T) {
	f := newFixture(0, 0, false)
	ctx := context.Background()
	f.deposit(t, alice, decimal.NewFromInt(1))
	f.lending.RegisterMarket(wrappedToken, domain.NativeAsset, decimal.NewFromInt(50))

	err := f.controller.CompoundMint(ctx, alice, decimal.NewFromInt(1), wrappedToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = f.controller.CompoundMint(ctx, manager, decimal.NewFromInt(2), wrappedToken)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	err = f.controller.CompoundRedeemByPercent(ctx, manager, decimal.NewFromInt(101), wrappedToken)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.controller.CompoundRedeemByPercent(ctx, manager, decimal.NewFromInt(50), wrappedToken)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestRemoveAsset_PrunesSoldOutToken(t *testing.T) {
	f := newFixture(0, 0, false)
	ctx := context.Background()
	f.deposit(t, alice, decimal.NewFromInt(1))
	f.exchange.SetPrice(batToken, decimal.NewFromInt(1))
	f.tradeNativeToBAT(t, decimal.NewFromInt(1))

	// sell it all back, leaving a zero-balance entry
	_, err := f.controller.Trade(ctx, manager, TradeInput{
		SrcAsset:  batToken,
		SrcAmount: decimal.NewFromInt(1),
		DestAsset: domain.NativeAsset,
	})
	assert.NoError(t, err)
	assert.Equal(t, []domain.Asset{domain.NativeAsset, batToken}, f.controller.GetAllTokenAddresses())

	err = f.controller.RemoveAsset(alice, batToken, 1)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.NoError(t, f.controller.RemoveAsset(manager, batToken, 1))
	assert.Equal(t, []domain.Asset{domain.NativeAsset}, f.controller.GetAllTokenAddresses())
}
