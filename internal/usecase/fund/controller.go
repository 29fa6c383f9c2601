package fund

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/blockvest/smartfund-backend/internal/domain"
	"github.com/blockvest/smartfund-backend/internal/usecase/fee"
	"github.com/blockvest/smartfund-backend/internal/usecase/valuation"
)

var (
	hundred         = decimal.NewFromInt(100)
	totalPercentage = decimal.NewFromInt(domain.TotalPercentageBP)
)

// TradeInput represents the input for an exchange trade
type TradeInput struct {
	SrcAsset  domain.Asset
	SrcAmount decimal.Decimal
	DestAsset domain.Asset
	MinReturn decimal.Decimal
	// NativeValue is the native-coin amount attached to the operation.
	// It must equal SrcAmount when trading out of the native asset and be
	// zero otherwise.
	NativeValue decimal.Decimal
	RoutingData []byte
}

// Collaborators bundles the external integrations a fund controller talks to
type Collaborators struct {
	Exchange     domain.ExchangePortal
	ExchangeAddr domain.Address
	Pools        domain.PoolPortal
	PoolsAddr    domain.Address
	Lending      domain.LendingPortal
	Permitted    domain.PermittedDirectory
	Transferor   domain.AssetTransferor
	TradeRepo    domain.TradeRecordRepository
}

// Controller orchestrates deposit, withdraw, trade and fee-claim operations for
// a single fund instance. It is the only component that calls out to external
// trading integrations, and it enforces access control and the reentrancy guard.
//
// Every state-mutating operation runs to completion atomically with respect to
// the others: internal ledger mutations complete before any external value
// transfer is issued, and a nested call arriving while an operation is in
// progress (e.g. from recipient code invoked by a payout) is rejected with
// ErrReentrancy rather than queued.
type Controller struct {
	Fund      *domain.Fund
	Assets    *domain.AssetLedger
	Shares    *domain.ShareLedger
	Basis     *domain.CostBasisTracker
	Valuation *valuation.Engine
	Fees      *fee.Engine

	collab Collaborators

	// op is held for the full duration of every operation, including external
	// transfers. Acquired with TryLock so a reentrant call fails fast instead
	// of deadlocking; top-level serialization is the caller's responsibility,
	// matching the single-writer execution model.
	op sync.Mutex

	whitelistOnly bool
	whitelist     map[domain.Address]bool
}

// NewController creates a fund controller with fresh ledgers for the given fund record
func NewController(fund *domain.Fund, collab Collaborators) *Controller {
	return &Controller{
		Fund:          fund,
		Assets:        domain.NewAssetLedger(fund.QuoteAsset),
		Shares:        domain.NewShareLedger(),
		Basis:         domain.NewCostBasisTracker(),
		Valuation:     valuation.NewEngine(collab.Exchange, fund.QuoteAsset),
		Fees:          fee.NewEngine(fund.SuccessFeeBP, fund.PlatformFeeBP),
		collab:        collab,
		whitelistOnly: fund.WhitelistOnly,
		whitelist:     make(map[domain.Address]bool),
	}
}

// enter acquires the per-fund operation guard. A call arriving while another
// operation is in progress on this fund is a reentrancy violation.
func (c *Controller) enter() error {
	if !c.op.TryLock() {
		return domain.ErrReentrancy
	}
	return nil
}

func (c *Controller) exit() {
	c.op.Unlock()
}

func (c *Controller) requireManager(caller domain.Address) error {
	if caller != c.Fund.Manager {
		return fmt.Errorf("%w: only the fund manager may perform this operation", domain.ErrUnauthorized)
	}
	return nil
}

// Deposit transfers amount of the base asset into the fund and mints shares for
// the depositor. Shares are priced against the fund value before the deposit,
// net of the manager's accrued-but-unclaimed cut, so the accrued fee stays
// attributable to the manager rather than being diluted by new capital.
// Returns the number of shares minted.
func (c *Controller) Deposit(ctx context.Context, from domain.Address, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := c.enter(); err != nil {
		return decimal.Zero, err
	}
	defer c.exit()

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: deposit amount must be positive", domain.ErrInvalidInput)
	}
	if c.whitelistOnly && !c.whitelist[from] {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrNotWhitelisted, from)
	}

	// Price the basket before the new capital arrives
	fundValueBefore, err := c.Valuation.FundValue(ctx, c.Assets)
	if err != nil {
		return decimal.Zero, err
	}
	remainingCut, _ := c.Fees.ManagerCut(fundValueBefore, c.Basis.TotalDeposited(), c.Basis.TotalWithdrawn())

	contributed, err := c.Valuation.ValueOf(ctx, c.Fund.BaseAsset, amount)
	if err != nil {
		return decimal.Zero, err
	}
	if contributed.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: deposit has no quote value", domain.ErrInvalidInput)
	}

	if err := c.collab.Transferor.TransferIn(ctx, c.Fund.BaseAsset, from, amount); err != nil {
		return decimal.Zero, fmt.Errorf("%w: deposit transfer: %v", domain.ErrExternalFailure, err)
	}
	if err := c.Assets.Credit(c.Fund.BaseAsset, amount); err != nil {
		return decimal.Zero, err
	}

	minted, err := c.Shares.IssueShares(from, contributed, fundValueBefore.Sub(remainingCut))
	if err != nil {
		return decimal.Zero, err
	}
	if err := c.Basis.RecordDeposit(from, contributed); err != nil {
		return decimal.Zero, err
	}
	return minted, nil
}

// Withdraw burns percentBP (basis points) of the caller's shares and pays out
// the matching fraction of every held asset. A percent of 0 means 100%, kept
// for compatibility with the original fund surface.
//
// The payout is scaled by (fundValue - accrued manager cut) / fundValue so the
// manager's unclaimed fee stays in the fund; the full requested share count is
// burned regardless. All internal accounting (share burn, balance decrements,
// cost-basis update) completes before any asset leaves custody.
// Returns the unit-of-account value withdrawn.
func (c *Controller) Withdraw(ctx context.Context, from domain.Address, percentBP int64) (decimal.Decimal, error) {
	if err := c.enter(); err != nil {
		return decimal.Zero, err
	}
	defer c.exit()

	if percentBP < 0 || percentBP > domain.TotalPercentageBP {
		return decimal.Zero, fmt.Errorf("%w: withdraw percent must be within [0,10000] basis points", domain.ErrInvalidInput)
	}
	if percentBP == 0 {
		percentBP = domain.TotalPercentageBP
	}

	shares := c.Shares.BalanceOf(from)
	if shares.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: %s holds no shares", domain.ErrInsufficientShares, from)
	}
	withdrawShares := shares.Mul(decimal.NewFromInt(percentBP)).Div(totalPercentage)
	totalShares := c.Shares.TotalShares()

	fundValue, err := c.Valuation.FundValue(ctx, c.Assets)
	if err != nil {
		return decimal.Zero, err
	}
	remainingCut, _ := c.Fees.ManagerCut(fundValue, c.Basis.TotalDeposited(), c.Basis.TotalWithdrawn())

	// Fraction of the basket owed to the burned shares, scaled down so the
	// manager's accrued cut stays behind
	fraction := withdrawShares.Div(totalShares)
	payoutScale := decimal.NewFromInt(1)
	if fundValue.GreaterThan(decimal.Zero) {
		payoutScale = fundValue.Sub(remainingCut).Div(fundValue)
	}
	payoutFraction := fraction.Mul(payoutScale)
	withdrawnValue := fundValue.Mul(payoutFraction)

	type payout struct {
		asset  domain.Asset
		amount decimal.Decimal
	}
	var payouts []payout
	for _, asset := range c.Assets.ListAssets() {
		amount := c.Assets.BalanceOf(asset).Mul(payoutFraction)
		if amount.IsPositive() {
			payouts = append(payouts, payout{asset: asset, amount: amount})
		}
	}

	// Accounting first, transfers last
	if err := c.Shares.RedeemShares(from, withdrawShares); err != nil {
		return decimal.Zero, err
	}
	for _, p := range payouts {
		if err := c.Assets.Debit(p.asset, p.amount); err != nil {
			return decimal.Zero, err
		}
	}
	if err := c.Basis.RecordWithdrawal(from, withdrawnValue); err != nil {
		return decimal.Zero, err
	}

	for _, p := range payouts {
		if err := c.collab.Transferor.TransferOut(ctx, p.asset, from, p.amount); err != nil {
			return decimal.Zero, fmt.Errorf("%w: withdrawal payout of %s: %v", domain.ErrExternalFailure, p.asset, err)
		}
	}
	return withdrawnValue, nil
}

// Trade executes a manager-only swap through the permitted exchange portal.
// Balance changes are all-or-nothing: nothing mutates until the portal has
// reported the received amount and the slippage guard has passed.
func (c *Controller) Trade(ctx context.Context, caller domain.Address, input TradeInput) (*domain.TradeRecord, error) {
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer c.exit()

	if err := c.requireManager(caller); err != nil {
		return nil, err
	}
	if !c.collab.Permitted.IsPermitted(c.collab.ExchangeAddr) {
		return nil, fmt.Errorf("%w: exchange portal %s is not permitted", domain.ErrUnauthorized, c.collab.ExchangeAddr)
	}
	if input.SrcAsset == input.DestAsset {
		return nil, fmt.Errorf("%w: source and destination assets must differ", domain.ErrInvalidInput)
	}
	if input.SrcAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: trade amount must be positive", domain.ErrInvalidInput)
	}
	if input.SrcAsset == domain.NativeAsset {
		if !input.NativeValue.Equal(input.SrcAmount) {
			return nil, fmt.Errorf("%w: attached native value %s does not match trade amount %s",
				domain.ErrInvalidInput, input.NativeValue, input.SrcAmount)
		}
	} else if !input.NativeValue.IsZero() {
		return nil, fmt.Errorf("%w: native value attached to a token trade", domain.ErrInvalidInput)
	}
	if c.Assets.BalanceOf(input.SrcAsset).LessThan(input.SrcAmount) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientBalance, input.SrcAsset)
	}

	received, err := c.collab.Exchange.Trade(ctx, input.SrcAsset, input.SrcAmount, input.DestAsset, input.MinReturn, input.RoutingData)
	if err != nil {
		return nil, fmt.Errorf("%w: exchange trade: %v", domain.ErrExternalFailure, err)
	}
	if received.LessThan(input.MinReturn) {
		return nil, fmt.Errorf("%w: received %s below minimum %s", domain.ErrExternalFailure, received, input.MinReturn)
	}

	record := &domain.TradeRecord{
		ID:         uuid.New(),
		FundID:     c.Fund.ID,
		Kind:       domain.TradeKindExchange,
		SrcAsset:   input.SrcAsset,
		SrcAmount:  input.SrcAmount,
		DestAsset:  input.DestAsset,
		DestAmount: received,
		ExecutedAt: time.Now(),
	}
	if err := c.recordTrade(ctx, record); err != nil {
		return nil, err
	}

	if err := c.Assets.Debit(input.SrcAsset, input.SrcAmount); err != nil {
		return nil, err
	}
	if err := c.Assets.Credit(input.DestAsset, received); err != nil {
		return nil, err
	}
	return record, nil
}

// BuyPool converts fund assets into a pool-share asset through the permitted
// pool portal. The portal reports exactly which asset amounts it spent so the
// balance bookkeeping stays all-or-nothing.
func (c *Controller) BuyPool(ctx context.Context, caller domain.Address, amount decimal.Decimal, choice domain.PoolChoice, poolToken domain.Asset) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()

	if err := c.requireManager(caller); err != nil {
		return err
	}
	if !c.collab.Permitted.IsPermitted(c.collab.PoolsAddr) {
		return fmt.Errorf("%w: pool portal %s is not permitted", domain.ErrUnauthorized, c.collab.PoolsAddr)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: pool buy amount must be positive", domain.ErrInvalidInput)
	}

	received, spent, err := c.collab.Pools.Buy(ctx, amount, choice, poolToken)
	if err != nil {
		return fmt.Errorf("%w: pool buy: %v", domain.ErrExternalFailure, err)
	}
	for _, s := range spent {
		if c.Assets.BalanceOf(s.Asset).LessThan(s.Amount) {
			return fmt.Errorf("%w: pool portal spent more %s than held", domain.ErrExternalFailure, s.Asset)
		}
	}

	for _, s := range spent {
		record := &domain.TradeRecord{
			ID:         uuid.New(),
			FundID:     c.Fund.ID,
			Kind:       domain.TradeKindPoolBuy,
			SrcAsset:   s.Asset,
			SrcAmount:  s.Amount,
			DestAsset:  poolToken,
			DestAmount: received,
			ExecutedAt: time.Now(),
		}
		if err := c.recordTrade(ctx, record); err != nil {
			return err
		}
	}

	for _, s := range spent {
		if err := c.Assets.Debit(s.Asset, s.Amount); err != nil {
			return err
		}
	}
	return c.Assets.Credit(poolToken, received)
}

// SellPool redeems a pool-share asset back into the underlying pair
func (c *Controller) SellPool(ctx context.Context, caller domain.Address, amount decimal.Decimal, choice domain.PoolChoice, poolToken domain.Asset) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()

	if err := c.requireManager(caller); err != nil {
		return err
	}
	if !c.collab.Permitted.IsPermitted(c.collab.PoolsAddr) {
		return fmt.Errorf("%w: pool portal %s is not permitted", domain.ErrUnauthorized, c.collab.PoolsAddr)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: pool sell amount must be positive", domain.ErrInvalidInput)
	}
	if c.Assets.BalanceOf(poolToken).LessThan(amount) {
		return fmt.Errorf("%w: %s", domain.ErrInsufficientBalance, poolToken)
	}

	received, err := c.collab.Pools.Sell(ctx, amount, choice, poolToken)
	if err != nil {
		return fmt.Errorf("%w: pool sell: %v", domain.ErrExternalFailure, err)
	}

	for _, r := range received {
		record := &domain.TradeRecord{
			ID:         uuid.New(),
			FundID:     c.Fund.ID,
			Kind:       domain.TradeKindPoolSell,
			SrcAsset:   poolToken,
			SrcAmount:  amount,
			DestAsset:  r.Asset,
			DestAmount: r.Amount,
			ExecutedAt: time.Now(),
		}
		if err := c.recordTrade(ctx, record); err != nil {
			return err
		}
	}

	if err := c.Assets.Debit(poolToken, amount); err != nil {
		return err
	}
	for _, r := range received {
		if err := c.Assets.Credit(r.Asset, r.Amount); err != nil {
			return err
		}
	}
	return nil
}

// CompoundMint wraps an amount of the underlying asset into its yield-bearing
// representation through the lending portal
func (c *Controller) CompoundMint(ctx context.Context, caller domain.Address, amount decimal.Decimal, wrapped domain.Asset) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()

	if err := c.requireManager(caller); err != nil {
		return err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: mint amount must be positive", domain.ErrInvalidInput)
	}
	underlying, err := c.collab.Lending.UnderlyingOf(wrapped)
	if err != nil {
		return fmt.Errorf("%w: resolving underlying of %s: %v", domain.ErrExternalFailure, wrapped, err)
	}
	if c.Assets.BalanceOf(underlying).LessThan(amount) {
		return fmt.Errorf("%w: %s", domain.ErrInsufficientBalance, underlying)
	}

	receivedWrapped, err := c.collab.Lending.Mint(ctx, amount, wrapped)
	if err != nil {
		return fmt.Errorf("%w: lending mint: %v", domain.ErrExternalFailure, err)
	}

	record := &domain.TradeRecord{
		ID:         uuid.New(),
		FundID:     c.Fund.ID,
		Kind:       domain.TradeKindLendMint,
		SrcAsset:   underlying,
		SrcAmount:  amount,
		DestAsset:  wrapped,
		DestAmount: receivedWrapped,
		ExecutedAt: time.Now(),
	}
	if err := c.recordTrade(ctx, record); err != nil {
		return err
	}

	if err := c.Assets.Debit(underlying, amount); err != nil {
		return err
	}
	return c.Assets.Credit(wrapped, receivedWrapped)
}

// CompoundRedeemByPercent unwraps percent (0,100] of the held wrapped asset
// back into its underlying
func (c *Controller) CompoundRedeemByPercent(ctx context.Context, caller domain.Address, percent decimal.Decimal, wrapped domain.Asset) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()

	if err := c.requireManager(caller); err != nil {
		return err
	}
	if percent.LessThanOrEqual(decimal.Zero) || percent.GreaterThan(hundred) {
		return fmt.Errorf("%w: redeem percent must be in (0,100]", domain.ErrInvalidInput)
	}
	held := c.Assets.BalanceOf(wrapped)
	if held.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: %s", domain.ErrInsufficientBalance, wrapped)
	}
	underlying, err := c.collab.Lending.UnderlyingOf(wrapped)
	if err != nil {
		return fmt.Errorf("%w: resolving underlying of %s: %v", domain.ErrExternalFailure, wrapped, err)
	}
	redeemed := held.Mul(percent).Div(hundred)

	receivedUnderlying, err := c.collab.Lending.RedeemByPercent(ctx, percent, held, wrapped)
	if err != nil {
		return fmt.Errorf("%w: lending redeem: %v", domain.ErrExternalFailure, err)
	}

	record := &domain.TradeRecord{
		ID:         uuid.New(),
		FundID:     c.Fund.ID,
		Kind:       domain.TradeKindLendRedeem,
		SrcAsset:   wrapped,
		SrcAmount:  redeemed,
		DestAsset:  underlying,
		DestAmount: receivedUnderlying,
		ExecutedAt: time.Now(),
	}
	if err := c.recordTrade(ctx, record); err != nil {
		return err
	}

	if err := c.Assets.Debit(wrapped, redeemed); err != nil {
		return err
	}
	return c.Assets.Credit(underlying, receivedUnderlying)
}

// FundManagerWithdraw claims the manager's accrued performance fee and the
// platform's cut of it.
// Logic:
//  1. Mint manager/platform shares at the same issuance rate a deposit of that
//     value would get, diluting existing holders exactly as a deposit would
//  2. Transfer the equivalent pro-rata asset slices out of the fund
//  3. Burn the shares just minted, so shares outstanding are unchanged after
//     the claim settles while assets equal to the cut have left the fund
//  4. Advance the cashed-out baseline so the same profit cannot be claimed twice
//
// Returns the total value claimed (manager + platform). A claim with nothing
// accrued is a value-neutral no-op.
func (c *Controller) FundManagerWithdraw(ctx context.Context, caller domain.Address) (decimal.Decimal, error) {
	if err := c.enter(); err != nil {
		return decimal.Zero, err
	}
	defer c.exit()

	if err := c.requireManager(caller); err != nil {
		return decimal.Zero, err
	}

	fundValue, err := c.Valuation.FundValue(ctx, c.Assets)
	if err != nil {
		return decimal.Zero, err
	}
	remainingCut, _ := c.Fees.ManagerCut(fundValue, c.Basis.TotalDeposited(), c.Basis.TotalWithdrawn())
	if remainingCut.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	managerPart, platformPart := c.Fees.SplitCut(remainingCut)
	priceBase := fundValue.Sub(remainingCut)

	mintedManager := decimal.Zero
	if managerPart.IsPositive() {
		if mintedManager, err = c.Shares.IssueShares(c.Fund.Manager, managerPart, priceBase); err != nil {
			return decimal.Zero, err
		}
	}
	mintedPlatform := decimal.Zero
	if platformPart.IsPositive() {
		if mintedPlatform, err = c.Shares.IssueShares(c.Fund.Platform, platformPart, priceBase); err != nil {
			return decimal.Zero, err
		}
	}

	type payout struct {
		asset  domain.Asset
		to     domain.Address
		amount decimal.Decimal
	}
	var payouts []payout
	managerFraction := managerPart.Div(fundValue)
	platformFraction := platformPart.Div(fundValue)
	for _, asset := range c.Assets.ListAssets() {
		balance := c.Assets.BalanceOf(asset)
		if managerSlice := balance.Mul(managerFraction); managerSlice.IsPositive() {
			payouts = append(payouts, payout{asset: asset, to: c.Fund.Manager, amount: managerSlice})
		}
		if platformSlice := balance.Mul(platformFraction); platformSlice.IsPositive() {
			payouts = append(payouts, payout{asset: asset, to: c.Fund.Platform, amount: platformSlice})
		}
	}

	// Settle the claim internally before any asset leaves custody
	for _, p := range payouts {
		if err := c.Assets.Debit(p.asset, p.amount); err != nil {
			return decimal.Zero, err
		}
	}
	if mintedManager.IsPositive() {
		if err := c.Shares.RedeemShares(c.Fund.Manager, mintedManager); err != nil {
			return decimal.Zero, err
		}
	}
	if mintedPlatform.IsPositive() {
		if err := c.Shares.RedeemShares(c.Fund.Platform, mintedPlatform); err != nil {
			return decimal.Zero, err
		}
	}
	if err := c.Fees.RecordCashOut(remainingCut); err != nil {
		return decimal.Zero, err
	}

	for _, p := range payouts {
		if err := c.collab.Transferor.TransferOut(ctx, p.asset, p.to, p.amount); err != nil {
			return decimal.Zero, fmt.Errorf("%w: fee payout of %s: %v", domain.ErrExternalFailure, p.asset, err)
		}
	}
	return remainingCut, nil
}

// recordTrade validates and persists a trade record
func (c *Controller) recordTrade(ctx context.Context, record *domain.TradeRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := c.collab.TradeRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("recording trade: %w", err)
	}
	return nil
}

// CalculateFundValue returns the current fund value in the quote asset
func (c *Controller) CalculateFundValue(ctx context.Context) (decimal.Decimal, error) {
	if err := c.enter(); err != nil {
		return decimal.Zero, err
	}
	defer c.exit()
	return c.Valuation.FundValue(ctx, c.Assets)
}

// CalculateAddressProfit returns a depositor's profit against their own cost
// basis. May be negative.
func (c *Controller) CalculateAddressProfit(ctx context.Context, addr domain.Address) (decimal.Decimal, error) {
	if err := c.enter(); err != nil {
		return decimal.Zero, err
	}
	defer c.exit()

	fundValue, err := c.Valuation.FundValue(ctx, c.Assets)
	if err != nil {
		return decimal.Zero, err
	}
	totalShares := c.Shares.TotalShares()
	shareValue := decimal.Zero
	if totalShares.IsPositive() {
		shareValue = fundValue.Div(totalShares)
	}
	return c.Basis.ProfitOf(addr, c.Shares.BalanceOf(addr), shareValue), nil
}

// CalculateFundProfit returns the aggregate fund profit display figure
func (c *Controller) CalculateFundProfit(ctx context.Context) (decimal.Decimal, error) {
	if err := c.enter(); err != nil {
		return decimal.Zero, err
	}
	defer c.exit()

	fundValue, err := c.Valuation.FundValue(ctx, c.Assets)
	if err != nil {
		return decimal.Zero, err
	}
	return c.Basis.FundProfit(fundValue), nil
}

// CalculateFundManagerCut returns the manager's remaining claimable cut, the
// current fund value, and the total cut ever accrued (claimed + remaining)
func (c *Controller) CalculateFundManagerCut(ctx context.Context) (remaining, fundValue, total decimal.Decimal, err error) {
	if err = c.enter(); err != nil {
		return
	}
	defer c.exit()

	fundValue, err = c.Valuation.FundValue(ctx, c.Assets)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}
	remaining, total = c.Fees.ManagerCut(fundValue, c.Basis.TotalDeposited(), c.Basis.TotalWithdrawn())
	return remaining, fundValue, total, nil
}

// GetAllTokenAddresses returns the held asset identifiers in insertion order
func (c *Controller) GetAllTokenAddresses() []domain.Asset {
	return c.Assets.ListAssets()
}

// TotalShares returns the outstanding share supply
func (c *Controller) TotalShares() decimal.Decimal {
	return c.Shares.TotalShares()
}

// BalanceOf returns a holder's share balance
func (c *Controller) BalanceOf(holder domain.Address) decimal.Decimal {
	return c.Shares.BalanceOf(holder)
}

// TransferShares moves shares between holders. Cost basis stays with the
// sender's history; the recipient's profit is computed against their own.
func (c *Controller) TransferShares(from, to domain.Address, shares decimal.Decimal) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()
	return c.Shares.Transfer(from, to, shares)
}

// RemoveAsset prunes a zero-balance asset from the held-assets list, keeping
// valuation and withdrawal iteration cost bounded. Manager-only; the index must
// match the asset's current position.
func (c *Controller) RemoveAsset(caller domain.Address, asset domain.Asset, index int) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()

	if err := c.requireManager(caller); err != nil {
		return err
	}
	return c.Assets.RemoveAsset(asset, index)
}

// SetWhitelistOnly toggles whitelist-only deposit mode. Manager-only.
func (c *Controller) SetWhitelistOnly(caller domain.Address, enabled bool) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()

	if err := c.requireManager(caller); err != nil {
		return err
	}
	c.whitelistOnly = enabled
	return nil
}

// SetWhitelistAddress adds or removes an address from the deposit whitelist. Manager-only.
func (c *Controller) SetWhitelistAddress(caller, addr domain.Address, allowed bool) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.exit()

	if err := c.requireManager(caller); err != nil {
		return err
	}
	c.whitelist[addr] = allowed
	return nil
}
