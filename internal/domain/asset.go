package domain

import "github.com/shopspring/decimal"

// Asset identifies a token held by a fund (address-like string identifier)
type Asset string

// NativeAsset is the sentinel identifier for the chain's native coin
const NativeAsset Asset = "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"

// Address identifies a depositor, manager, platform or portal
type Address string

// AssetAmount pairs an asset with a quantity, used by portal calls that
// spend or return more than one asset at once
type AssetAmount struct {
	Asset  Asset
	Amount decimal.Decimal
}

// PoolChoice selects which liquidity-pool venue a pool operation routes through
type PoolChoice string

const (
	PoolChoiceBancor  PoolChoice = "BANCOR"
	PoolChoiceUniswap PoolChoice = "UNISWAP"
)

// TradeKind classifies how a trade record was produced
type TradeKind string

const (
	TradeKindExchange   TradeKind = "EXCHANGE"
	TradeKindPoolBuy    TradeKind = "POOL_BUY"
	TradeKindPoolSell   TradeKind = "POOL_SELL"
	TradeKindLendMint   TradeKind = "LEND_MINT"
	TradeKindLendRedeem TradeKind = "LEND_REDEEM"
)
