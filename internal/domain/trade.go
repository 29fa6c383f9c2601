package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeRecord is the observability record emitted for every executed
// trade/pool/lending operation: asset in, amount in, asset out, amount out.
type TradeRecord struct {
	ID         uuid.UUID
	FundID     uuid.UUID
	Kind       TradeKind
	SrcAsset   Asset
	SrcAmount  decimal.Decimal
	DestAsset  Asset
	DestAmount decimal.Decimal
	ExecutedAt time.Time
}

// Validate ensures the trade record adheres to domain rules
func (r *TradeRecord) Validate() error {
	if r.FundID == uuid.Nil {
		return errors.New("trade record must reference a fund")
	}
	if r.SrcAsset == r.DestAsset {
		return errors.New("trade record source and destination assets must differ")
	}
	if r.SrcAmount.LessThanOrEqual(decimal.Zero) {
		return errors.New("trade record source amount must be positive")
	}
	if r.DestAmount.IsNegative() {
		return errors.New("trade record destination amount cannot be negative")
	}
	switch r.Kind {
	case TradeKindExchange, TradeKindPoolBuy, TradeKindPoolSell, TradeKindLendMint, TradeKindLendRedeem:
	default:
		return errors.New("trade record kind must be a known trade kind")
	}
	return nil
}
