package valuation

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blockvest/smartfund-backend/internal/domain"
)

const (
	quoteAsset = domain.Asset("DAI")
	batAsset   = domain.Asset("0xBAT")
)

// MockExchangePortal is a mock implementation of ExchangePortal for testing
type MockExchangePortal struct {
	mock.Mock
}

func (m *MockExchangePortal) Quote(ctx context.Context, src domain.Asset, amount decimal.Decimal, dest domain.Asset) (decimal.Decimal, error) {
	args := m.Called(ctx, src, amount, dest)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExchangePortal) Trade(ctx context.Context, src domain.Asset, amount decimal.Decimal, dest domain.Asset, minReturn decimal.Decimal, routingData []byte) (decimal.Decimal, error) {
	args := m.Called(ctx, src, amount, dest, minReturn, routingData)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func TestValueOf_QuoteAssetAtPar(t *testing.T) {
	mockPortal := new(MockExchangePortal)
	engine := NewEngine(mockPortal, quoteAsset)

	value, err := engine.ValueOf(context.Background(), quoteAsset, decimal.NewFromInt(100))

	assert.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromInt(100)))
	// The portal must never be consulted for the quote asset itself
	mockPortal.AssertNotCalled(t, "Quote")
}

func TestValueOf_UsesPortalQuote(t *testing.T) {
	ctx := context.Background()
	mockPortal := new(MockExchangePortal)
	engine := NewEngine(mockPortal, quoteAsset)

	amount := decimal.NewFromInt(100)
	mockPortal.On("Quote", ctx, batAsset, amount, quoteAsset).Return(decimal.NewFromInt(200), nil)

	value, err := engine.ValueOf(ctx, batAsset, amount)

	assert.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromInt(200)))
	mockPortal.AssertExpectations(t)
}

func TestValueOf_ZeroQuoteIsNoLiquidityNotError(t *testing.T) {
	ctx := context.Background()
	mockPortal := new(MockExchangePortal)
	engine := NewEngine(mockPortal, quoteAsset)

	mockPortal.On("Quote", ctx, batAsset, decimal.NewFromInt(100), quoteAsset).Return(decimal.Zero, nil)

	value, err := engine.ValueOf(ctx, batAsset, decimal.NewFromInt(100))

	assert.NoError(t, err)
	assert.True(t, value.IsZero())
}

func TestValueOf_PortalErrorPropagates(t *testing.T) {
	ctx := context.Background()
	mockPortal := new(MockExchangePortal)
	engine := NewEngine(mockPortal, quoteAsset)

	mockPortal.On("Quote", ctx, batAsset, decimal.NewFromInt(100), quoteAsset).
		Return(decimal.Zero, errors.New("portal down"))

	_, err := engine.ValueOf(ctx, batAsset, decimal.NewFromInt(100))

	assert.ErrorIs(t, err, domain.ErrExternalFailure)
}

func TestValueOf_ZeroAmountSkipsPortal(t *testing.T) {
	mockPortal := new(MockExchangePortal)
	engine := NewEngine(mockPortal, quoteAsset)

	value, err := engine.ValueOf(context.Background(), batAsset, decimal.Zero)

	assert.NoError(t, err)
	assert.True(t, value.IsZero())
	mockPortal.AssertNotCalled(t, "Quote")
}

func TestFundValue_SumsWholeBasket(t *testing.T) {
	ctx := context.Background()
	mockPortal := new(MockExchangePortal)
	engine := NewEngine(mockPortal, quoteAsset)

	ledger := domain.NewAssetLedger(quoteAsset)
	assert.NoError(t, ledger.Credit(quoteAsset, decimal.NewFromInt(100)))
	assert.NoError(t, ledger.Credit(batAsset, decimal.NewFromInt(50)))

	mockPortal.On("Quote", ctx, batAsset, decimal.NewFromInt(50), quoteAsset).Return(decimal.NewFromInt(75), nil)

	total, err := engine.FundValue(ctx, ledger)

	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(175)))
	mockPortal.AssertExpectations(t)
}

func TestFundValue_EmptyFundIsZero(t *testing.T) {
	mockPortal := new(MockExchangePortal)
	engine := NewEngine(mockPortal, quoteAsset)

	total, err := engine.FundValue(context.Background(), domain.NewAssetLedger(quoteAsset))

	assert.NoError(t, err)
	assert.True(t, total.IsZero())
}
