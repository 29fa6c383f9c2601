package portal

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/blockvest/smartfund-backend/internal/domain"
)

// ReceiveHook is invoked when a transfer lands at a registered recipient.
// It runs before TransferOut returns, which makes it the place recipient-owned
// code can attempt to re-enter the fund.
type ReceiveHook func(ctx context.Context, asset domain.Asset, amount decimal.Decimal) error

// CustodyBook is an in-process asset transferor tracking external account
// balances. It backs paper-trading deployments and the reentrancy tests.
type CustodyBook struct {
	mu       sync.Mutex
	accounts map[domain.Address]map[domain.Asset]decimal.Decimal
	hooks    map[domain.Address]ReceiveHook
}

// NewCustodyBook creates an empty custody book
func NewCustodyBook() *CustodyBook {
	return &CustodyBook{
		accounts: make(map[domain.Address]map[domain.Asset]decimal.Decimal),
		hooks:    make(map[domain.Address]ReceiveHook),
	}
}

// Seed credits an external account, e.g. a depositor funding up before depositing
func (b *CustodyBook) Seed(owner domain.Address, asset domain.Asset, amount decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.credit(owner, asset, amount)
}

// RegisterHook attaches recipient code to an address. Transfers to that
// address invoke the hook after the balance is credited.
func (b *CustodyBook) RegisterHook(owner domain.Address, hook ReceiveHook) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks[owner] = hook
}

// BalanceOf returns an external account's balance of an asset
func (b *CustodyBook) BalanceOf(owner domain.Address, asset domain.Asset) decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.accounts[owner][asset]
}

// TransferIn moves an asset from an external account into fund custody
func (b *CustodyBook) TransferIn(ctx context.Context, asset domain.Asset, from domain.Address, amount decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	balance := b.accounts[from][asset]
	if balance.LessThan(amount) {
		return fmt.Errorf("custody: %s holds %s of %s, cannot transfer %s", from, balance, asset, amount)
	}
	b.accounts[from][asset] = balance.Sub(amount)
	return nil
}

// TransferOut moves an asset from fund custody to an external account and
// invokes the recipient's hook, if any. A hook error fails the transfer.
func (b *CustodyBook) TransferOut(ctx context.Context, asset domain.Asset, to domain.Address, amount decimal.Decimal) error {
	b.mu.Lock()
	b.credit(to, asset, amount)
	hook := b.hooks[to]
	b.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, asset, amount); err != nil {
			return fmt.Errorf("custody: recipient %s rejected transfer: %w", to, err)
		}
	}
	return nil
}

// credit assumes b.mu is held
func (b *CustodyBook) credit(owner domain.Address, asset domain.Asset, amount decimal.Decimal) {
	if b.accounts[owner] == nil {
		b.accounts[owner] = make(map[domain.Asset]decimal.Decimal)
	}
	b.accounts[owner][asset] = b.accounts[owner][asset].Add(amount)
}
