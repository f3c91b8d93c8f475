// Package memory provides an in-memory Mover for tests and demos.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/xraph/vesting/transfer"
	"github.com/xraph/vesting/types"
)

// Sentinel errors surfaced through transfer.Error.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Bank is an in-memory asset bank with a designated custody account.
// It implements transfer.Mover over plain balance maps.
type Bank struct {
	mu       sync.RWMutex
	custody  string
	balances map[string]map[string]types.Amount // asset -> holder -> balance
}

var _ transfer.Mover = (*Bank)(nil)

// New creates a Bank whose custody account is the given identifier.
func New(custody string) *Bank {
	return &Bank{
		custody:  custody,
		balances: make(map[string]map[string]types.Amount),
	}
}

// Custody returns the custody account identifier.
func (b *Bank) Custody() string { return b.custody }

// Mint credits amount units of asset to holder. Test setup helper.
func (b *Bank) Mint(asset, holder string, amount types.Amount) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.credit(asset, holder, amount)
}

// Balance returns holder's balance of asset.
func (b *Bank) Balance(asset, holder string) types.Amount {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balance(asset, holder)
}

// TransferIn implements transfer.Mover.
func (b *Bank) TransferIn(_ context.Context, asset, from string, amount types.Amount) error {
	return b.move("transfer_in", asset, from, b.custody, from, amount)
}

// TransferOut implements transfer.Mover.
func (b *Bank) TransferOut(_ context.Context, asset, to string, amount types.Amount) error {
	return b.move("transfer_out", asset, b.custody, to, to, amount)
}

// BalanceOf implements transfer.Mover.
func (b *Bank) BalanceOf(_ context.Context, asset string) (types.Amount, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balance(asset, b.custody), nil
}

func (b *Bank) move(op, asset, from, to, counterparty string, amount types.Amount) error {
	if amount.IsZero() {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	have := b.balance(asset, from)
	remaining, err := have.Sub(amount)
	if err != nil {
		return &transfer.Error{
			Op:           op,
			Asset:        asset,
			Counterparty: counterparty,
			Amount:       amount,
			Err:          ErrInsufficientBalance,
		}
	}

	b.balances[asset][from] = remaining
	b.credit(asset, to, amount)
	return nil
}

func (b *Bank) balance(asset, holder string) types.Amount {
	if holders, ok := b.balances[asset]; ok {
		return holders[holder]
	}
	return types.ZeroAmount()
}

func (b *Bank) credit(asset, holder string, amount types.Amount) {
	holders, ok := b.balances[asset]
	if !ok {
		holders = make(map[string]types.Amount)
		b.balances[asset] = holders
	}
	// Bank balances cap at 2^256-1; overflow here means a test minted the
	// entire value space and deserves the panic.
	sum, err := holders[holder].Add(amount)
	if err != nil {
		panic(err)
	}
	holders[holder] = sum
}
