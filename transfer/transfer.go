// Package transfer defines the asset-movement capability consumed by the
// vesting ledger.
//
// The interface is defined locally so the ledger does not depend on any
// particular settlement backend; callers inject a concrete Mover (a chain
// client, a core-banking adapter, the in-memory Bank) at wiring time.
package transfer

import (
	"context"
	"fmt"

	"github.com/xraph/vesting/types"
)

// Mover moves asset quantities in and out of the ledger's custody account.
//
// Every call must either complete or fail without side effects. The ledger
// does not verify delivered-vs-requested quantities, so assets whose
// transfer implementation silently under-delivers (fee-on-transfer style)
// will drift from the tracked totals; that drift is recoverable only as
// negative dust and is a documented limitation, not a ledger bug.
type Mover interface {
	// TransferIn moves amount units of asset from the given account into
	// custody.
	TransferIn(ctx context.Context, asset, from string, amount types.Amount) error

	// TransferOut moves amount units of asset from custody to the given
	// account.
	TransferOut(ctx context.Context, asset, to string, amount types.Amount) error

	// BalanceOf returns the quantity of asset currently held in custody.
	BalanceOf(ctx context.Context, asset string) (types.Amount, error)
}

// Error describes a failed asset movement.
type Error struct {
	Op           string // "transfer_in", "transfer_out", "balance_of"
	Asset        string
	Counterparty string
	Amount       types.Amount
	Err          error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transfer: %s %s %s (%s): %v", e.Op, e.Amount, e.Asset, e.Counterparty, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
