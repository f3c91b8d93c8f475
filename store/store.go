// Package store defines the persistence interface for Vesting.
//
// The ledger's in-memory state is authoritative; the store is its durable
// shadow. On startup the ledger reloads benefit records and re-derives all
// indices and per-asset totals from them, so the store never has to be
// trusted for derived state.
package store

import (
	"context"
	"time"

	"github.com/xraph/vesting/benefit"
)

// Store is the unified storage interface for benefit records and the
// append-only audit trail.
type Store interface {
	// Benefit methods
	SaveBenefit(ctx context.Context, b *benefit.Benefit) error
	GetBenefit(ctx context.Context, asset, beneficiary string) (*benefit.Benefit, error)
	DeleteBenefit(ctx context.Context, asset, beneficiary string) error
	ListBenefits(ctx context.Context, opts benefit.ListOpts) ([]*benefit.Benefit, error)

	// Audit trail methods
	AppendEvent(ctx context.Context, e *benefit.Event) error
	ListEvents(ctx context.Context, opts benefit.EventQueryOpts) ([]*benefit.Event, error)
	PurgeEvents(ctx context.Context, before time.Time) (int64, error)

	// Core methods
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
