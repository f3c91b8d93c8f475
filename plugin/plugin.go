// Package plugin provides an extensible plugin system for Vesting.
// Plugins can hook into ledger lifecycle events to extend functionality.
package plugin

import (
	"context"

	"github.com/xraph/vesting/types"
)

// Plugin is the base interface that all plugins must implement.
type Plugin interface {
	Name() string
}

// ──────────────────────────────────────────────────
// Lifecycle hooks
// ──────────────────────────────────────────────────

// OnInit is called when the plugin is initialized.
type OnInit interface {
	Plugin
	OnInit(ctx context.Context, l interface{}) error
}

// OnShutdown is called when the plugin is shutting down.
type OnShutdown interface {
	Plugin
	OnShutdown(ctx context.Context) error
}

// ──────────────────────────────────────────────────
// Benefit lifecycle hooks
// ──────────────────────────────────────────────────

// OnBenefitAdded is called after a benefit is created or topped up.
// Total is the new committed amount (fresh inflow plus folded remainder).
type OnBenefitAdded interface {
	Plugin
	OnBenefitAdded(ctx context.Context, asset, beneficiary string, total types.Amount, startDate, releaseDate uint64) error
}

// OnBenefitReleased is called after unlocked units are paid out to a
// beneficiary, including the internal drain performed by a top-up.
type OnBenefitReleased interface {
	Plugin
	OnBenefitReleased(ctx context.Context, asset, beneficiary string, amount types.Amount) error
}

// OnBenefitRemoved is called after a benefit is removed; forfeited is the
// locked remainder returned to the funder.
type OnBenefitRemoved interface {
	Plugin
	OnBenefitRemoved(ctx context.Context, asset, beneficiary string, forfeited types.Amount) error
}

// ──────────────────────────────────────────────────
// Custody hooks
// ──────────────────────────────────────────────────

// OnExcessSwept is called after untracked custody balance is recovered.
type OnExcessSwept interface {
	Plugin
	OnExcessSwept(ctx context.Context, asset, to string, amount types.Amount) error
}

// OnTransferFailed is called when an external asset movement fails and the
// enclosing operation is aborted.
type OnTransferFailed interface {
	Plugin
	OnTransferFailed(ctx context.Context, op, asset, counterparty string, amount types.Amount, cause error) error
}
