// Package vesting provides a composable benefit-vesting ledger for Go applications.
//
// Vesting is designed as a library, not a service. Import it directly into
// your Go application and wire it to your own asset custody. It provides:
//
//   - Per (asset, beneficiary) benefit records with linear release schedules
//   - Drain-and-fold top-ups: re-vesting pays out what is unlocked and folds
//     the remainder into the new schedule
//   - Checked 256-bit amount arithmetic with no silent saturation
//   - Per-asset outstanding totals and excess sweeping
//   - Pluggable transfer, authorization, and clock capabilities
//   - An audit event trail persisted alongside the benefit records
//   - Lifecycle hooks for metrics and audit integrations
//
// # Quick Start
//
// Create a ledger instance with your preferred store and an asset mover:
//
//	import (
//	    "github.com/xraph/vesting"
//	    "github.com/xraph/vesting/store/postgres"
//	)
//
//	store, err := postgres.New(databaseURL)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	l := vesting.New(store, mover)
//
//	// Start the ledger (migrates and reloads persisted benefits)
//	if err := l.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Stop()
//
// # Core Concepts
//
// A benefit commits an amount of an asset to a beneficiary under a linear
// schedule. Nothing is unlocked at or before the start date; everything is
// unlocked once the schedule matures; in between, the unlocked portion grows
// linearly with elapsed time:
//
//	ctx = vesting.WithCaller(ctx, "treasury")
//	err := l.AddBenefit(ctx, "token-a", "alice", vesting.NewAmount(1000), start, 86400)
//
// Anyone may trigger a release; the payout always lands on the beneficiary:
//
//	paid, err := l.Release(ctx, "token-a", "alice")
//
// Removing a benefit flushes the unlocked portion to the beneficiary and
// forfeits the locked remainder back to the funder:
//
//	err := l.RemoveBenefit(ctx, "token-a", "alice")
//
// Per-asset totals and the enumeration indices are derived state, kept
// consistent with the benefit map under a single lock:
//
//	total := l.Outstanding("token-a")
//	holders := l.Beneficiaries()
//
// # Capabilities
//
// The ledger never assumes how assets move. It calls a transfer.Mover for
// deposits and payouts, an authz.Authorizer for mutating entry points, and a
// clock.Clock for schedule math. Each has an in-package default or in-memory
// implementation suitable for tests.
package vesting
