package vesting_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	vesting "github.com/xraph/vesting"
	"github.com/xraph/vesting/clock"
	"github.com/xraph/vesting/store/memory"
	bank "github.com/xraph/vesting/transfer/memory"
	"github.com/xraph/vesting/types"
)

// TestDocumentationExamples verifies that all examples in the documentation compile
func TestDocumentationExamples(t *testing.T) {
	// Test Quick Start example from the package docs
	t.Run("QuickStartExample", func(t *testing.T) {
		// Create store (memory for demo, use PostgreSQL in production)
		store := memory.New()

		// An asset mover: in production this is your chain client or
		// core-banking adapter.
		mover := bank.New("custody")
		mover.Mint("token-a", "treasury", types.NewAmount(1000))

		clk := clock.NewManual(time.Unix(0, 0))

		l := vesting.New(store, mover,
			vesting.WithLogger(slog.Default()),
			vesting.WithClock(clk),
		)

		// Start the engine
		ctx := context.Background()
		if err := l.Start(ctx); err != nil {
			t.Fatal(err)
		}
		defer l.Stop()

		// Commit a benefit: 1000 units of token-a vest linearly for alice
		// over a day.
		ctx = vesting.WithCaller(ctx, "treasury")
		if err := l.AddBenefit(ctx, "token-a", "alice", vesting.NewAmount(1000), 0, 86400); err != nil {
			t.Fatal(err)
		}

		// Half a day in, half has unlocked.
		clk.Set(time.Unix(43200, 0))
		paid, err := l.Release(ctx, "token-a", "alice")
		if err != nil {
			t.Fatal(err)
		}
		if paid.String() != "500" {
			t.Errorf("paid: got %s, want 500", paid.String())
		}

		// Derived state is available without a context.
		if got := l.Outstanding("token-a"); got.String() != "500" {
			t.Errorf("outstanding: got %s, want 500", got.String())
		}
		if got := l.Beneficiaries(); len(got) != 1 || got[0] != "alice" {
			t.Errorf("beneficiaries: got %v", got)
		}

		// Remove the benefit: the locked half forfeits back to the funder.
		if err := l.RemoveBenefit(ctx, "token-a", "alice"); err != nil {
			t.Fatal(err)
		}
		if got := mover.Balance("token-a", "treasury"); got.String() != "500" {
			t.Errorf("treasury: got %s, want 500", got.String())
		}
	})

	// Re-exported helpers keep simple callers to a single import.
	t.Run("ReExports", func(t *testing.T) {
		a := vesting.NewAmount(5)
		b := vesting.MustAmount("10")
		sum, err := vesting.SumAmounts([]vesting.Amount{a, b})
		if err != nil {
			t.Fatal(err)
		}
		if sum.String() != "15" {
			t.Errorf("sum: got %s, want 15", sum.String())
		}
		if !vesting.ZeroAmount().IsZero() {
			t.Error("ZeroAmount is not zero")
		}
	})
}
