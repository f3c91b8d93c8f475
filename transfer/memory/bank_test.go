package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/xraph/vesting/transfer"
	"github.com/xraph/vesting/types"
)

func TestBankTransfers(t *testing.T) {
	b := New("vault")
	ctx := context.Background()

	b.Mint("token-a", "alice", types.NewAmount(100))

	if err := b.TransferIn(ctx, "token-a", "alice", types.NewAmount(60)); err != nil {
		t.Fatalf("transfer in: %v", err)
	}
	if got := b.Balance("token-a", "alice").String(); got != "40" {
		t.Errorf("alice: got %s, want 40", got)
	}
	if got := b.Balance("token-a", "vault").String(); got != "60" {
		t.Errorf("vault: got %s, want 60", got)
	}

	if err := b.TransferOut(ctx, "token-a", "bob", types.NewAmount(25)); err != nil {
		t.Fatalf("transfer out: %v", err)
	}
	if got := b.Balance("token-a", "bob").String(); got != "25" {
		t.Errorf("bob: got %s, want 25", got)
	}

	custody, err := b.BalanceOf(ctx, "token-a")
	if err != nil {
		t.Fatalf("balance of: %v", err)
	}
	if custody.String() != "35" {
		t.Errorf("custody: got %s, want 35", custody.String())
	}
}

func TestBankInsufficientBalance(t *testing.T) {
	b := New("vault")
	ctx := context.Background()

	err := b.TransferIn(ctx, "token-a", "alice", types.NewAmount(1))
	if err == nil {
		t.Fatal("expected error")
	}

	var terr *transfer.Error
	if !errors.As(err, &terr) {
		t.Fatalf("expected *transfer.Error, got %T", err)
	}
	if terr.Op != "transfer_in" || terr.Counterparty != "alice" {
		t.Errorf("error fields: %+v", terr)
	}
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestBankZeroAmountNoOp(t *testing.T) {
	b := New("vault")
	ctx := context.Background()

	// Zero moves succeed even against empty accounts.
	if err := b.TransferIn(ctx, "token-a", "alice", types.ZeroAmount()); err != nil {
		t.Errorf("zero in: %v", err)
	}
	if err := b.TransferOut(ctx, "token-a", "bob", types.ZeroAmount()); err != nil {
		t.Errorf("zero out: %v", err)
	}
}

func TestBankAssetsAreIsolated(t *testing.T) {
	b := New("vault")

	b.Mint("token-a", "alice", types.NewAmount(100))

	if got := b.Balance("token-b", "alice"); !got.IsZero() {
		t.Errorf("token-b balance: got %s, want 0", got.String())
	}
}
