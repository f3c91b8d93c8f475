package benefit

import (
	"errors"
	"testing"

	"github.com/xraph/vesting/types"
)

func newBenefit(amount uint64, start, duration uint64) *Benefit {
	return New("token-a", "alice", "treasury", types.NewAmount(amount), start, duration)
}

func TestNew(t *testing.T) {
	b := newBenefit(1000, 100, 200)

	if b.ID.IsNil() {
		t.Error("expected a fresh ID")
	}
	if b.Asset != "token-a" || b.Beneficiary != "alice" || b.Funder != "treasury" {
		t.Errorf("unexpected identity fields: %+v", b)
	}
	if !b.Released.IsZero() {
		t.Errorf("Released: got %s, want 0", b.Released.String())
	}
	if b.ReleaseDate() != 300 {
		t.Errorf("ReleaseDate: got %d, want 300", b.ReleaseDate())
	}
	if b.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Benefit)
		wantErr bool
	}{
		{"Valid", func(_ *Benefit) {}, false},
		{"EmptyAsset", func(b *Benefit) { b.Asset = "" }, true},
		{"EmptyBeneficiary", func(b *Benefit) { b.Beneficiary = "" }, true},
		{"ZeroDuration", func(b *Benefit) { b.Duration = 0 }, true},
		{"ReleasedExceedsAmount", func(b *Benefit) { b.Released = types.NewAmount(2000) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBenefit(1000, 100, 200)
			tt.mutate(b)
			if err := b.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate: got %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnlocked(t *testing.T) {
	tests := []struct {
		name     string
		amount   uint64
		start    uint64
		duration uint64
		now      uint64
		want     string
	}{
		{"BeforeStart", 100, 1000, 1000, 999, "0"},
		{"AtStart", 100, 1000, 1000, 1000, "0"},
		{"OneTickAfterStart", 100, 1000, 1000, 1001, "0"}, // floor(100*1/1000)
		{"Midpoint", 100, 1000, 1000, 1500, "50"},
		{"FloorDivision", 100, 1000, 1000, 1333, "33"},
		{"OneTickBeforeMaturity", 100, 1000, 1000, 1999, "99"},
		{"AtMaturity", 100, 1000, 1000, 2000, "100"},
		{"PastMaturity", 100, 1000, 1000, 5000, "100"},
		{"ZeroAmount", 0, 1000, 1000, 1500, "0"},
		{"ZeroDurationAfterStart", 100, 1000, 0, 1001, "100"},
		{"ZeroDurationAtStart", 100, 1000, 0, 1000, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBenefit(tt.amount, tt.start, tt.duration)
			got, err := b.Unlocked(tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Unlocked(%d): got %s, want %s", tt.now, got.String(), tt.want)
			}
		})
	}
}

func TestUnlockedNoPrecisionLoss(t *testing.T) {
	// Amount * elapsed overflows 256 bits unless the intermediate product is
	// widened; the linear schedule must stay exact all the way up.
	b := New("token-a", "alice", "treasury",
		types.MustAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935"),
		0, 1<<62)

	got, err := b.Unlocked(1 << 61)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "57896044618658097711785492504343953926634992332820282019728792003956564819967"
	if got.String() != want {
		t.Errorf("got %s, want %s", got.String(), want)
	}
}

func TestReleasable(t *testing.T) {
	b := newBenefit(100, 1000, 1000)

	got, err := b.Releasable(1500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "50" {
		t.Errorf("got %s, want 50", got.String())
	}

	// After paying out the unlocked half, nothing further is releasable at
	// the same instant.
	b.Released = types.NewAmount(50)
	got, err = b.Releasable(1500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("got %s, want 0", got.String())
	}

	// Time moves on, more unlocks.
	got, err = b.Releasable(1750)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "25" {
		t.Errorf("got %s, want 25", got.String())
	}
}

func TestReleasableCorrupted(t *testing.T) {
	b := newBenefit(100, 1000, 1000)
	b.Released = types.NewAmount(80) // more than the 50 unlocked at t=1500

	if _, err := b.Releasable(1500); !errors.Is(err, ErrCorrupted) {
		t.Errorf("got %v, want ErrCorrupted", err)
	}
}

func TestMatured(t *testing.T) {
	b := newBenefit(100, 1000, 1000)

	for _, tt := range []struct {
		now  uint64
		want bool
	}{
		{999, false},
		{1000, false},
		{1999, false},
		{2000, true},
		{3000, true},
	} {
		if got := b.Matured(tt.now); got != tt.want {
			t.Errorf("Matured(%d): got %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestOutstanding(t *testing.T) {
	b := newBenefit(100, 1000, 1000)
	b.Released = types.NewAmount(30)

	got, err := b.Outstanding()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "70" {
		t.Errorf("got %s, want 70", got.String())
	}
}

func TestClone(t *testing.T) {
	b := newBenefit(100, 1000, 1000)
	cp := b.Clone()

	cp.Released = types.NewAmount(99)
	if !b.Released.IsZero() {
		t.Error("mutating the clone changed the original")
	}
}
