package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xraph/vesting"
	"github.com/xraph/vesting/benefit"
	"github.com/xraph/vesting/types"
)

func TestBenefitCRUD(t *testing.T) {
	s := New()
	ctx := context.Background()

	b := benefit.New("token-a", "alice", "treasury", types.NewAmount(100), 1000, 1000)
	if err := s.SaveBenefit(ctx, b); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetBenefit(ctx, "token-a", "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Amount.String() != "100" || got.Funder != "treasury" {
		t.Errorf("unexpected record: %+v", got)
	}

	// The store holds a copy, not the caller's pointer.
	b.Released = types.NewAmount(99)
	got, err = s.GetBenefit(ctx, "token-a", "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Released.IsZero() {
		t.Error("store leaked the caller's pointer")
	}

	// Save is an upsert.
	if err := s.SaveBenefit(ctx, b); err != nil {
		t.Fatalf("resave: %v", err)
	}
	got, _ = s.GetBenefit(ctx, "token-a", "alice")
	if got.Released.String() != "99" {
		t.Errorf("released after upsert: got %s, want 99", got.Released.String())
	}

	if err := s.DeleteBenefit(ctx, "token-a", "alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetBenefit(ctx, "token-a", "alice"); !errors.Is(err, vesting.ErrBenefitNotFound) {
		t.Errorf("get after delete: got %v, want ErrBenefitNotFound", err)
	}

	// Deleting a missing record is not an error.
	if err := s.DeleteBenefit(ctx, "token-a", "alice"); err != nil {
		t.Errorf("double delete: %v", err)
	}
}

func TestListBenefits(t *testing.T) {
	s := New()
	ctx := context.Background()

	seed := []struct {
		asset, beneficiary string
	}{
		{"token-a", "alice"},
		{"token-a", "bob"},
		{"token-b", "alice"},
	}
	for _, sd := range seed {
		b := benefit.New(sd.asset, sd.beneficiary, "treasury", types.NewAmount(1), 0, 10)
		if err := s.SaveBenefit(ctx, b); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	tests := []struct {
		name string
		opts benefit.ListOpts
		want int
	}{
		{"All", benefit.ListOpts{}, 3},
		{"ByAsset", benefit.ListOpts{Asset: "token-a"}, 2},
		{"ByBeneficiary", benefit.ListOpts{Beneficiary: "alice"}, 2},
		{"ByBoth", benefit.ListOpts{Asset: "token-b", Beneficiary: "alice"}, 1},
		{"Limit", benefit.ListOpts{Limit: 2}, 2},
		{"Offset", benefit.ListOpts{Offset: 2}, 1},
		{"OffsetPastEnd", benefit.ListOpts{Offset: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListBenefits(ctx, tt.opts)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestEventTrail(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Unix(1000, 0).UTC()
	for i, typ := range []benefit.EventType{benefit.EventAdded, benefit.EventReleased, benefit.EventRemoved} {
		e := benefit.NewEvent(typ, "token-a", "alice", types.NewAmount(uint64(i+1)))
		e.At = base.Add(time.Duration(i) * time.Minute)
		if err := s.AppendEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := s.ListEvents(ctx, benefit.EventQueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d events, want 3", len(all))
	}

	byType, err := s.ListEvents(ctx, benefit.EventQueryOpts{Type: benefit.EventReleased})
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if len(byType) != 1 || byType[0].Amount.String() != "2" {
		t.Errorf("by type: got %+v", byType)
	}

	since, err := s.ListEvents(ctx, benefit.EventQueryOpts{Since: base.Add(time.Minute)})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(since) != 2 {
		t.Errorf("since: got %d events, want 2", len(since))
	}

	purged, err := s.PurgeEvents(ctx, base.Add(time.Minute))
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if purged != 1 {
		t.Errorf("purged: got %d, want 1", purged)
	}
	if s.EventCount() != 2 {
		t.Errorf("remaining: got %d, want 2", s.EventCount())
	}
}

func TestClosedStore(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if err := s.Ping(ctx); !errors.Is(err, vesting.ErrStoreClosed) {
		t.Errorf("ping: got %v, want ErrStoreClosed", err)
	}
	b := benefit.New("token-a", "alice", "treasury", types.NewAmount(1), 0, 10)
	if err := s.SaveBenefit(ctx, b); !errors.Is(err, vesting.ErrStoreClosed) {
		t.Errorf("save: got %v, want ErrStoreClosed", err)
	}
}
