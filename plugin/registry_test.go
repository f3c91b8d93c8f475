package plugin

import (
	"context"
	"errors"
	"testing"

	"github.com/xraph/vesting/types"
)

// recorder implements every hook and records what it saw.
type recorder struct {
	name     string
	inits    int
	released []string
	failErr  error
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) OnInit(_ context.Context, _ interface{}) error {
	r.inits++
	return nil
}

func (r *recorder) OnBenefitReleased(_ context.Context, asset, beneficiary string, amount types.Amount) error {
	r.released = append(r.released, asset+"/"+beneficiary+"/"+amount.String())
	return r.failErr
}

// named is a bare plugin with no hooks.
type named struct{ name string }

func (n named) Name() string { return n.name }

func TestRegister(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&recorder{name: "rec"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(named{name: "bare"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if r.Count() != 2 {
		t.Errorf("count: got %d, want 2", r.Count())
	}

	if err := r.Register(named{name: "rec"}); err == nil {
		t.Error("expected duplicate registration error")
	}

	if got := r.Get("rec"); got == nil {
		t.Error("Get(rec) = nil")
	}
	if got := r.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
	if got := len(r.List()); got != 2 {
		t.Errorf("list: got %d, want 2", got)
	}
}

func TestDispatch(t *testing.T) {
	r := NewRegistry()
	rec := &recorder{name: "rec"}
	if err := r.Register(rec); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(named{name: "bare"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	ctx := context.Background()
	r.EmitInit(ctx, nil)
	r.EmitBenefitReleased(ctx, "token-a", "alice", types.NewAmount(50))

	if rec.inits != 1 {
		t.Errorf("inits: got %d, want 1", rec.inits)
	}
	if len(rec.released) != 1 || rec.released[0] != "token-a/alice/50" {
		t.Errorf("released: got %v", rec.released)
	}
}

func TestDispatchSwallowsHookErrors(t *testing.T) {
	r := NewRegistry()
	rec := &recorder{name: "rec", failErr: errors.New("hook broke")}
	if err := r.Register(rec); err != nil {
		t.Fatalf("register: %v", err)
	}

	// A failing hook is logged, not propagated; later emits still run.
	r.EmitBenefitReleased(context.Background(), "token-a", "alice", types.NewAmount(1))
	r.EmitBenefitReleased(context.Background(), "token-a", "alice", types.NewAmount(2))

	if len(rec.released) != 2 {
		t.Errorf("released: got %d calls, want 2", len(rec.released))
	}
}
