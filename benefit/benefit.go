// Package benefit defines the vesting benefit record and its linear
// release schedule.
//
// A Benefit tracks one (asset, beneficiary) pair: the total quantity ever
// committed to it, the schedule over which that quantity unlocks, and the
// cumulative quantity already paid out. The schedule computation is kept in
// this package, isolated from the ledger bookkeeping, so that an alternate
// release curve could be substituted without touching the accounting.
package benefit

import (
	"errors"
	"fmt"

	"github.com/xraph/vesting/id"
	"github.com/xraph/vesting/types"
)

// ErrCorrupted is returned when a benefit's released quantity exceeds its
// unlocked quantity. This never happens through the ledger's own mutations;
// seeing it means the record was tampered with or loaded from bad storage.
var ErrCorrupted = errors.New("benefit: released exceeds unlocked amount")

// Benefit is the vesting record for one (asset, beneficiary) pair.
//
// Amount is the total quantity ever committed net of all top-ups. It is not
// reduced as units unlock; it is only reduced when units are actually paid
// out, and then only through deletion of the whole record. Released grows
// monotonically except across a top-up, which first drains the unlocked
// balance under the old schedule and then resets Released to zero.
type Benefit struct {
	types.Entity

	ID          id.BenefitID `json:"id"`
	Asset       string       `json:"asset"`
	Beneficiary string       `json:"beneficiary"`

	// Funder is the account that deposited the committed quantity. The
	// locked remainder is forfeited back to it when the benefit is removed.
	// A top-up overwrites the funder along with the schedule.
	Funder string `json:"funder"`

	Amount    types.Amount `json:"amount"`
	StartDate uint64       `json:"start_date"` // Unix seconds
	Duration  uint64       `json:"duration"`   // Seconds
	Released  types.Amount `json:"released"`
}

// New creates a benefit record with a fresh ID and current timestamps.
func New(asset, beneficiary, funder string, amount types.Amount, startDate, duration uint64) *Benefit {
	return &Benefit{
		Entity:      types.NewEntity(),
		ID:          id.NewBenefitID(),
		Asset:       asset,
		Beneficiary: beneficiary,
		Funder:      funder,
		Amount:      amount,
		StartDate:   startDate,
		Duration:    duration,
		Released:    types.ZeroAmount(),
	}
}

// Validate checks structural consistency of the record.
func (b *Benefit) Validate() error {
	if b.Asset == "" {
		return errors.New("benefit: empty asset")
	}
	if b.Beneficiary == "" {
		return errors.New("benefit: empty beneficiary")
	}
	if !b.Amount.IsZero() && b.Duration == 0 {
		return errors.New("benefit: zero duration with non-zero amount")
	}
	if b.Released.Cmp(b.Amount) > 0 {
		return fmt.Errorf("benefit: released %s exceeds amount %s", b.Released, b.Amount)
	}
	return nil
}

// ReleaseDate returns the timestamp at which the schedule fully matures.
func (b *Benefit) ReleaseDate() uint64 {
	return b.StartDate + b.Duration
}

// Matured reports whether the whole committed amount has unlocked.
func (b *Benefit) Matured(now uint64) bool {
	if now <= b.StartDate {
		return false
	}
	return b.Duration == 0 || now-b.StartDate >= b.Duration
}

// Unlocked computes the portion of Amount unlocked as of now under the
// linear schedule, using floor division:
//
//	now <= start:             0
//	start < now, duration 0:  Amount (a deleted or legacy record unlocks at once)
//	otherwise:                min(Amount, Amount * (now-start) / duration)
func (b *Benefit) Unlocked(now uint64) (types.Amount, error) {
	if now <= b.StartDate {
		return types.ZeroAmount(), nil
	}
	if b.Duration == 0 {
		return b.Amount, nil
	}
	elapsed := now - b.StartDate
	if elapsed >= b.Duration {
		return b.Amount, nil
	}
	return b.Amount.MulDiv(elapsed, b.Duration)
}

// Releasable computes unlocked-to-date minus already-paid-out.
func (b *Benefit) Releasable(now uint64) (types.Amount, error) {
	unlocked, err := b.Unlocked(now)
	if err != nil {
		return types.ZeroAmount(), err
	}
	releasable, err := unlocked.Sub(b.Released)
	if err != nil {
		return types.ZeroAmount(), fmt.Errorf("%w: %s of %s for %s", ErrCorrupted, b.Released, unlocked, b.Beneficiary)
	}
	return releasable, nil
}

// Outstanding returns Amount - Released, the quantity not yet paid out.
func (b *Benefit) Outstanding() (types.Amount, error) {
	out, err := b.Amount.Sub(b.Released)
	if err != nil {
		return types.ZeroAmount(), fmt.Errorf("%w: released %s of %s", ErrCorrupted, b.Released, b.Amount)
	}
	return out, nil
}

// Clone returns a deep copy of the record.
func (b *Benefit) Clone() *Benefit {
	cp := *b
	return &cp
}
