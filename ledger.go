package vesting

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/xraph/vesting/authz"
	"github.com/xraph/vesting/benefit"
	"github.com/xraph/vesting/clock"
	"github.com/xraph/vesting/plugin"
	"github.com/xraph/vesting/store"
	"github.com/xraph/vesting/transfer"
	"github.com/xraph/vesting/types"
)

// benefitKey identifies the benefit record for one (asset, beneficiary) pair.
type benefitKey struct {
	asset       string
	beneficiary string
}

// Ledger is the vesting accounting engine.
//
// It custodies fungible-asset balances on behalf of beneficiaries and
// releases them according to per-benefit linear schedules. All mutable
// state (the benefit map, the three enumeration indices, and the per-asset
// outstanding totals) lives behind a single RWMutex, so every mutation is
// observed atomically and reads never see a partial state. The in-memory
// state is authoritative; the store is a durable shadow reloaded on Start.
type Ledger struct {
	mu            sync.RWMutex
	benefits      map[benefitKey]*benefit.Benefit
	outstanding   map[string]types.Amount // asset -> Σ (amount - released)
	beneficiaries stringSet               // accounts with at least one active benefit
	assetsInUse   stringSet               // assets with at least one active benefit
	assetsOf      map[string]stringSet    // beneficiary -> assets held

	store   store.Store
	mover   transfer.Mover
	auth    authz.Authorizer
	clk     clock.Clock
	plugins *plugin.Registry
	logger  *slog.Logger
}

// New creates a new Ledger over the given store and asset mover.
func New(s store.Store, m transfer.Mover, opts ...Option) *Ledger {
	l := &Ledger{
		benefits:      make(map[benefitKey]*benefit.Benefit),
		outstanding:   make(map[string]types.Amount),
		beneficiaries: newStringSet(),
		assetsInUse:   newStringSet(),
		assetsOf:      make(map[string]stringSet),
		store:         s,
		mover:         m,
		auth:          authz.AllowAll(),
		clk:           clock.System(),
		plugins:       plugin.NewRegistry(),
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Option configures a Ledger instance.
type Option func(*Ledger)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
		l.plugins.WithLogger(logger)
	}
}

// WithPlugin registers a plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(l *Ledger) {
		_ = l.plugins.Register(p) //nolint:errcheck // best-effort plugin registration during init
	}
}

// WithAuthorizer sets the authorization capability consulted by mutating
// entry points. Defaults to authz.AllowAll.
func WithAuthorizer(a authz.Authorizer) Option {
	return func(l *Ledger) {
		l.auth = a
	}
}

// WithClock sets the time source for all schedule math. Defaults to the
// system clock.
func WithClock(c clock.Clock) Option {
	return func(l *Ledger) {
		l.clk = c
	}
}

// Start migrates the store and reloads persisted benefit records,
// re-deriving the indices and per-asset outstanding totals from them.
func (l *Ledger) Start(ctx context.Context) error {
	if err := l.store.Migrate(ctx); err != nil {
		return err
	}

	records, err := l.store.ListBenefits(ctx, benefit.ListOpts{})
	if err != nil {
		return err
	}

	l.mu.Lock()
	for _, b := range records {
		if err := b.Validate(); err != nil {
			l.mu.Unlock()
			return fmt.Errorf("vesting: reload %s/%s: %w", b.Asset, b.Beneficiary, err)
		}
		out, err := b.Outstanding()
		if err != nil {
			l.mu.Unlock()
			return fmt.Errorf("vesting: reload %s/%s: %w", b.Asset, b.Beneficiary, err)
		}
		total, err := l.outstandingOf(b.Asset).Add(out)
		if err != nil {
			l.mu.Unlock()
			return fmt.Errorf("vesting: reload %s: %w", b.Asset, err)
		}

		l.benefits[benefitKey{b.Asset, b.Beneficiary}] = b
		l.index(b.Asset, b.Beneficiary)
		l.setOutstanding(b.Asset, total)
	}
	loaded := len(l.benefits)
	l.mu.Unlock()

	l.plugins.EmitInit(ctx, l)

	l.logger.Info("vesting ledger started",
		"benefits", loaded,
		"assets", len(l.AssetsInUse()),
		"beneficiaries", len(l.Beneficiaries()),
	)

	return nil
}

// Stop shuts down the Ledger.
func (l *Ledger) Stop() error {
	l.plugins.EmitShutdown(context.Background())
	return l.store.Close()
}

// ──────────────────────────────────────────────────
// Reads
// ──────────────────────────────────────────────────

// Releasable computes the portion of the benefit's committed amount
// unlocked as of now, minus what was already paid out. Returns zero for an
// unknown (asset, beneficiary) pair. Never calls the transfer capability.
func (l *Ledger) Releasable(asset, beneficiary string) (types.Amount, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.benefits[benefitKey{asset, beneficiary}]
	if !ok {
		return types.ZeroAmount(), nil
	}
	return b.Releasable(l.nowUnix())
}

// GetBenefit returns a copy of the benefit record for the pair.
func (l *Ledger) GetBenefit(asset, beneficiary string) (*benefit.Benefit, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.benefits[benefitKey{asset, beneficiary}]
	if !ok {
		return nil, ErrBenefitNotFound
	}
	return b.Clone(), nil
}

// Outstanding returns Σ (amount - released) across all benefits of asset.
func (l *Ledger) Outstanding(asset string) types.Amount {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.outstandingOf(asset)
}

// Beneficiaries returns all accounts holding at least one active benefit,
// sorted for deterministic enumeration.
func (l *Ledger) Beneficiaries() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return sortedValues(l.beneficiaries)
}

// AssetsInUse returns all assets with at least one active benefit, sorted.
func (l *Ledger) AssetsInUse() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return sortedValues(l.assetsInUse)
}

// AssetsOf returns the assets for which the beneficiary holds an active
// benefit, sorted.
func (l *Ledger) AssetsOf(beneficiary string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	set, ok := l.assetsOf[beneficiary]
	if !ok {
		return nil
	}
	return sortedValues(set)
}

// ──────────────────────────────────────────────────
// Mutations
// ──────────────────────────────────────────────────

// AddBenefit creates or tops up the benefit for (asset, beneficiary).
//
// A pre-existing benefit is first drained: everything unlocked under its old
// schedule is paid out to the beneficiary, and the undrained remainder is
// folded into the new schedule. The fresh inflow is pulled from the caller
// before any state is touched, so a deposit failure leaves the ledger
// unchanged. Calling with a zero amount is legal and re-stamps the schedule.
func (l *Ledger) AddBenefit(ctx context.Context, asset, beneficiary string, amount types.Amount, startDate, duration uint64) error {
	if asset == "" {
		return ErrEmptyAsset
	}
	if beneficiary == "" {
		return ErrEmptyAccount
	}

	caller, err := l.authorize(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.nowUnix()

	if err := l.checkDuration(asset, beneficiary, amount, duration, now); err != nil {
		return err
	}

	if !amount.IsZero() {
		if err := l.mover.TransferIn(ctx, asset, caller, amount); err != nil {
			l.plugins.EmitTransferFailed(ctx, "transfer_in", asset, caller, amount, err)
			return fmt.Errorf("%w: deposit from %s: %w", ErrTransferFailed, caller, err)
		}
	}

	if err := l.addOneLocked(ctx, caller, asset, beneficiary, amount, startDate, duration, now); err != nil {
		l.refund(ctx, asset, caller, amount)
		return err
	}
	return nil
}

// AddBenefitsBatch applies AddBenefit for each (beneficiary, amount) pair
// sharing one schedule, pulling the batch total from the caller in a single
// inbound transfer. If the aggregate deposit fails nothing is committed; if
// a later per-pair payout fails, the already-committed prefix stands (each
// pair is a complete AddBenefit) and the unapplied portion of the deposit is
// refunded to the caller.
func (l *Ledger) AddBenefitsBatch(ctx context.Context, asset string, beneficiaries []string, amounts []types.Amount, startDate, duration uint64) error {
	if asset == "" {
		return ErrEmptyAsset
	}
	if len(beneficiaries) != len(amounts) {
		return fmt.Errorf("%w: %d beneficiaries, %d amounts", ErrLengthMismatch, len(beneficiaries), len(amounts))
	}
	for _, ben := range beneficiaries {
		if ben == "" {
			return ErrEmptyAccount
		}
	}

	caller, err := l.authorize(ctx)
	if err != nil {
		return err
	}
	if len(beneficiaries) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.nowUnix()

	for i, ben := range beneficiaries {
		if err := l.checkDuration(asset, ben, amounts[i], duration, now); err != nil {
			return err
		}
	}

	batchTotal, err := types.Sum(amounts)
	if err != nil {
		return err
	}

	if !batchTotal.IsZero() {
		if err := l.mover.TransferIn(ctx, asset, caller, batchTotal); err != nil {
			l.plugins.EmitTransferFailed(ctx, "transfer_in", asset, caller, batchTotal, err)
			return fmt.Errorf("%w: batch deposit from %s: %w", ErrTransferFailed, caller, err)
		}
	}

	for i, ben := range beneficiaries {
		if err := l.addOneLocked(ctx, caller, asset, ben, amounts[i], startDate, duration, now); err != nil {
			unapplied, serr := types.Sum(amounts[i:])
			if serr != nil {
				unapplied = amounts[i]
			}
			l.refund(ctx, asset, caller, unapplied)
			return fmt.Errorf("vesting: batch aborted at %s: %w", ben, err)
		}
	}
	return nil
}

// Release pays out everything currently unlocked for (asset, beneficiary).
//
// It requires no authorization: anyone may trigger it, and the payout
// always lands on the beneficiary. A zero releasable amount is a no-op, not
// an error: no transfer, no event. Returns the quantity paid out.
func (l *Ledger) Release(ctx context.Context, asset, beneficiary string) (types.Amount, error) {
	if asset == "" {
		return types.ZeroAmount(), ErrEmptyAsset
	}
	if beneficiary == "" {
		return types.ZeroAmount(), ErrEmptyAccount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.benefits[benefitKey{asset, beneficiary}]
	if !ok {
		return types.ZeroAmount(), nil
	}
	paid, _, err := l.releaseLocked(ctx, b, l.nowUnix())
	return paid, err
}

// ReleaseAll releases every asset the beneficiary holds, aborting on the
// first failure. Returns the total quantity paid out across assets.
func (l *Ledger) ReleaseAll(ctx context.Context, beneficiary string) (types.Amount, error) {
	total := types.ZeroAmount()
	for _, asset := range l.AssetsOf(beneficiary) {
		paid, err := l.Release(ctx, asset, beneficiary)
		if err != nil {
			return total, err
		}
		var aerr error
		if total, aerr = total.Add(paid); aerr != nil {
			return total, aerr
		}
	}
	return total, nil
}

// RemoveBenefit removes the benefit for (asset, beneficiary): the unlocked
// portion is flushed to the beneficiary, the locked remainder is forfeited
// back to the recorded funder, and the record is deleted and de-indexed.
func (l *Ledger) RemoveBenefit(ctx context.Context, asset, beneficiary string) error {
	if asset == "" {
		return ErrEmptyAsset
	}
	if beneficiary == "" {
		return ErrEmptyAccount
	}

	if _, err := l.authorize(ctx); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.benefits[benefitKey{asset, beneficiary}]
	if !ok {
		return ErrBenefitNotFound
	}

	_, deleted, err := l.releaseLocked(ctx, b, l.nowUnix())
	if err != nil {
		return err
	}
	if deleted {
		// Fully matured: the release flushed everything, nothing to forfeit.
		l.appendEvent(ctx, benefit.NewEvent(benefit.EventRemoved, asset, beneficiary, types.ZeroAmount()))
		l.plugins.EmitBenefitRemoved(ctx, asset, beneficiary, types.ZeroAmount())
		return nil
	}

	remainder, err := b.Outstanding()
	if err != nil {
		return err
	}
	newOutstanding, err := l.outstandingOf(asset).Sub(remainder)
	if err != nil {
		return fmt.Errorf("vesting: outstanding underflow for %s: %w", asset, err)
	}

	// A forfeit failure leaves the benefit in its valid post-release state.
	if err := l.mover.TransferOut(ctx, asset, b.Funder, remainder); err != nil {
		l.plugins.EmitTransferFailed(ctx, "transfer_out", asset, b.Funder, remainder, err)
		return fmt.Errorf("%w: forfeit to %s: %w", ErrTransferFailed, b.Funder, err)
	}

	l.setOutstanding(asset, newOutstanding)
	l.dropBenefit(ctx, b)

	l.appendEvent(ctx, benefit.NewEvent(benefit.EventRemoved, asset, beneficiary, remainder))
	l.plugins.EmitBenefitRemoved(ctx, asset, beneficiary, remainder)
	l.logger.Info("benefit removed",
		"asset", asset,
		"beneficiary", beneficiary,
		"forfeited", remainder.String(),
		"funder", b.Funder,
	)
	return nil
}

// RemoveAllForBeneficiary removes every benefit the beneficiary holds,
// aborting on the first failure. It iterates a snapshot of the
// beneficiary's asset set since each removal mutates that very index.
func (l *Ledger) RemoveAllForBeneficiary(ctx context.Context, beneficiary string) error {
	for _, asset := range l.AssetsOf(beneficiary) {
		if err := l.RemoveBenefit(ctx, asset, beneficiary); err != nil {
			return err
		}
	}
	return nil
}

// SweepExcess transfers custody balance not attributable to any tracked
// benefit to the caller. This is dust recovery for assets sent to the
// custody account outside the benefit flow; it never touches benefit state.
func (l *Ledger) SweepExcess(ctx context.Context, asset string) (types.Amount, error) {
	if asset == "" {
		return types.ZeroAmount(), ErrEmptyAsset
	}

	caller, err := l.authorize(ctx)
	if err != nil {
		return types.ZeroAmount(), err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance, err := l.mover.BalanceOf(ctx, asset)
	if err != nil {
		return types.ZeroAmount(), fmt.Errorf("%w: balance of %s: %w", ErrTransferFailed, asset, err)
	}

	excess, err := balance.Sub(l.outstandingOf(asset))
	if err != nil {
		// Custody holds less than the tracked total: an under-delivering
		// asset has drifted. Nothing sweepable.
		l.logger.Warn("custody balance below tracked total",
			"asset", asset,
			"balance", balance.String(),
			"outstanding", l.outstandingOf(asset).String(),
		)
		return types.ZeroAmount(), nil
	}
	if excess.IsZero() {
		return types.ZeroAmount(), nil
	}

	if err := l.mover.TransferOut(ctx, asset, caller, excess); err != nil {
		l.plugins.EmitTransferFailed(ctx, "transfer_out", asset, caller, excess, err)
		return types.ZeroAmount(), fmt.Errorf("%w: sweep to %s: %w", ErrTransferFailed, caller, err)
	}

	l.appendEvent(ctx, benefit.NewEvent(benefit.EventSwept, asset, caller, excess))
	l.plugins.EmitExcessSwept(ctx, asset, caller, excess)
	l.logger.Info("excess swept", "asset", asset, "to", caller, "amount", excess.String())
	return excess, nil
}

// ──────────────────────────────────────────────────
// Internals
// ──────────────────────────────────────────────────

// releaseLocked pays out everything currently unlocked on b and commits the
// bookkeeping: Released grows, the asset's outstanding total shrinks, and a
// fully drained record is deleted and de-indexed. The write lock must be
// held. All arithmetic is staged before the external transfer, so a payout
// failure leaves the ledger untouched.
//
// This is the re-vesting fold's internal release: AddBenefit drains the old
// schedule through it before folding the remainder into the new one.
func (l *Ledger) releaseLocked(ctx context.Context, b *benefit.Benefit, now uint64) (types.Amount, bool, error) {
	releasable, err := b.Releasable(now)
	if err != nil {
		return types.ZeroAmount(), false, err
	}
	if releasable.IsZero() {
		return types.ZeroAmount(), false, nil
	}

	newReleased, err := b.Released.Add(releasable)
	if err != nil {
		return types.ZeroAmount(), false, err
	}
	newOutstanding, err := l.outstandingOf(b.Asset).Sub(releasable)
	if err != nil {
		return types.ZeroAmount(), false, fmt.Errorf("vesting: outstanding underflow for %s: %w", b.Asset, err)
	}

	if err := l.mover.TransferOut(ctx, b.Asset, b.Beneficiary, releasable); err != nil {
		l.plugins.EmitTransferFailed(ctx, "transfer_out", b.Asset, b.Beneficiary, releasable, err)
		return types.ZeroAmount(), false, fmt.Errorf("%w: payout to %s: %w", ErrTransferFailed, b.Beneficiary, err)
	}

	b.Released = newReleased
	b.Touch()
	l.setOutstanding(b.Asset, newOutstanding)

	deleted := b.Released.Equal(b.Amount)
	if deleted {
		l.dropBenefit(ctx, b)
	} else {
		l.persistBenefit(ctx, b)
	}

	l.appendEvent(ctx, benefit.NewEvent(benefit.EventReleased, b.Asset, b.Beneficiary, releasable))
	l.plugins.EmitBenefitReleased(ctx, b.Asset, b.Beneficiary, releasable)
	l.logger.Info("benefit released",
		"asset", b.Asset,
		"beneficiary", b.Beneficiary,
		"amount", releasable.String(),
		"drained", deleted,
	)
	return releasable, deleted, nil
}

// addOneLocked performs the drain-and-fold for one pair. The write lock
// must be held and the fresh inflow must already sit in custody; the caller
// refunds it if this returns an error.
func (l *Ledger) addOneLocked(ctx context.Context, caller, asset, beneficiary string, amount types.Amount, startDate, duration, now uint64) error {
	key := benefitKey{asset, beneficiary}

	old := l.benefits[key]
	if old != nil {
		if _, drained, err := l.releaseLocked(ctx, old, now); err != nil {
			return err
		} else if drained {
			old = nil
		}
	}

	pending := types.ZeroAmount()
	if old != nil {
		var err error
		if pending, err = old.Outstanding(); err != nil {
			return err
		}
	}

	total, err := amount.Add(pending)
	if err != nil {
		return err
	}
	if !total.IsZero() && duration == 0 {
		return fmt.Errorf("%w: %s for %s", ErrZeroDuration, asset, beneficiary)
	}

	releaseDate := startDate + duration

	if total.IsZero() {
		// Zero-amount re-stamp over a fully drained schedule leaves no
		// record behind, but the re-stamp is still observable.
		e := benefit.NewEvent(benefit.EventAdded, asset, beneficiary, total)
		e.StartDate = startDate
		e.ReleaseDate = releaseDate
		l.appendEvent(ctx, e)
		l.plugins.EmitBenefitAdded(ctx, asset, beneficiary, total, startDate, releaseDate)
		return nil
	}

	// Only the fresh inflow is added net: the folded remainder was already
	// counted before the drain reduced it out.
	newOutstanding, err := l.outstandingOf(asset).Add(amount)
	if err != nil {
		return err
	}

	b := old
	if b == nil {
		b = benefit.New(asset, beneficiary, caller, total, startDate, duration)
	} else {
		b.Amount = total
		b.StartDate = startDate
		b.Duration = duration
		b.Released = types.ZeroAmount()
		b.Funder = caller
		b.Touch()
	}

	l.benefits[key] = b
	l.index(asset, beneficiary)
	l.setOutstanding(asset, newOutstanding)
	l.persistBenefit(ctx, b)

	e := benefit.NewEvent(benefit.EventAdded, asset, beneficiary, total)
	e.StartDate = startDate
	e.ReleaseDate = releaseDate
	l.appendEvent(ctx, e)
	l.plugins.EmitBenefitAdded(ctx, asset, beneficiary, total, startDate, releaseDate)
	l.logger.Info("benefit added",
		"asset", asset,
		"beneficiary", beneficiary,
		"total", total.String(),
		"deposit", amount.String(),
		"folded", pending.String(),
		"release_date", releaseDate,
	)
	return nil
}

// checkDuration rejects a zero duration before any transfer when the
// resulting benefit would carry a non-zero amount.
func (l *Ledger) checkDuration(asset, beneficiary string, amount types.Amount, duration, now uint64) error {
	if duration != 0 {
		return nil
	}
	if !amount.IsZero() {
		return fmt.Errorf("%w: %s for %s", ErrZeroDuration, asset, beneficiary)
	}
	old, ok := l.benefits[benefitKey{asset, beneficiary}]
	if !ok {
		return nil
	}
	releasable, err := old.Releasable(now)
	if err != nil {
		return err
	}
	out, err := old.Outstanding()
	if err != nil {
		return err
	}
	pending, err := out.Sub(releasable)
	if err != nil {
		return err
	}
	if !pending.IsZero() {
		return fmt.Errorf("%w: %s for %s", ErrZeroDuration, asset, beneficiary)
	}
	return nil
}

func (l *Ledger) authorize(ctx context.Context) (string, error) {
	caller := CallerFromContext(ctx)
	if caller == "" {
		return "", ErrNoCaller
	}
	if !l.auth.Authorized(ctx, caller) {
		return "", fmt.Errorf("%w: %s", ErrUnauthorized, caller)
	}
	return caller, nil
}

// refund returns an aborted deposit to the caller. The failure of a refund
// is logged, not masked over the original error.
func (l *Ledger) refund(ctx context.Context, asset, to string, amount types.Amount) {
	if amount.IsZero() {
		return
	}
	if err := l.mover.TransferOut(ctx, asset, to, amount); err != nil {
		l.logger.Error("refund of aborted deposit failed",
			"asset", asset,
			"to", to,
			"amount", amount.String(),
			"error", err,
		)
	}
}

func (l *Ledger) nowUnix() uint64 {
	t := l.clk.Now().Unix()
	if t < 0 {
		return 0
	}
	return uint64(t)
}

func (l *Ledger) outstandingOf(asset string) types.Amount {
	return l.outstanding[asset]
}

func (l *Ledger) setOutstanding(asset string, amount types.Amount) {
	if amount.IsZero() {
		delete(l.outstanding, asset)
		return
	}
	l.outstanding[asset] = amount
}

func (l *Ledger) index(asset, beneficiary string) {
	l.beneficiaries.add(beneficiary)
	l.assetsInUse.add(asset)
	set, ok := l.assetsOf[beneficiary]
	if !ok {
		set = newStringSet()
		l.assetsOf[beneficiary] = set
	}
	set.add(asset)
}

func (l *Ledger) deindex(asset, beneficiary string) {
	if set, ok := l.assetsOf[beneficiary]; ok {
		set.remove(asset)
		if set.empty() {
			delete(l.assetsOf, beneficiary)
			l.beneficiaries.remove(beneficiary)
		}
	}
	for _, set := range l.assetsOf {
		if set.has(asset) {
			return
		}
	}
	l.assetsInUse.remove(asset)
}

// dropBenefit zeroes, de-indexes, and unpersists a fully drained or removed
// record.
func (l *Ledger) dropBenefit(ctx context.Context, b *benefit.Benefit) {
	delete(l.benefits, benefitKey{b.Asset, b.Beneficiary})
	l.deindex(b.Asset, b.Beneficiary)

	if err := l.store.DeleteBenefit(ctx, b.Asset, b.Beneficiary); err != nil {
		l.logger.Error("failed to delete benefit record",
			"asset", b.Asset,
			"beneficiary", b.Beneficiary,
			"error", err,
		)
	}

	b.Amount = types.ZeroAmount()
	b.Released = types.ZeroAmount()
	b.StartDate = 0
	b.Duration = 0
}

func (l *Ledger) persistBenefit(ctx context.Context, b *benefit.Benefit) {
	if err := l.store.SaveBenefit(ctx, b); err != nil {
		l.logger.Error("failed to persist benefit record",
			"asset", b.Asset,
			"beneficiary", b.Beneficiary,
			"error", err,
		)
	}
}

func (l *Ledger) appendEvent(ctx context.Context, e *benefit.Event) {
	if err := l.store.AppendEvent(ctx, e); err != nil {
		l.logger.Error("failed to append audit event",
			"type", string(e.Type),
			"asset", e.Asset,
			"error", err,
		)
	}
}

func sortedValues(s stringSet) []string {
	out := s.values()
	sort.Strings(out)
	return out
}
