// Package memory provides an in-memory store implementation, suitable for
// tests and single-process deployments that accept losing durability.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xraph/vesting"
	"github.com/xraph/vesting/benefit"
	"github.com/xraph/vesting/store"
)

// compile-time interface check
var _ store.Store = (*Store)(nil)

type Store struct {
	mu sync.RWMutex

	// Benefit storage, keyed "asset\x00beneficiary"
	benefits map[string]*benefit.Benefit

	// Append-only audit trail
	events []*benefit.Event

	closed bool
}

func New() *Store {
	return &Store{
		benefits: make(map[string]*benefit.Benefit),
		events:   make([]*benefit.Event, 0),
	}
}

func key(asset, beneficiary string) string {
	return asset + "\x00" + beneficiary
}

// Benefit Store implementation

func (s *Store) SaveBenefit(_ context.Context, b *benefit.Benefit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return vesting.ErrStoreClosed
	}
	s.benefits[key(b.Asset, b.Beneficiary)] = b.Clone()
	return nil
}

func (s *Store) GetBenefit(_ context.Context, asset, beneficiary string) (*benefit.Benefit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, vesting.ErrStoreClosed
	}
	if b, ok := s.benefits[key(asset, beneficiary)]; ok {
		return b.Clone(), nil
	}
	return nil, vesting.ErrBenefitNotFound
}

func (s *Store) DeleteBenefit(_ context.Context, asset, beneficiary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return vesting.ErrStoreClosed
	}
	delete(s.benefits, key(asset, beneficiary))
	return nil
}

func (s *Store) ListBenefits(_ context.Context, opts benefit.ListOpts) ([]*benefit.Benefit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, vesting.ErrStoreClosed
	}

	result := make([]*benefit.Benefit, 0, len(s.benefits))
	for _, b := range s.benefits {
		if opts.Asset != "" && b.Asset != opts.Asset {
			continue
		}
		if opts.Beneficiary != "" && b.Beneficiary != opts.Beneficiary {
			continue
		}
		result = append(result, b.Clone())
	}

	// Deterministic order for pagination
	sort.Slice(result, func(i, j int) bool {
		if result[i].Asset != result[j].Asset {
			return result[i].Asset < result[j].Asset
		}
		return result[i].Beneficiary < result[j].Beneficiary
	})

	return paginate(result, opts.Offset, opts.Limit), nil
}

// Audit trail implementation

func (s *Store) AppendEvent(_ context.Context, e *benefit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return vesting.ErrStoreClosed
	}
	cp := *e
	s.events = append(s.events, &cp)
	return nil
}

func (s *Store) ListEvents(_ context.Context, opts benefit.EventQueryOpts) ([]*benefit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, vesting.ErrStoreClosed
	}

	result := make([]*benefit.Event, 0)
	for _, e := range s.events {
		if opts.Asset != "" && e.Asset != opts.Asset {
			continue
		}
		if opts.Beneficiary != "" && e.Beneficiary != opts.Beneficiary {
			continue
		}
		if opts.Type != "" && e.Type != opts.Type {
			continue
		}
		if !opts.Since.IsZero() && e.At.Before(opts.Since) {
			continue
		}
		cp := *e
		result = append(result, &cp)
	}

	return paginate(result, opts.Offset, opts.Limit), nil
}

func (s *Store) PurgeEvents(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, vesting.ErrStoreClosed
	}

	kept := s.events[:0]
	var purged int64
	for _, e := range s.events {
		if e.At.Before(before) {
			purged++
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept
	return purged, nil
}

// Core methods

func (s *Store) Migrate(_ context.Context) error { return nil }

func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return vesting.ErrStoreClosed
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// EventCount reports the audit trail length. Test helper.
func (s *Store) EventCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

func paginate[T any](in []T, offset, limit int) []T {
	start := offset
	if start > len(in) {
		start = len(in)
	}
	end := start + limit
	if limit == 0 || end > len(in) {
		end = len(in)
	}
	return in[start:end]
}
