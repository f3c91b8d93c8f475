// Package authz defines the authorization capability consulted before every
// state-mutating ledger entry point except Release, which is intentionally
// open to any caller.
package authz

import (
	"context"
	"sync"
)

// Authorizer decides whether a caller may mutate vesting schedules.
type Authorizer interface {
	Authorized(ctx context.Context, caller string) bool
}

// AuthorizerFunc adapts a function to the Authorizer interface.
type AuthorizerFunc func(ctx context.Context, caller string) bool

// Authorized implements Authorizer.
func (f AuthorizerFunc) Authorized(ctx context.Context, caller string) bool {
	return f(ctx, caller)
}

// AllowAll authorizes every caller. Default for tests and single-operator
// deployments.
func AllowAll() Authorizer {
	return AuthorizerFunc(func(context.Context, string) bool { return true })
}

// Allowlist authorizes a fixed, mutable set of callers.
type Allowlist struct {
	mu      sync.RWMutex
	callers map[string]struct{}
}

var _ Authorizer = (*Allowlist)(nil)

// NewAllowlist creates an Allowlist seeded with the given callers.
func NewAllowlist(callers ...string) *Allowlist {
	l := &Allowlist{callers: make(map[string]struct{}, len(callers))}
	for _, c := range callers {
		l.callers[c] = struct{}{}
	}
	return l
}

// Authorized implements Authorizer.
func (l *Allowlist) Authorized(_ context.Context, caller string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.callers[caller]
	return ok
}

// Add grants a caller mutation access.
func (l *Allowlist) Add(caller string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.callers[caller] = struct{}{}
}

// Remove revokes a caller's mutation access.
func (l *Allowlist) Remove(caller string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.callers, caller)
}
