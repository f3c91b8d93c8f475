package extension

import (
	vesting "github.com/xraph/vesting"
	"github.com/xraph/vesting/authz"
	"github.com/xraph/vesting/clock"
	"github.com/xraph/vesting/plugin"
	"github.com/xraph/vesting/store"
	"github.com/xraph/vesting/transfer"
)

// Option configures the Vesting Forge extension.
type Option func(*Extension)

// WithStore sets the store for the vesting engine.
func WithStore(s store.Store) Option {
	return func(e *Extension) {
		e.store = s
	}
}

// WithMover sets the transfer capability for the vesting engine.
func WithMover(m transfer.Mover) Option {
	return func(e *Extension) {
		e.mover = m
	}
}

// WithLedgerOption passes a vesting.Option through to the underlying engine.
func WithLedgerOption(opt vesting.Option) Option {
	return func(e *Extension) {
		e.ledgerOpts = append(e.ledgerOpts, opt)
	}
}

// WithPlugin registers a vesting plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(e *Extension) {
		e.ledgerOpts = append(e.ledgerOpts, vesting.WithPlugin(p))
	}
}

// WithAuthorizer sets the authorization capability. Overrides the
// authorized_callers config list.
func WithAuthorizer(a authz.Authorizer) Option {
	return func(e *Extension) {
		e.ledgerOpts = append(e.ledgerOpts, vesting.WithAuthorizer(a))
	}
}

// WithClock sets the time source for schedule math.
func WithClock(c clock.Clock) Option {
	return func(e *Extension) {
		e.ledgerOpts = append(e.ledgerOpts, vesting.WithClock(c))
	}
}

// WithConfig sets the Forge extension configuration.
func WithConfig(cfg Config) Option {
	return func(e *Extension) { e.config = cfg }
}

// WithDisableMigrate prevents auto-migration on start.
func WithDisableMigrate() Option {
	return func(e *Extension) { e.config.DisableMigrate = true }
}

// WithCustodyAccount sets the custody account used by the in-memory
// fallback bank.
func WithCustodyAccount(account string) Option {
	return func(e *Extension) { e.config.CustodyAccount = account }
}

// WithAuthorizedCallers restricts mutating operations to the listed callers.
func WithAuthorizedCallers(callers ...string) Option {
	return func(e *Extension) { e.config.AuthorizedCallers = callers }
}

// WithRequireConfig requires config to be present in YAML files.
// If true and no config is found, Register returns an error.
func WithRequireConfig(require bool) Option {
	return func(e *Extension) { e.config.RequireConfig = require }
}
