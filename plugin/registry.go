package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/xraph/vesting/types"
)

// Registry manages all registered plugins and provides efficient dispatch.
// It uses type-cached discovery for O(1) dispatch performance.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
	logger  *slog.Logger

	// Type-cached plugin lists for efficient dispatch
	onInit            []OnInit
	onShutdown        []OnShutdown
	onBenefitAdded    []OnBenefitAdded
	onBenefitReleased []OnBenefitReleased
	onBenefitRemoved  []OnBenefitRemoved
	onExcessSwept     []OnExcessSwept
	onTransferFailed  []OnTransferFailed
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for the registry.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// Register adds a plugin to the registry and caches its interfaces.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check for duplicate
	for _, existing := range r.plugins {
		if existing.Name() == p.Name() {
			return fmt.Errorf("plugin: duplicate registration: %s", p.Name())
		}
	}

	r.plugins = append(r.plugins, p)

	// Type-switch to cache interfaces
	if v, ok := p.(OnInit); ok {
		r.onInit = append(r.onInit, v)
	}
	if v, ok := p.(OnShutdown); ok {
		r.onShutdown = append(r.onShutdown, v)
	}
	if v, ok := p.(OnBenefitAdded); ok {
		r.onBenefitAdded = append(r.onBenefitAdded, v)
	}
	if v, ok := p.(OnBenefitReleased); ok {
		r.onBenefitReleased = append(r.onBenefitReleased, v)
	}
	if v, ok := p.(OnBenefitRemoved); ok {
		r.onBenefitRemoved = append(r.onBenefitRemoved, v)
	}
	if v, ok := p.(OnExcessSwept); ok {
		r.onExcessSwept = append(r.onExcessSwept, v)
	}
	if v, ok := p.(OnTransferFailed); ok {
		r.onTransferFailed = append(r.onTransferFailed, v)
	}

	r.logger.Info("plugin registered",
		"name", p.Name(),
		"interfaces", r.getImplementedInterfaces(p),
	)

	return nil
}

// getImplementedInterfaces returns a list of interfaces implemented by the plugin.
func (r *Registry) getImplementedInterfaces(p Plugin) []string {
	var interfaces []string
	v := reflect.TypeOf(p)

	checkInterface := func(iface reflect.Type, name string) {
		if v.Implements(iface) {
			interfaces = append(interfaces, name)
		}
	}

	checkInterface(reflect.TypeOf((*OnInit)(nil)).Elem(), "OnInit")
	checkInterface(reflect.TypeOf((*OnShutdown)(nil)).Elem(), "OnShutdown")
	checkInterface(reflect.TypeOf((*OnBenefitAdded)(nil)).Elem(), "OnBenefitAdded")
	checkInterface(reflect.TypeOf((*OnBenefitReleased)(nil)).Elem(), "OnBenefitReleased")
	checkInterface(reflect.TypeOf((*OnBenefitRemoved)(nil)).Elem(), "OnBenefitRemoved")
	checkInterface(reflect.TypeOf((*OnExcessSwept)(nil)).Elem(), "OnExcessSwept")
	checkInterface(reflect.TypeOf((*OnTransferFailed)(nil)).Elem(), "OnTransferFailed")

	return interfaces
}

// Get returns a plugin by name.
func (r *Registry) Get(name string) Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plugins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// List returns all registered plugins.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Plugin, len(r.plugins))
	copy(result, r.plugins)
	return result
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// ──────────────────────────────────────────────────
// Event emission methods
// ──────────────────────────────────────────────────

// EmitInit calls OnInit for all plugins that implement it.
func (r *Registry) EmitInit(ctx context.Context, ledger interface{}) {
	r.mu.RLock()
	plugins := r.onInit
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnInit(ctx, ledger)
		}); err != nil {
			r.logger.Warn("plugin OnInit failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitShutdown calls OnShutdown for all plugins that implement it.
func (r *Registry) EmitShutdown(ctx context.Context) {
	r.mu.RLock()
	plugins := r.onShutdown
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnShutdown(ctx)
		}); err != nil {
			r.logger.Warn("plugin OnShutdown failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitBenefitAdded emits a benefit added event.
func (r *Registry) EmitBenefitAdded(ctx context.Context, asset, beneficiary string, total types.Amount, startDate, releaseDate uint64) {
	r.mu.RLock()
	plugins := r.onBenefitAdded
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnBenefitAdded(ctx, asset, beneficiary, total, startDate, releaseDate)
		}); err != nil {
			r.logger.Warn("plugin OnBenefitAdded failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitBenefitReleased emits a benefit released event.
func (r *Registry) EmitBenefitReleased(ctx context.Context, asset, beneficiary string, amount types.Amount) {
	r.mu.RLock()
	plugins := r.onBenefitReleased
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnBenefitReleased(ctx, asset, beneficiary, amount)
		}); err != nil {
			r.logger.Warn("plugin OnBenefitReleased failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitBenefitRemoved emits a benefit removed event.
func (r *Registry) EmitBenefitRemoved(ctx context.Context, asset, beneficiary string, forfeited types.Amount) {
	r.mu.RLock()
	plugins := r.onBenefitRemoved
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnBenefitRemoved(ctx, asset, beneficiary, forfeited)
		}); err != nil {
			r.logger.Warn("plugin OnBenefitRemoved failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitExcessSwept emits an excess swept event.
func (r *Registry) EmitExcessSwept(ctx context.Context, asset, to string, amount types.Amount) {
	r.mu.RLock()
	plugins := r.onExcessSwept
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnExcessSwept(ctx, asset, to, amount)
		}); err != nil {
			r.logger.Warn("plugin OnExcessSwept failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// EmitTransferFailed emits a transfer failed event.
func (r *Registry) EmitTransferFailed(ctx context.Context, op, asset, counterparty string, amount types.Amount, cause error) {
	r.mu.RLock()
	plugins := r.onTransferFailed
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := r.callWithTimeout(ctx, p.Name(), func() error {
			return p.OnTransferFailed(ctx, op, asset, counterparty, amount, cause)
		}); err != nil {
			r.logger.Warn("plugin OnTransferFailed failed",
				"plugin", p.Name(),
				"error", err,
			)
		}
	}
}

// callWithTimeout guards a plugin callback so a misbehaving plugin cannot
// wedge a ledger operation.
func (r *Registry) callWithTimeout(ctx context.Context, pluginName string, fn func() error) error {
	done := make(chan error, 1)

	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		return fmt.Errorf("plugin timeout: %s", pluginName)
	case <-ctx.Done():
		return ctx.Err()
	}
}
