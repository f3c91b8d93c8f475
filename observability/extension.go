// Package observability provides a metrics extension for Vesting that
// records lifecycle event counts via a pluggable MetricFactory.
package observability

import (
	"context"

	"github.com/xraph/vesting/plugin"
	"github.com/xraph/vesting/types"
)

// Ensure MetricsExtension implements required interfaces.
var (
	_ plugin.Plugin            = (*MetricsExtension)(nil)
	_ plugin.OnInit            = (*MetricsExtension)(nil)
	_ plugin.OnBenefitAdded    = (*MetricsExtension)(nil)
	_ plugin.OnBenefitReleased = (*MetricsExtension)(nil)
	_ plugin.OnBenefitRemoved  = (*MetricsExtension)(nil)
	_ plugin.OnExcessSwept     = (*MetricsExtension)(nil)
	_ plugin.OnTransferFailed  = (*MetricsExtension)(nil)
)

// Counter interface for metric counters.
type Counter interface {
	Inc()
	Add(float64)
}

// Histogram interface for metric histograms.
type Histogram interface {
	Observe(float64)
}

// MetricFactory creates metrics.
type MetricFactory interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// MetricsExtension records system-wide lifecycle metrics.
// Register it as a Ledger plugin to automatically track vesting metrics.
type MetricsExtension struct {
	factory MetricFactory

	// Benefit metrics
	BenefitAdded    Counter
	BenefitReleased Counter
	BenefitRemoved  Counter

	// Schedule metrics
	ScheduleDuration Histogram

	// Custody metrics
	ExcessSwept    Counter
	TransferFailed Counter
	DepositFailed  Counter
	PayoutFailed   Counter
}

// NewMetricsExtension creates a MetricsExtension with the provided MetricFactory.
// Use app.Metrics() in forge extensions.
func NewMetricsExtension(factory MetricFactory) *MetricsExtension {
	return &MetricsExtension{
		factory: factory,

		// Benefit metrics
		BenefitAdded:    factory.Counter("vesting.benefit.added"),
		BenefitReleased: factory.Counter("vesting.benefit.released"),
		BenefitRemoved:  factory.Counter("vesting.benefit.removed"),

		// Schedule metrics
		ScheduleDuration: factory.Histogram("vesting.schedule.duration_seconds"),

		// Custody metrics
		ExcessSwept:    factory.Counter("vesting.excess.swept"),
		TransferFailed: factory.Counter("vesting.transfer.failed"),
		DepositFailed:  factory.Counter("vesting.transfer.deposit.failed"),
		PayoutFailed:   factory.Counter("vesting.transfer.payout.failed"),
	}
}

// Name implements plugin.Plugin.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnInit implements plugin.OnInit.
func (m *MetricsExtension) OnInit(_ context.Context, _ interface{}) error {
	// No initialization needed
	return nil
}

// ──────────────────────────────────────────────────
// Benefit lifecycle hooks
// ──────────────────────────────────────────────────

// OnBenefitAdded implements plugin.OnBenefitAdded.
func (m *MetricsExtension) OnBenefitAdded(_ context.Context, _, _ string, _ types.Amount, startDate, releaseDate uint64) error {
	m.BenefitAdded.Inc()
	m.ScheduleDuration.Observe(float64(releaseDate - startDate))
	return nil
}

// OnBenefitReleased implements plugin.OnBenefitReleased.
func (m *MetricsExtension) OnBenefitReleased(_ context.Context, _, _ string, _ types.Amount) error {
	m.BenefitReleased.Inc()
	return nil
}

// OnBenefitRemoved implements plugin.OnBenefitRemoved.
func (m *MetricsExtension) OnBenefitRemoved(_ context.Context, _, _ string, _ types.Amount) error {
	m.BenefitRemoved.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Custody hooks
// ──────────────────────────────────────────────────

// OnExcessSwept implements plugin.OnExcessSwept.
func (m *MetricsExtension) OnExcessSwept(_ context.Context, _, _ string, _ types.Amount) error {
	m.ExcessSwept.Inc()
	return nil
}

// OnTransferFailed implements plugin.OnTransferFailed.
func (m *MetricsExtension) OnTransferFailed(_ context.Context, op, _, _ string, _ types.Amount, _ error) error {
	m.TransferFailed.Inc()
	switch op {
	case "transfer_in":
		m.DepositFailed.Inc()
	case "transfer_out":
		m.PayoutFailed.Inc()
	}
	return nil
}
