// Package audithook bridges Vesting lifecycle events to an audit trail
// backend.
//
// It defines a local Recorder interface so the package does not import
// Chronicle directly. Callers inject a RecorderFunc adapter that bridges
// to Chronicle at wiring time.
package audithook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xraph/vesting/plugin"
	"github.com/xraph/vesting/types"
)

// Compile-time interface checks.
var (
	_ plugin.Plugin            = (*Extension)(nil)
	_ plugin.OnBenefitAdded    = (*Extension)(nil)
	_ plugin.OnBenefitReleased = (*Extension)(nil)
	_ plugin.OnBenefitRemoved  = (*Extension)(nil)
	_ plugin.OnExcessSwept     = (*Extension)(nil)
	_ plugin.OnTransferFailed  = (*Extension)(nil)
)

// Recorder is the interface that audit backends must implement.
// This matches chronicle.Emitter but is defined locally so that the
// audit_hook package does not import Chronicle directly — callers inject
// the concrete *chronicle.Chronicle at wiring time.
type Recorder interface {
	Record(ctx context.Context, event *AuditEvent) error
}

// AuditEvent is a local representation of an audit event.
// It mirrors chronicle/audit.Event but avoids a module dependency.
type AuditEvent struct {
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	Category   string         `json:"category"`
	ResourceID string         `json:"resource_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Outcome    string         `json:"outcome"`
	Severity   string         `json:"severity"`
	Reason     string         `json:"reason,omitempty"`
}

// RecorderFunc is an adapter to use a plain function as a Recorder.
type RecorderFunc func(ctx context.Context, event *AuditEvent) error

// Record implements Recorder.
func (f RecorderFunc) Record(ctx context.Context, event *AuditEvent) error {
	return f(ctx, event)
}

// Extension bridges Vesting lifecycle events to an audit trail backend.
type Extension struct {
	recorder Recorder
	enabled  map[string]bool // nil = all enabled
	logger   *slog.Logger
}

// New creates an Extension that emits audit events through the provided Recorder.
func New(r Recorder, opts ...Option) *Extension {
	e := &Extension{
		recorder: r,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements plugin.Plugin.
func (e *Extension) Name() string { return "audit-hook" }

// ──────────────────────────────────────────────────
// Benefit lifecycle hooks
// ──────────────────────────────────────────────────

// OnBenefitAdded implements plugin.OnBenefitAdded.
func (e *Extension) OnBenefitAdded(ctx context.Context, asset, beneficiary string, total types.Amount, startDate, releaseDate uint64) error {
	return e.record(ctx, ActionBenefitAdded, SeverityInfo, OutcomeSuccess,
		ResourceBenefit, asset+"/"+beneficiary, CategoryVesting, nil,
		"asset", asset,
		"beneficiary", beneficiary,
		"total", total.String(),
		"start_date", startDate,
		"release_date", releaseDate,
	)
}

// OnBenefitReleased implements plugin.OnBenefitReleased.
func (e *Extension) OnBenefitReleased(ctx context.Context, asset, beneficiary string, amount types.Amount) error {
	return e.record(ctx, ActionBenefitReleased, SeverityInfo, OutcomeSuccess,
		ResourceBenefit, asset+"/"+beneficiary, CategoryVesting, nil,
		"asset", asset,
		"beneficiary", beneficiary,
		"amount", amount.String(),
	)
}

// OnBenefitRemoved implements plugin.OnBenefitRemoved.
func (e *Extension) OnBenefitRemoved(ctx context.Context, asset, beneficiary string, forfeited types.Amount) error {
	return e.record(ctx, ActionBenefitRemoved, SeverityWarning, OutcomeSuccess,
		ResourceBenefit, asset+"/"+beneficiary, CategoryVesting, nil,
		"asset", asset,
		"beneficiary", beneficiary,
		"forfeited", forfeited.String(),
	)
}

// ──────────────────────────────────────────────────
// Custody hooks
// ──────────────────────────────────────────────────

// OnExcessSwept implements plugin.OnExcessSwept.
func (e *Extension) OnExcessSwept(ctx context.Context, asset, to string, amount types.Amount) error {
	return e.record(ctx, ActionExcessSwept, SeverityWarning, OutcomeSuccess,
		ResourceCustody, asset, CategoryCustody, nil,
		"asset", asset,
		"to", to,
		"amount", amount.String(),
	)
}

// OnTransferFailed implements plugin.OnTransferFailed.
func (e *Extension) OnTransferFailed(ctx context.Context, op, asset, counterparty string, amount types.Amount, cause error) error {
	return e.record(ctx, ActionTransferFailed, SeverityError, OutcomeFailure,
		ResourceCustody, asset, CategoryCustody, cause,
		"op", op,
		"asset", asset,
		"counterparty", counterparty,
		"amount", amount.String(),
	)
}

// ──────────────────────────────────────────────────
// Internals
// ──────────────────────────────────────────────────

func (e *Extension) record(
	ctx context.Context,
	action, severity, outcome string,
	resource, resourceID, category string,
	err error,
	kvPairs ...any,
) error {
	if e.enabled != nil && !e.enabled[action] {
		return nil
	}

	meta := make(map[string]any, len(kvPairs)/2+1)
	for i := 0; i+1 < len(kvPairs); i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kvPairs[i])
		}
		meta[key] = kvPairs[i+1]
	}

	var reason string
	if err != nil {
		reason = err.Error()
		meta["error"] = err.Error()
	}

	evt := &AuditEvent{
		Action:     action,
		Resource:   resource,
		Category:   category,
		ResourceID: resourceID,
		Metadata:   meta,
		Outcome:    outcome,
		Severity:   severity,
		Reason:     reason,
	}

	if recErr := e.recorder.Record(ctx, evt); recErr != nil {
		e.logger.Warn("audit_hook: failed to record audit event",
			"action", action,
			"resource_id", resourceID,
			"error", recErr,
		)
	}
	return nil
}
