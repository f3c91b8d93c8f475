package audithook

// Action constants for audit events.
const (
	// Benefit actions
	ActionBenefitAdded    = "benefit.added"
	ActionBenefitReleased = "benefit.released"
	ActionBenefitRemoved  = "benefit.removed"

	// Custody actions
	ActionExcessSwept    = "excess.swept"
	ActionTransferFailed = "transfer.failed"
)

// Resource constants for audit events.
const (
	ResourceBenefit = "benefit"
	ResourceCustody = "custody"
)

// Category constants for audit events.
const (
	CategoryVesting = "vesting"
	CategoryCustody = "custody"
)

// Severity levels for audit events.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// Outcome values for audit events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePartial = "partial"
)
