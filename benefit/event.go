package benefit

import (
	"time"

	"github.com/xraph/vesting/id"
	"github.com/xraph/vesting/types"
)

// EventType identifies a ledger lifecycle event in the audit trail.
type EventType string

// Audit trail event types.
const (
	EventAdded    EventType = "benefit.added"
	EventReleased EventType = "benefit.released"
	EventRemoved  EventType = "benefit.removed"
	EventSwept    EventType = "excess.swept"
)

// Event is one entry in the append-only audit trail. Every committed ledger
// mutation produces exactly one Event per external observer notification.
type Event struct {
	ID          id.EventID   `json:"id"`
	Type        EventType    `json:"type"`
	Asset       string       `json:"asset"`
	Beneficiary string       `json:"beneficiary"`
	Amount      types.Amount `json:"amount"`

	// StartDate and ReleaseDate are set on EventAdded only.
	StartDate   uint64 `json:"start_date,omitempty"`
	ReleaseDate uint64 `json:"release_date,omitempty"`

	At time.Time `json:"at"`
}

// NewEvent creates an audit event stamped with a fresh ID and the current
// time.
func NewEvent(t EventType, asset, beneficiary string, amount types.Amount) *Event {
	return &Event{
		ID:          id.NewEventID(),
		Type:        t,
		Asset:       asset,
		Beneficiary: beneficiary,
		Amount:      amount,
		At:          time.Now().UTC(),
	}
}

// ListOpts filters benefit listings.
type ListOpts struct {
	Asset       string
	Beneficiary string
	Limit       int
	Offset      int
}

// EventQueryOpts filters audit trail queries.
type EventQueryOpts struct {
	Asset       string
	Beneficiary string
	Type        EventType
	Since       time.Time
	Limit       int
	Offset      int
}
