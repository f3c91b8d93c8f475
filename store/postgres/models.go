package postgres

import (
	"fmt"
	"time"

	"github.com/xraph/grove"

	"github.com/xraph/vesting/benefit"
	"github.com/xraph/vesting/id"
	"github.com/xraph/vesting/types"
)

// ==================== Benefit models ====================

// Amounts persist as base-10 strings so the full 256-bit range round-trips
// without driver-dependent numeric coercion.
type benefitModel struct {
	grove.BaseModel `grove:"table:vesting_benefits"`

	ID          string    `grove:"id,pk"`
	Asset       string    `grove:"asset"`
	Beneficiary string    `grove:"beneficiary"`
	Funder      string    `grove:"funder"`
	Amount      string    `grove:"amount"`
	Released    string    `grove:"released"`
	StartDate   int64     `grove:"start_date"`
	Duration    int64     `grove:"duration"`
	CreatedAt   time.Time `grove:"created_at"`
	UpdatedAt   time.Time `grove:"updated_at"`
}

func toBenefitModel(b *benefit.Benefit) *benefitModel {
	return &benefitModel{
		ID:          b.ID.String(),
		Asset:       b.Asset,
		Beneficiary: b.Beneficiary,
		Funder:      b.Funder,
		Amount:      b.Amount.String(),
		Released:    b.Released.String(),
		StartDate:   int64(b.StartDate),
		Duration:    int64(b.Duration),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func fromBenefitModel(m *benefitModel) (*benefit.Benefit, error) {
	benefitID, err := id.ParseBenefitID(m.ID)
	if err != nil {
		return nil, fmt.Errorf("vesting/postgres: parse benefit id %q: %w", m.ID, err)
	}
	amount, err := types.ParseAmount(m.Amount)
	if err != nil {
		return nil, fmt.Errorf("vesting/postgres: parse amount %q: %w", m.Amount, err)
	}
	released, err := types.ParseAmount(m.Released)
	if err != nil {
		return nil, fmt.Errorf("vesting/postgres: parse released %q: %w", m.Released, err)
	}

	return &benefit.Benefit{
		Entity: types.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ID:          benefitID,
		Asset:       m.Asset,
		Beneficiary: m.Beneficiary,
		Funder:      m.Funder,
		Amount:      amount,
		Released:    released,
		StartDate:   uint64(m.StartDate),
		Duration:    uint64(m.Duration),
	}, nil
}

// ==================== Audit event models ====================

type eventModel struct {
	grove.BaseModel `grove:"table:vesting_events"`

	ID          string    `grove:"id,pk"`
	Type        string    `grove:"type"`
	Asset       string    `grove:"asset"`
	Beneficiary string    `grove:"beneficiary"`
	Amount      string    `grove:"amount"`
	StartDate   int64     `grove:"start_date"`
	ReleaseDate int64     `grove:"release_date"`
	At          time.Time `grove:"at"`
}

func toEventModel(e *benefit.Event) *eventModel {
	return &eventModel{
		ID:          e.ID.String(),
		Type:        string(e.Type),
		Asset:       e.Asset,
		Beneficiary: e.Beneficiary,
		Amount:      e.Amount.String(),
		StartDate:   int64(e.StartDate),
		ReleaseDate: int64(e.ReleaseDate),
		At:          e.At,
	}
}

func fromEventModel(m *eventModel) (*benefit.Event, error) {
	eventID, err := id.ParseEventID(m.ID)
	if err != nil {
		return nil, fmt.Errorf("vesting/postgres: parse event id %q: %w", m.ID, err)
	}
	amount, err := types.ParseAmount(m.Amount)
	if err != nil {
		return nil, fmt.Errorf("vesting/postgres: parse event amount %q: %w", m.Amount, err)
	}

	return &benefit.Event{
		ID:          eventID,
		Type:        benefit.EventType(m.Type),
		Asset:       m.Asset,
		Beneficiary: m.Beneficiary,
		Amount:      amount,
		StartDate:   uint64(m.StartDate),
		ReleaseDate: uint64(m.ReleaseDate),
		At:          m.At,
	}, nil
}
