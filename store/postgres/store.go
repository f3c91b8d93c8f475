// Package postgres provides a PostgreSQL store implementation backed by
// Grove ORM.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xraph/grove"
	"github.com/xraph/grove/drivers/pgdriver"
	"github.com/xraph/grove/migrate"

	vesting "github.com/xraph/vesting"
	"github.com/xraph/vesting/benefit"
	vestingstore "github.com/xraph/vesting/store"
)

// compile-time interface check
var _ vestingstore.Store = (*Store)(nil)

// Store implements store.Store using PostgreSQL via Grove ORM.
type Store struct {
	db *grove.DB
	pg *pgdriver.PgDB
}

// New creates a new PostgreSQL store backed by Grove ORM.
func New(db *grove.DB) *Store {
	return &Store{
		db: db,
		pg: pgdriver.Unwrap(db),
	}
}

// DB returns the underlying grove database for direct access.
func (s *Store) DB() *grove.DB { return s.db }

// Migrate creates the required tables and indexes using the grove orchestrator.
func (s *Store) Migrate(ctx context.Context) error {
	executor, err := migrate.NewExecutorFor(s.pg)
	if err != nil {
		return fmt.Errorf("vesting/postgres: create migration executor: %w", err)
	}
	orch := migrate.NewOrchestrator(executor, Migrations)
	if _, err := orch.Migrate(ctx); err != nil {
		return fmt.Errorf("vesting/postgres: migration failed: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ==================== Benefit Store ====================

func (s *Store) SaveBenefit(ctx context.Context, b *benefit.Benefit) error {
	m := toBenefitModel(b)
	m.UpdatedAt = time.Now().UTC()

	_, err := s.pg.NewInsert(m).
		OnConflict("(asset, beneficiary) DO UPDATE").
		Set("id = EXCLUDED.id").
		Set("funder = EXCLUDED.funder").
		Set("amount = EXCLUDED.amount").
		Set("released = EXCLUDED.released").
		Set("start_date = EXCLUDED.start_date").
		Set("duration = EXCLUDED.duration").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("vesting/postgres: save benefit: %w", err)
	}
	return nil
}

func (s *Store) GetBenefit(ctx context.Context, asset, beneficiary string) (*benefit.Benefit, error) {
	m := new(benefitModel)
	err := s.pg.NewSelect(m).
		Where("asset = $1", asset).
		Where("beneficiary = $2", beneficiary).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, vesting.ErrBenefitNotFound
		}
		return nil, fmt.Errorf("vesting/postgres: get benefit: %w", err)
	}
	return fromBenefitModel(m)
}

func (s *Store) DeleteBenefit(ctx context.Context, asset, beneficiary string) error {
	_, err := s.pg.NewDelete((*benefitModel)(nil)).
		Where("asset = $1", asset).
		Where("beneficiary = $2", beneficiary).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("vesting/postgres: delete benefit: %w", err)
	}
	return nil
}

func (s *Store) ListBenefits(ctx context.Context, opts benefit.ListOpts) ([]*benefit.Benefit, error) {
	var models []benefitModel
	q := s.pg.NewSelect(&models)

	argIdx := 0
	if opts.Asset != "" {
		argIdx++
		q = q.Where(fmt.Sprintf("asset = $%d", argIdx), opts.Asset)
	}
	if opts.Beneficiary != "" {
		argIdx++
		q = q.Where(fmt.Sprintf("beneficiary = $%d", argIdx), opts.Beneficiary)
	}
	q = q.OrderExpr("asset ASC, beneficiary ASC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("vesting/postgres: list benefits: %w", err)
	}

	result := make([]*benefit.Benefit, len(models))
	for i := range models {
		b, err := fromBenefitModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = b
	}
	return result, nil
}

// ==================== Audit trail ====================

func (s *Store) AppendEvent(ctx context.Context, e *benefit.Event) error {
	m := toEventModel(e)
	_, err := s.pg.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("vesting/postgres: append event: %w", err)
	}
	return nil
}

func (s *Store) ListEvents(ctx context.Context, opts benefit.EventQueryOpts) ([]*benefit.Event, error) {
	var models []eventModel
	q := s.pg.NewSelect(&models)

	argIdx := 0
	if opts.Asset != "" {
		argIdx++
		q = q.Where(fmt.Sprintf("asset = $%d", argIdx), opts.Asset)
	}
	if opts.Beneficiary != "" {
		argIdx++
		q = q.Where(fmt.Sprintf("beneficiary = $%d", argIdx), opts.Beneficiary)
	}
	if opts.Type != "" {
		argIdx++
		q = q.Where(fmt.Sprintf("type = $%d", argIdx), string(opts.Type))
	}
	if !opts.Since.IsZero() {
		argIdx++
		q = q.Where(fmt.Sprintf("at >= $%d", argIdx), opts.Since)
	}
	q = q.OrderExpr("at ASC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("vesting/postgres: list events: %w", err)
	}

	result := make([]*benefit.Event, len(models))
	for i := range models {
		e, err := fromEventModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = e
	}
	return result, nil
}

func (s *Store) PurgeEvents(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.pg.NewDelete((*eventModel)(nil)).
		Where("at < $1", before).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("vesting/postgres: purge events: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("vesting/postgres: purge events: %w", err)
	}
	return rows, nil
}

// ==================== Helpers ====================

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
