// Package mongo provides a MongoDB store implementation backed by Grove ORM.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/xraph/grove"
	"github.com/xraph/grove/drivers/mongodriver"

	vesting "github.com/xraph/vesting"
	"github.com/xraph/vesting/benefit"
	vestingstore "github.com/xraph/vesting/store"
)

// Collection name constants.
const (
	colBenefits = "vesting_benefits"
	colEvents   = "vesting_events"
)

// compile-time interface check
var _ vestingstore.Store = (*Store)(nil)

// Store implements store.Store using MongoDB via Grove ORM.
type Store struct {
	db  *grove.DB
	mdb *mongodriver.MongoDB
}

// New creates a new MongoDB store backed by Grove ORM.
func New(db *grove.DB) *Store {
	return &Store{
		db:  db,
		mdb: mongodriver.Unwrap(db),
	}
}

// DB returns the underlying grove database for direct access.
func (s *Store) DB() *grove.DB { return s.db }

// Migrate creates indexes for the vesting collections.
func (s *Store) Migrate(ctx context.Context) error {
	indexes := migrationIndexes()

	for col, models := range indexes {
		if len(models) == 0 {
			continue
		}
		_, err := s.mdb.Collection(col).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("vesting/mongo: migrate %s indexes: %w", col, err)
		}
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
	m.UpdatedAt = now()

	_, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"asset": m.Asset, "beneficiary": m.Beneficiary}).
		SetUpdate(bson.M{"$set": bson.M{
			"_id":         m.ID,
			"asset":       m.Asset,
			"beneficiary": m.Beneficiary,
			"funder":      m.Funder,
			"amount":      m.Amount,
			"released":    m.Released,
			"start_date":  m.StartDate,
			"duration":    m.Duration,
			"created_at":  m.CreatedAt,
			"updated_at":  m.UpdatedAt,
		}}).
		Upsert().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("vesting/mongo: save benefit: %w", err)
	}
	return nil
}

func (s *Store) GetBenefit(ctx context.Context, asset, beneficiary string) (*benefit.Benefit, error) {
	var m benefitModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"asset": asset, "beneficiary": beneficiary}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, vesting.ErrBenefitNotFound
		}
		return nil, fmt.Errorf("vesting/mongo: get benefit: %w", err)
	}
	return fromBenefitModel(&m)
}

func (s *Store) DeleteBenefit(ctx context.Context, asset, beneficiary string) error {
	_, err := s.mdb.NewDelete((*benefitModel)(nil)).
		Filter(bson.M{"asset": asset, "beneficiary": beneficiary}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("vesting/mongo: delete benefit: %w", err)
	}
	return nil
}

func (s *Store) ListBenefits(ctx context.Context, opts benefit.ListOpts) ([]*benefit.Benefit, error) {
	var models []benefitModel

	filter := bson.M{}
	if opts.Asset != "" {
		filter["asset"] = opts.Asset
	}
	if opts.Beneficiary != "" {
		filter["beneficiary"] = opts.Beneficiary
	}

	q := s.mdb.NewFind(&models).
		Filter(filter).
		Sort(bson.D{{Key: "asset", Value: 1}, {Key: "beneficiary", Value: 1}})

	if opts.Limit > 0 {
		q = q.Limit(int64(opts.Limit))
	}
	if opts.Offset > 0 {
		q = q.Skip(int64(opts.Offset))
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("vesting/mongo: list benefits: %w", err)
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
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err != nil {
		return fmt.Errorf("vesting/mongo: append event: %w", err)
	}
	return nil
}

func (s *Store) ListEvents(ctx context.Context, opts benefit.EventQueryOpts) ([]*benefit.Event, error) {
	var models []eventModel

	filter := bson.M{}
	if opts.Asset != "" {
		filter["asset"] = opts.Asset
	}
	if opts.Beneficiary != "" {
		filter["beneficiary"] = opts.Beneficiary
	}
	if opts.Type != "" {
		filter["type"] = string(opts.Type)
	}
	if !opts.Since.IsZero() {
		filter["at"] = bson.M{"$gte": opts.Since}
	}

	q := s.mdb.NewFind(&models).
		Filter(filter).
		Sort(bson.D{{Key: "at", Value: 1}})

	if opts.Limit > 0 {
		q = q.Limit(int64(opts.Limit))
	}
	if opts.Offset > 0 {
		q = q.Skip(int64(opts.Offset))
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("vesting/mongo: list events: %w", err)
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
	res, err := s.mdb.NewDelete((*eventModel)(nil)).
		Filter(bson.M{"at": bson.M{"$lt": before}}).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("vesting/mongo: purge events: %w", err)
	}
	return res.DeletedCount(), nil
}

// ==================== Helpers ====================

func now() time.Time {
	return time.Now().UTC()
}

// isNoDocuments checks if an error wraps mongo.ErrNoDocuments.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// migrationIndexes returns the index definitions for the vesting collections.
func migrationIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		colBenefits: {
			{
				Keys:    bson.D{{Key: "asset", Value: 1}, {Key: "beneficiary", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "beneficiary", Value: 1}}},
		},
		colEvents: {
			{Keys: bson.D{{Key: "asset", Value: 1}, {Key: "beneficiary", Value: 1}, {Key: "at", Value: -1}}},
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "at", Value: -1}}},
			{Keys: bson.D{{Key: "at", Value: -1}}},
		},
	}
}
