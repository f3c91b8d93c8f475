package sqlite

import (
	"context"

	"github.com/xraph/grove/migrate"
)

// Migrations is the grove migration group for the Vesting store (SQLite).
var Migrations = migrate.NewGroup("vesting")

func init() {
	Migrations.MustRegister(
		&migrate.Migration{
			Name:    "create_vesting_benefits",
			Version: "20240101000001",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS vesting_benefits (
    id          TEXT PRIMARY KEY,
    asset       TEXT NOT NULL DEFAULT '',
    beneficiary TEXT NOT NULL DEFAULT '',
    funder      TEXT NOT NULL DEFAULT '',
    amount      TEXT NOT NULL DEFAULT '0',
    released    TEXT NOT NULL DEFAULT '0',
    start_date  INTEGER NOT NULL DEFAULT 0,
    duration    INTEGER NOT NULL DEFAULT 0,
    created_at  TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_vesting_benefits_pair ON vesting_benefits (asset, beneficiary);
CREATE INDEX IF NOT EXISTS idx_vesting_benefits_beneficiary ON vesting_benefits (beneficiary);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS vesting_benefits`)
				return err
			},
		},
		&migrate.Migration{
			Name:    "create_vesting_events",
			Version: "20240101000002",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS vesting_events (
    id           TEXT PRIMARY KEY,
    type         TEXT NOT NULL DEFAULT '',
    asset        TEXT NOT NULL DEFAULT '',
    beneficiary  TEXT NOT NULL DEFAULT '',
    amount       TEXT NOT NULL DEFAULT '0',
    start_date   INTEGER NOT NULL DEFAULT 0,
    release_date INTEGER NOT NULL DEFAULT 0,
    at           TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_vesting_events_pair_at ON vesting_events (asset, beneficiary, at);
CREATE INDEX IF NOT EXISTS idx_vesting_events_type_at ON vesting_events (type, at);
CREATE INDEX IF NOT EXISTS idx_vesting_events_at ON vesting_events (at);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS vesting_events`)
				return err
			},
		},
	)
}
