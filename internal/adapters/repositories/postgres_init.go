package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mail-train-service/internal/domain"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS scenarios (
		name TEXT PRIMARY KEY
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS scenario_stations (
		scenario TEXT NOT NULL REFERENCES scenarios(name) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		PRIMARY KEY (scenario, position)
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS scenario_links (
		scenario TEXT NOT NULL REFERENCES scenarios(name) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		from_station TEXT NOT NULL,
		to_station TEXT NOT NULL,
		travel_time INTEGER NOT NULL,
		PRIMARY KEY (scenario, position)
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS scenario_trains (
		scenario TEXT NOT NULL REFERENCES scenarios(name) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		home TEXT NOT NULL,
		capacity INTEGER NOT NULL,
		PRIMARY KEY (scenario, position)
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS scenario_deliveries (
		scenario TEXT NOT NULL REFERENCES scenarios(name) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		pickup TEXT NOT NULL,
		dropoff TEXT NOT NULL,
		weight INTEGER NOT NULL,
		PRIMARY KEY (scenario, position)
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		scenario TEXT NOT NULL,
		strategy TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		complete BOOLEAN NOT NULL,
		makespan INTEGER NOT NULL,
		body JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_plans_fingerprint_strategy
	ON plans(fingerprint, strategy);
	`,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the stored scenarios with the given ones, keeping row order.
func SeedScenarios(ctx context.Context, db *sql.DB, scenarios []*domain.Scenario) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed scenarios: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, sc := range scenarios {
		if _, err := tx.ExecContext(ctx, `DELETE FROM scenarios WHERE name = $1;`, sc.Name); err != nil {
			return fmt.Errorf("seed scenarios: delete %q: %w", sc.Name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO scenarios (name) VALUES ($1);`, sc.Name); err != nil {
			return fmt.Errorf("seed scenarios: insert %q: %w", sc.Name, err)
		}

		for i, st := range sc.Stations {
			if _, err := tx.ExecContext(ctx, `
	INSERT INTO scenario_stations (scenario, position, name)
	VALUES ($1, $2, $3);
	`, sc.Name, i, st); err != nil {
				return fmt.Errorf("seed scenarios: %q station %q: %w", sc.Name, st, err)
			}
		}
		for i, l := range sc.Links {
			if _, err := tx.ExecContext(ctx, `
	INSERT INTO scenario_links (scenario, position, name, from_station, to_station, travel_time)
	VALUES ($1, $2, $3, $4, $5, $6);
	`, sc.Name, i, l.Name, l.From, l.To, l.TravelTime); err != nil {
				return fmt.Errorf("seed scenarios: %q link %q: %w", sc.Name, l.Name, err)
			}
		}
		for i, t := range sc.Trains {
			if _, err := tx.ExecContext(ctx, `
	INSERT INTO scenario_trains (scenario, position, name, home, capacity)
	VALUES ($1, $2, $3, $4, $5);
	`, sc.Name, i, t.Name, t.Home, t.Capacity); err != nil {
				return fmt.Errorf("seed scenarios: %q train %q: %w", sc.Name, t.Name, err)
			}
		}
		for i, d := range sc.Deliveries {
			if _, err := tx.ExecContext(ctx, `
	INSERT INTO scenario_deliveries (scenario, position, name, pickup, dropoff, weight)
	VALUES ($1, $2, $3, $4, $5, $6);
	`, sc.Name, i, d.Name, d.PickUp, d.DropOff, d.Weight); err != nil {
				return fmt.Errorf("seed scenarios: %q delivery %q: %w", sc.Name, d.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed scenarios: commit tx: %w", err)
	}

	return nil
}

// Populate the database with scenarios from a JSON seed file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	scenarios, err := LoadSeedFile(jsonPath)
	if err != nil {
		return err
	}
	return SeedScenarios(ctx, db, scenarios)
}
