package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mail-train-service/internal/domain"
	"mail-train-service/internal/platform/obs"
	"mail-train-service/internal/ports"

	"go.uber.org/zap"
)

// Postgres-backed implementation of the ScenarioRepository port.
type PostgresScenarioRepository struct {
	DB  *sql.DB
	Log *zap.SugaredLogger
}

func NewPostgresScenarioRepository(db *sql.DB, log *zap.SugaredLogger) *PostgresScenarioRepository {
	return &PostgresScenarioRepository{DB: db, Log: log}
}

func (r *PostgresScenarioRepository) ListScenarios(ctx context.Context) ([]string, error) {
	if r.DB == nil {
		return nil, errors.New("postgres scenario repository: DB is nil")
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT name FROM scenarios ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: query scenarios table: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 16)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list scenarios: scan row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scenarios: row iteration: %w", err)
	}

	return names, nil
}

// Load a scenario with its stations, links, trains and deliveries in the
// order they were stored.
func (r *PostgresScenarioRepository) LoadScenario(ctx context.Context, name string) (_ *domain.Scenario, err error) {
	defer obs.Time(ctx, r.Log, "scenario.repo.LoadScenario")(&err)

	if r.DB == nil {
		return nil, errors.New("postgres scenario repository: DB is nil")
	}

	var exists bool
	if err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM scenarios WHERE name = $1);`, name,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("load scenario %q: %w", name, err)
	}
	if !exists {
		return nil, fmt.Errorf("load scenario %q: %w", name, ports.ErrNotFound)
	}

	sc := &domain.Scenario{Name: name}

	err = queryRows(ctx, r.DB, `
	SELECT name FROM scenario_stations
	WHERE scenario = $1 ORDER BY position;
	`, name, func(rows *sql.Rows) error {
		var st string
		if err := rows.Scan(&st); err != nil {
			return err
		}
		sc.Stations = append(sc.Stations, st)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load scenario %q: stations: %w", name, err)
	}

	err = queryRows(ctx, r.DB, `
	SELECT name, from_station, to_station, travel_time FROM scenario_links
	WHERE scenario = $1 ORDER BY position;
	`, name, func(rows *sql.Rows) error {
		var l domain.LinkSpec
		if err := rows.Scan(&l.Name, &l.From, &l.To, &l.TravelTime); err != nil {
			return err
		}
		sc.Links = append(sc.Links, l)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load scenario %q: links: %w", name, err)
	}

	err = queryRows(ctx, r.DB, `
	SELECT name, home, capacity FROM scenario_trains
	WHERE scenario = $1 ORDER BY position;
	`, name, func(rows *sql.Rows) error {
		var t domain.TrainSpec
		if err := rows.Scan(&t.Name, &t.Home, &t.Capacity); err != nil {
			return err
		}
		sc.Trains = append(sc.Trains, t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load scenario %q: trains: %w", name, err)
	}

	err = queryRows(ctx, r.DB, `
	SELECT name, pickup, dropoff, weight FROM scenario_deliveries
	WHERE scenario = $1 ORDER BY position;
	`, name, func(rows *sql.Rows) error {
		var d domain.DeliverySpec
		if err := rows.Scan(&d.Name, &d.PickUp, &d.DropOff, &d.Weight); err != nil {
			return err
		}
		sc.Deliveries = append(sc.Deliveries, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load scenario %q: deliveries: %w", name, err)
	}

	return sc, nil
}

func queryRows(ctx context.Context, db *sql.DB, q string, arg any, scan func(*sql.Rows) error) error {
	rows, err := db.QueryContext(ctx, q, arg)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("row iteration: %w", err)
	}
	return nil
}
