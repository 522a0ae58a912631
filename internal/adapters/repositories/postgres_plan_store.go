package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"mail-train-service/internal/domain"
	"mail-train-service/internal/ports"
)

// Postgres-backed implementation of the PlanStore port. The full plan is
// kept as JSONB next to the columns used for lookups.
type PostgresPlanStore struct {
	DB *sql.DB
}

func NewPostgresPlanStore(db *sql.DB) *PostgresPlanStore {
	return &PostgresPlanStore{DB: db}
}

func (s *PostgresPlanStore) SavePlan(ctx context.Context, plan *domain.DeliveryPlan) error {
	if s.DB == nil {
		return errors.New("plan store: db is nil")
	}

	body, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("save plan %q: encode: %w", plan.ID, err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO plans (id, scenario, strategy, fingerprint, complete, makespan, body, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE
	SET body = EXCLUDED.body,
		complete = EXCLUDED.complete,
		makespan = EXCLUDED.makespan;
	`, plan.ID, plan.Scenario, plan.Strategy, plan.Fingerprint, plan.Complete, plan.Makespan, string(body), plan.CreatedAt)
	if err != nil {
		return fmt.Errorf("save plan %q: %w", plan.ID, err)
	}

	return nil
}

func (s *PostgresPlanStore) GetPlan(ctx context.Context, id string) (*domain.DeliveryPlan, error) {
	if s.DB == nil {
		return nil, errors.New("plan store: db is nil")
	}

	var body []byte
	err := s.DB.QueryRowContext(ctx, `SELECT body FROM plans WHERE id = $1;`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get plan %q: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get plan %q: %w", id, err)
	}

	var plan domain.DeliveryPlan
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, fmt.Errorf("get plan %q: decode: %w", id, err)
	}
	return &plan, nil
}
