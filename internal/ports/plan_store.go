package ports

import (
	"context"
	"mail-train-service/internal/domain"
	"time"
)

// Durable storage for solved plans.
type PlanStore interface {
	SavePlan(ctx context.Context, plan *domain.DeliveryPlan) error
	// Wraps ErrNotFound for unknown ids.
	GetPlan(ctx context.Context, id string) (*domain.DeliveryPlan, error)
}

// Short-lived cache of solved plans keyed by scenario fingerprint and
// strategy.
type PlanCache interface {
	// Return the cached plan, or ok=false on a miss.
	Get(ctx context.Context, key string) (_ *domain.DeliveryPlan, ok bool, err error)
	Set(ctx context.Context, key string, plan *domain.DeliveryPlan, ttl time.Duration) error
}
