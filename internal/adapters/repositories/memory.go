package repositories

import (
	"context"
	"fmt"
	"mail-train-service/internal/domain"
	"mail-train-service/internal/ports"
	"slices"
	"sync"
)

// In-memory implementation of the ScenarioRepository port, used when no
// database is configured and in tests.
type MemoryScenarioRepository struct {
	mu        sync.RWMutex
	scenarios map[string]*domain.Scenario
}

func NewMemoryScenarioRepository(scenarios ...*domain.Scenario) *MemoryScenarioRepository {
	r := &MemoryScenarioRepository{scenarios: make(map[string]*domain.Scenario, len(scenarios))}
	for _, sc := range scenarios {
		r.Put(sc)
	}
	return r
}

// Add or replace a scenario.
func (r *MemoryScenarioRepository) Put(sc *domain.Scenario) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenarios[sc.Name] = sc
}

func (r *MemoryScenarioRepository) ListScenarios(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (r *MemoryScenarioRepository) LoadScenario(ctx context.Context, name string) (*domain.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sc, ok := r.scenarios[name]
	if !ok {
		return nil, fmt.Errorf("load scenario %q: %w", name, ports.ErrNotFound)
	}
	cp := *sc
	return &cp, nil
}

// In-memory implementation of the PlanStore port.
type MemoryPlanStore struct {
	mu    sync.RWMutex
	plans map[string]*domain.DeliveryPlan
}

func NewMemoryPlanStore() *MemoryPlanStore {
	return &MemoryPlanStore{plans: make(map[string]*domain.DeliveryPlan)}
}

func (s *MemoryPlanStore) SavePlan(ctx context.Context, plan *domain.DeliveryPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[plan.ID] = plan
	return nil
}

func (s *MemoryPlanStore) GetPlan(ctx context.Context, id string) (*domain.DeliveryPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans[id]
	if !ok {
		return nil, fmt.Errorf("get plan %q: %w", id, ports.ErrNotFound)
	}
	return plan, nil
}
