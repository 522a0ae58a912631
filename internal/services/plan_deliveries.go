package services

import (
	"context"
	"errors"
	"fmt"
	"mail-train-service/internal/domain"
	"mail-train-service/internal/platform/obs"
	"mail-train-service/internal/ports"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type PlanDeliveriesRequest struct {
	Scenario string
	Strategy Strategy
}

// Planner solves stored scenarios and keeps the resulting plans.
// Store, Cache and Observer are optional.
type Planner struct {
	Repo     ports.ScenarioRepository
	Store    ports.PlanStore
	Cache    ports.PlanCache
	Observer ports.SolveObserver
	Log      *zap.SugaredLogger
	CacheTTL time.Duration
}

// Solution is a solved schedule together with what produced it.
type Solution struct {
	Plan *domain.DeliveryPlan
	// State the strategy started from, after Prepare.
	Prepared *domain.State
	Moves    []domain.Move
}

// Run schedules a clone of initial with one strategy and flattens the result
// into a plan. initial is left untouched.
//
// Setup errors (see Prepare) and cancellation return a nil Solution. When the
// strategy could not deliver everything the plan has Complete set to false and
// the *DeliveryError is returned alongside the Solution.
func Run(ctx context.Context, scenario string, initial *domain.State, strategy Strategy) (*Solution, error) {
	state := initial.Clone()

	skipped, err := Prepare(state)
	if err != nil {
		return nil, fmt.Errorf("solve %s/%s: %w", scenario, strategy, err)
	}
	prepared := state.Clone()

	moves, err := Schedule(ctx, strategy, state)
	var derr *DeliveryError
	if err != nil && !errors.As(err, &derr) {
		return nil, fmt.Errorf("solve %s/%s: %w", scenario, strategy, err)
	}

	steps, makespan := domain.NewPlanSteps(state.Network, moves)
	plan := &domain.DeliveryPlan{
		ID:          uuid.NewString(),
		Scenario:    scenario,
		Strategy:    string(strategy),
		Fingerprint: Fingerprint(initial),
		Complete:    derr == nil,
		Skipped:     skipped,
		Makespan:    makespan,
		Steps:       steps,
		CreatedAt:   time.Now().UTC(),
	}
	sol := &Solution{Plan: plan, Prepared: prepared, Moves: moves}
	if derr != nil {
		plan.Undelivered = derr.Packages
		return sol, derr
	}
	return sol, nil
}

// Solve is Run without the schedule internals.
func Solve(ctx context.Context, scenario string, initial *domain.State, strategy Strategy) (*domain.DeliveryPlan, error) {
	sol, err := Run(ctx, scenario, initial, strategy)
	if sol == nil {
		return nil, err
	}
	return sol.Plan, err
}

// PlanDeliveries loads a scenario and returns its plan for one strategy,
// served from the cache when the same network and strategy were solved
// before. A plan that could not deliver everything is still returned and
// stored; only setup and infrastructure failures are errors.
func (p *Planner) PlanDeliveries(ctx context.Context, req PlanDeliveriesRequest) (_ *domain.DeliveryPlan, err error) {
	defer obs.Time(ctx, p.Log, "planner.PlanDeliveries")(&err)

	strategy, err := ParseStrategy(string(req.Strategy))
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	sc, state, err := p.load(ctx, req.Scenario)
	if err != nil {
		return nil, err
	}

	return p.plan(ctx, sc.Name, state, strategy)
}

// Compare solves a scenario with every strategy concurrently. Plans are
// returned in presentation order.
func (p *Planner) Compare(ctx context.Context, scenario string) (_ []*domain.DeliveryPlan, err error) {
	defer obs.Time(ctx, p.Log, "planner.Compare")(&err)

	sc, state, err := p.load(ctx, scenario)
	if err != nil {
		return nil, err
	}

	plans := make([]*domain.DeliveryPlan, len(Strategies))
	g, gctx := errgroup.WithContext(ctx)
	for i, strategy := range Strategies {
		g.Go(func() error {
			plan, err := p.plan(gctx, sc.Name, state, strategy)
			if err != nil {
				return err
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compare strategies: %w", err)
	}

	return plans, nil
}

// Return a stored plan by id.
func (p *Planner) GetPlan(ctx context.Context, id string) (*domain.DeliveryPlan, error) {
	if p.Store == nil {
		return nil, fmt.Errorf("get plan %q: %w", id, ports.ErrNotFound)
	}

	plan, err := p.Store.GetPlan(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plan %q: %w", id, err)
	}
	return plan, nil
}

func (p *Planner) load(ctx context.Context, name string) (*domain.Scenario, *domain.State, error) {
	sc, err := p.Repo.LoadScenario(ctx, name)
	if err != nil {
		return nil, nil, fmt.Errorf("plan deliveries: load scenario: %w", err)
	}

	state, err := sc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("plan deliveries: %w", err)
	}

	return sc, state, nil
}

// plan solves one strategy on its own clone of state. It only reads state,
// so Compare may call it concurrently.
func (p *Planner) plan(ctx context.Context, scenario string, state *domain.State, strategy Strategy) (*domain.DeliveryPlan, error) {
	// Plans carry their scenario name; equal networks under different names
	// get separate entries.
	key := scenario + ":" + Fingerprint(state) + ":" + string(strategy)

	if p.Cache != nil {
		cached, ok, err := p.Cache.Get(ctx, key)
		if err != nil {
			p.Log.Warnw("plan cache read failed", "key", key, "err", err)
		}
		p.observeCache(ok)
		if ok {
			p.Log.Debugw("plan cache hit", "scenario", scenario, "strategy", strategy, "plan_id", cached.ID)
			return cached, nil
		}
	}

	start := time.Now()
	plan, err := Solve(ctx, scenario, state, strategy)
	var derr *DeliveryError
	if err != nil && !errors.As(err, &derr) {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}
	if p.Observer != nil {
		p.Observer.ObserveSolve(string(strategy), time.Since(start), len(plan.Steps), plan.Complete)
	}

	if len(plan.Skipped) > 0 {
		p.Log.Infow("packages already at destination", "scenario", scenario, "packages", plan.Skipped)
	}
	if derr != nil {
		p.Log.Warnw("plan incomplete",
			"scenario", scenario,
			"strategy", strategy,
			"undelivered", derr.Packages,
			"err", derr.Err,
		)
	}

	if p.Store != nil {
		if err := p.Store.SavePlan(ctx, plan); err != nil {
			return nil, fmt.Errorf("plan deliveries: save plan: %w", err)
		}
	}
	if p.Cache != nil {
		if err := p.Cache.Set(ctx, key, plan, p.CacheTTL); err != nil {
			p.Log.Warnw("plan cache write failed", "key", key, "err", err)
		}
	}

	p.Log.Infow("plan solved",
		"scenario", scenario,
		"strategy", strategy,
		"plan_id", plan.ID,
		"steps", len(plan.Steps),
		"makespan", plan.Makespan,
		"complete", plan.Complete,
	)
	return plan, nil
}

func (p *Planner) observeCache(hit bool) {
	if p.Observer != nil {
		p.Observer.ObserveCache(hit)
	}
}
