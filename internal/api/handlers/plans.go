package handlers

import (
	"context"
	"mail-train-service/internal/api/dto"
	"mail-train-service/internal/domain"
	"mail-train-service/internal/services"
	"net/http"
	"strings"
)

// Planner is the subset of services.Planner the plan endpoints use.
type Planner interface {
	PlanDeliveries(ctx context.Context, req services.PlanDeliveriesRequest) (*domain.DeliveryPlan, error)
	Compare(ctx context.Context, scenario string) ([]*domain.DeliveryPlan, error)
	GetPlan(ctx context.Context, id string) (*domain.DeliveryPlan, error)
}

type PlanHandler struct {
	Planner         Planner
	DefaultStrategy services.Strategy
}

// Plan solves a stored scenario with one strategy. Plans that could not
// deliver every package are still 200 responses with complete=false.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	scenario := strings.TrimSpace(req.Scenario)
	if scenario == "" {
		writeError(w, r, http.StatusBadRequest, "scenario is required")
		return
	}
	strategy := services.Strategy(strings.TrimSpace(req.Strategy))
	if strategy == "" {
		strategy = h.DefaultStrategy
	}

	plan, err := h.Planner.PlanDeliveries(r.Context(), services.PlanDeliveriesRequest{
		Scenario: scenario,
		Strategy: strategy,
	})
	if err != nil {
		writeServiceError(w, r, "plan deliveries", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(plan))
}

// Compare solves a stored scenario with every strategy.
func (h *PlanHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.CompareRequest
	if !decodeBody(w, r, &req) {
		return
	}
	scenario := strings.TrimSpace(req.Scenario)
	if scenario == "" {
		writeError(w, r, http.StatusBadRequest, "scenario is required")
		return
	}

	plans, err := h.Planner.Compare(r.Context(), scenario)
	if err != nil {
		writeServiceError(w, r, "compare strategies", err)
		return
	}

	res := dto.ComparePlanResponse{Plans: make([]dto.PlanResponse, 0, len(plans))}
	for _, p := range plans {
		res.Plans = append(res.Plans, toPlanResponse(p))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	plan, err := h.Planner.GetPlan(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get plan", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(plan))
}

func toPlanResponse(p *domain.DeliveryPlan) dto.PlanResponse {
	res := dto.PlanResponse{
		ID:          p.ID,
		Scenario:    p.Scenario,
		Strategy:    p.Strategy,
		Complete:    p.Complete,
		Undelivered: nonNil(p.Undelivered),
		Skipped:     nonNil(p.Skipped),
		Makespan:    p.Makespan,
		Moves:       len(p.Steps),
		Steps:       make([]dto.PlanStepResponse, 0, len(p.Steps)),
		CreatedAt:   p.CreatedAt,
	}
	for _, s := range p.Steps {
		res.Steps = append(res.Steps, dto.PlanStepResponse{
			StartTime:       s.StartTime,
			Station:         s.Station,
			Train:           s.Train,
			Moving:          s.Moving,
			Route:           s.Route,
			Destination:     s.Destination,
			ArriveAt:        s.ArriveAt,
			PickUps:         nonNil(s.PickUps),
			DropOffs:        nonNil(s.DropOffs),
			ArrivalDropOffs: nonNil(s.ArrivalDropOffs),
		})
	}
	return res
}
