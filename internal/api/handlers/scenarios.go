package handlers

import (
	"mail-train-service/internal/api/dto"
	"mail-train-service/internal/ports"
	"mail-train-service/internal/services"
	"net/http"
)

// ScenarioHandler exposes read-only scenario endpoints.
type ScenarioHandler struct {
	Repo ports.ScenarioRepository
}

func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	names, err := h.Repo.ListScenarios(r.Context())
	if err != nil {
		writeServiceError(w, r, "list scenarios", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListScenariosResponse{Scenarios: names})
}

// Get describes one scenario together with its connectivity report.
func (h *ScenarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	sc, err := h.Repo.LoadScenario(r.Context(), r.PathValue("name"))
	if err != nil {
		writeServiceError(w, r, "load scenario", err)
		return
	}
	state, err := sc.Build()
	if err != nil {
		writeServiceError(w, r, "build scenario", err)
		return
	}
	report := services.AnalyzeConnectivity(state)

	res := dto.ScenarioResponse{
		Name:        sc.Name,
		Fingerprint: services.Fingerprint(state),
		Stations:    sc.Stations,
		Links:       make([]dto.LinkResponse, 0, len(sc.Links)),
		Trains:      make([]dto.TrainResponse, 0, len(sc.Trains)),
		Deliveries:  make([]dto.DeliveryResponse, 0, len(sc.Deliveries)),
		Connectivity: dto.ConnectivityResponse{
			Components: report.Components,
			Isolated:   nonNil(report.Isolated),
			Stranded:   nonNil(report.Stranded),
		},
	}
	for _, l := range sc.Links {
		res.Links = append(res.Links, dto.LinkResponse{Name: l.Name, From: l.From, To: l.To, Time: l.TravelTime})
	}
	for _, t := range sc.Trains {
		res.Trains = append(res.Trains, dto.TrainResponse{Name: t.Name, Home: t.Home, Capacity: t.Capacity})
	}
	for _, d := range sc.Deliveries {
		res.Deliveries = append(res.Deliveries, dto.DeliveryResponse{Name: d.Name, PickUp: d.PickUp, DropOff: d.DropOff, Weight: d.Weight})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
