package api

import (
	"mail-train-service/internal/api/handlers"
	"mail-train-service/internal/ports"
	"mail-train-service/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Repo    ports.ScenarioRepository
	Planner handlers.Planner
	Log     *zap.SugaredLogger
	// Optional; requests are counted when set.
	Requests RequestObserver
	// Registry served on /metrics. Nil serves the default registry.
	Gatherer prometheus.Gatherer
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	scenarioHandler := &handlers.ScenarioHandler{Repo: cfg.Repo}
	planHandler := &handlers.PlanHandler{
		Planner:         cfg.Planner,
		DefaultStrategy: services.PickupsAlongRoute,
	}

	metricsHandler := promhttp.Handler()
	if cfg.Gatherer != nil {
		metricsHandler = promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/scenarios", scenarioHandler.List)
	mux.HandleFunc("/scenarios/{name}", scenarioHandler.Get)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/plans/compare", planHandler.Compare)
	mux.HandleFunc("/plans/{id}", planHandler.Get)
	mux.Handle("/metrics", metricsHandler)

	return loggingMiddleware(cfg.Log, cfg.Requests, mux)
}
