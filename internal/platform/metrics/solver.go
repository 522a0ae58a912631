package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SolverMetrics records solver and HTTP activity in Prometheus collectors.
// It implements ports.SolveObserver.
type SolverMetrics struct {
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	moves    *prometheus.HistogramVec
	cache    *prometheus.CounterVec
	requests *prometheus.CounterVec
}

// NewSolverMetrics registers the collectors on reg, or on the default
// registerer when reg is nil. Collectors that are already registered are
// reused.
func NewSolverMetrics(reg prometheus.Registerer) (*SolverMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trains_solves_total",
		Help: "Number of solved schedules",
	}, []string{"strategy", "complete"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trains_solve_duration_seconds",
		Help:    "Time spent computing a schedule",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})
	moves := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trains_plan_moves",
		Help:    "Number of moves in a solved schedule",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"strategy"})
	cache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trains_plan_cache_lookups_total",
		Help: "Plan cache lookups by result",
	}, []string{"result"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trains_http_requests_total",
		Help: "HTTP requests by method and status code",
	}, []string{"method", "code"})

	var err error
	if solves, err = register(reg, solves); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if moves, err = register(reg, moves); err != nil {
		return nil, err
	}
	if cache, err = register(reg, cache); err != nil {
		return nil, err
	}
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}

	return &SolverMetrics{
		solves:   solves,
		duration: duration,
		moves:    moves,
		cache:    cache,
		requests: requests,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *SolverMetrics) ObserveSolve(strategy string, elapsed time.Duration, moves int, complete bool) {
	m.solves.WithLabelValues(strategy, strconv.FormatBool(complete)).Inc()
	m.duration.WithLabelValues(strategy).Observe(elapsed.Seconds())
	m.moves.WithLabelValues(strategy).Observe(float64(moves))
}

func (m *SolverMetrics) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cache.WithLabelValues(result).Inc()
}

func (m *SolverMetrics) ObserveRequest(method string, status int) {
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
