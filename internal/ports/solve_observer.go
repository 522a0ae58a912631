package ports

import "time"

// Receives solver measurements. Implemented by the metrics adapter.
type SolveObserver interface {
	ObserveSolve(strategy string, elapsed time.Duration, moves int, complete bool)
	ObserveCache(hit bool)
}
