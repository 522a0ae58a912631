package ports

import (
	"context"
	"errors"
	"mail-train-service/internal/domain"
)

// Returned by repositories and stores when the named record does not exist.
var ErrNotFound = errors.New("not found")

// Port: a boundary for retrieving stored scenarios (network, fleet and
// deliveries) from a data source.
type ScenarioRepository interface {
	// List the names of all stored scenarios, sorted.
	ListScenarios(ctx context.Context) ([]string, error)
	// Load one scenario by name. Wraps ErrNotFound when it does not exist.
	LoadScenario(ctx context.Context, name string) (*domain.Scenario, error)
}
