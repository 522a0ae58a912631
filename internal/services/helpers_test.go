package services

import (
	"mail-train-service/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// A-B (5), B-C (3); Q1 at A carries K1 from A to C.
func lineScenario() domain.Scenario {
	return domain.Scenario{
		Name:     "line",
		Stations: []string{"A", "B", "C"},
		Links: []domain.LinkSpec{
			{Name: "E1", From: "A", To: "B", TravelTime: 5},
			{Name: "E2", From: "B", To: "C", TravelTime: 3},
		},
		Trains:     []domain.TrainSpec{{Name: "Q1", Home: "A", Capacity: 10}},
		Deliveries: []domain.DeliverySpec{{Name: "K1", PickUp: "A", DropOff: "C", Weight: 4}},
	}
}

// lineScenario plus packages that can ride along: K2 B->C and K3 A->B.
func consolidationScenario() domain.Scenario {
	sc := lineScenario()
	sc.Name = "consolidation"
	sc.Deliveries = append(sc.Deliveries,
		domain.DeliverySpec{Name: "K2", PickUp: "B", DropOff: "C", Weight: 3},
		domain.DeliverySpec{Name: "K3", PickUp: "A", DropOff: "B", Weight: 2},
	)
	return sc
}

// Two sub-networks; K2 has to cross between them.
func splitScenario() domain.Scenario {
	return domain.Scenario{
		Name:     "split",
		Stations: []string{"A", "B", "C", "D"},
		Links: []domain.LinkSpec{
			{Name: "E1", From: "A", To: "B", TravelTime: 5},
			{Name: "E2", From: "C", To: "D", TravelTime: 3},
		},
		Trains: []domain.TrainSpec{{Name: "Q1", Home: "A", Capacity: 5}},
		Deliveries: []domain.DeliverySpec{
			{Name: "K1", PickUp: "A", DropOff: "B", Weight: 2},
			{Name: "K2", PickUp: "B", DropOff: "C", Weight: 2},
		},
	}
}

// Station D has no links and K1 waits there.
func islandScenario() domain.Scenario {
	return domain.Scenario{
		Name:       "island",
		Stations:   []string{"A", "B", "D"},
		Links:      []domain.LinkSpec{{Name: "E1", From: "A", To: "B", TravelTime: 5}},
		Trains:     []domain.TrainSpec{{Name: "Q1", Home: "A", Capacity: 5}},
		Deliveries: []domain.DeliverySpec{{Name: "K1", PickUp: "D", DropOff: "B", Weight: 1}},
	}
}

func buildState(t *testing.T, sc domain.Scenario) *domain.State {
	t.Helper()
	state, err := sc.Build()
	require.NoError(t, err)
	return state
}

func station(t *testing.T, n *domain.Network, name string) domain.StationID {
	t.Helper()
	id, ok := n.Lookup(name)
	require.True(t, ok, "station %s", name)
	return id
}

// routeBetween returns the first route from one station to another.
func routeBetween(t *testing.T, n *domain.Network, from, to string) *domain.Route {
	t.Helper()
	a, b := station(t, n, from), station(t, n, to)
	for _, rid := range n.Station(a).Routes {
		if r := n.Route(rid); r.To == b {
			return r
		}
	}
	t.Fatalf("no route %s->%s", from, to)
	return nil
}

func diffSteps(t *testing.T, n *domain.Network, want []domain.PlanStep, moves []domain.Move) {
	t.Helper()
	got, _ := domain.NewPlanSteps(n, moves)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}
