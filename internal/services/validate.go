package services

import (
	"fmt"
	"mail-train-service/internal/domain"
	"slices"
)

// Prepare checks that a state can be scheduled and drops packages that need
// no transport (pickup == dropoff), returning their names.
//
// It fails with a wrapped setup error when packages exist but there are no
// trains, when the heaviest package outweighs the largest train, or when the
// network holds negative travel times or the fleet negative capacities or
// weights. Reachability is not checked here: strategies report unreachable
// packages while scheduling.
func Prepare(state *domain.State) (skipped []string, err error) {
	if state == nil || state.Network == nil {
		return nil, fmt.Errorf("prepare: %w: state has no network", ErrInvalidNetwork)
	}

	for _, r := range state.Network.Routes() {
		if r.TravelTime < 0 {
			return nil, fmt.Errorf("prepare: %w: route %s has negative travel time %d", ErrInvalidNetwork, r.Name, r.TravelTime)
		}
	}

	maxCapacity := -1
	for _, t := range state.Trains {
		if t.Capacity < 0 {
			return nil, fmt.Errorf("prepare: %w: train %s has negative capacity %d", ErrInvalidNetwork, t.Name, t.Capacity)
		}
		maxCapacity = max(maxCapacity, t.Capacity)
	}

	state.Pending = slices.DeleteFunc(state.Pending, func(p *domain.Package) bool {
		if p.PickUp == p.DropOff {
			skipped = append(skipped, p.Name)
			return true
		}
		return false
	})

	if len(state.Pending) == 0 {
		return skipped, nil
	}
	if len(state.Trains) == 0 {
		return nil, fmt.Errorf("prepare: %w: %d packages pending", ErrNoTrains, len(state.Pending))
	}

	for _, p := range state.Pending {
		if p.Weight < 0 {
			return nil, fmt.Errorf("prepare: %w: package %s has negative weight %d", ErrInvalidNetwork, p.Name, p.Weight)
		}
		if p.Weight > maxCapacity {
			return nil, fmt.Errorf(
				"prepare: %w: package %s weighs %d, largest train carries %d",
				ErrInsufficientCapacity, p.Name, p.Weight, maxCapacity,
			)
		}
	}

	return skipped, nil
}
