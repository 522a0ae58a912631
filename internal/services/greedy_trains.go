package services

import (
	"context"
	"fmt"
	"mail-train-service/internal/domain"
	"math"
	"slices"
)

// scheduleGreedyTrains simulates the fleet one time unit at a time.
//
// At every tick each train that is neither travelling nor parked (trains in
// fleet order) drops the packages destined for its station, loads whatever
// pending packages there fit, and then heads for the nearest candidate
// station: a pickup station of a pending package that fits, or a dropoff
// station of a package aboard. Only the first route of the path to that
// candidate is committed; the rest is re-planned when the train arrives.
// A train with no candidate, or no reachable one, parks for good.
//
// The loop ends once every train is parked. Packages still pending or still
// aboard at that point are reported through a *DeliveryError alongside the
// moves. Termination relies on the input being solvable or becoming stuck;
// cancel ctx to abandon a run.
func scheduleGreedyTrains(ctx context.Context, state *domain.State) ([]domain.Move, error) {
	moves := []domain.Move{}

	for tick := 0; !allParked(state.Trains); tick++ {
		if err := ctx.Err(); err != nil {
			return moves, err
		}

		for _, train := range state.Trains {
			if train.Parked || train.BusyUntil > tick {
				continue
			}
			m, err := stepGreedyTrain(state, train, tick)
			if err != nil {
				return moves, err
			}
			moves = append(moves, m)
		}
	}

	var left []*domain.Package
	left = append(left, state.Pending...)
	for _, t := range state.Trains {
		left = append(left, t.Packages...)
	}
	if len(left) > 0 {
		return moves, &DeliveryError{Packages: domain.PackageNames(left), Err: ErrUndelivered}
	}
	return moves, nil
}

// stepGreedyTrain plans the next move of an idle train at tick.
func stepGreedyTrain(state *domain.State, train *domain.Train, tick int) (domain.Move, error) {
	m := domain.Move{
		StartTime:    tick,
		StartStation: train.Current,
		Train:        train,
		DropOffs:     train.UnloadAt(train.Current),
	}

	for pkg := nextPickupAt(state, train); pkg != nil; pkg = nextPickupAt(state, train) {
		if err := train.Board(pkg); err != nil {
			return m, fmt.Errorf("greedy trains: train %s package %s: %w", train.Name, pkg.Name, err)
		}
		state.RemovePending(pkg)
		m.PickUps = append(m.PickUps, pkg)
	}

	path, ok := nearestTarget(state.Network, train.Current, greedyTargets(state, train))
	if !ok {
		// Nothing left to do, or every target lies on another sub-network.
		train.Parked = true
		return m, nil
	}

	next := path[0]
	m.Route = next
	train.Current = next.To
	train.BusyUntil = tick + next.TravelTime
	return m, nil
}

// nextPickupAt returns the first pending package waiting at the train's
// station that fits its free capacity.
func nextPickupAt(state *domain.State, train *domain.Train) *domain.Package {
	free := train.FreeCapacity()
	for _, pkg := range state.Pending {
		if pkg.PickUp == train.Current && pkg.Weight <= free {
			return pkg
		}
	}
	return nil
}

// greedyTargets lists candidate next stations: pickup stations of pending
// packages the train could load (pending order), then dropoff stations of the
// packages aboard (boarding order), without duplicates.
func greedyTargets(state *domain.State, train *domain.Train) []domain.StationID {
	var targets []domain.StationID
	add := func(s domain.StationID) {
		if !slices.Contains(targets, s) {
			targets = append(targets, s)
		}
	}

	free := train.FreeCapacity()
	for _, pkg := range state.Pending {
		if pkg.Weight <= free {
			add(pkg.PickUp)
		}
	}
	for _, pkg := range train.Packages {
		add(pkg.DropOff)
	}
	return targets
}

// nearestTarget returns the shortest path from origin to any of the targets.
// Targets are tried in order and the first one with the lowest travel time
// wins; the origin itself is never a target. ok is false when no target can
// be reached.
func nearestTarget(n *domain.Network, origin domain.StationID, targets []domain.StationID) (best domain.Path, ok bool) {
	bestTime := math.MaxInt
	for _, t := range targets {
		if t == origin {
			continue
		}
		path, found := FastestPath(n, origin, t)
		if !found {
			continue
		}
		if cost := path.Cost(); cost < bestTime {
			bestTime = cost
			best = path
		}
	}
	return best, len(best) > 0
}

func allParked(trains []*domain.Train) bool {
	for _, t := range trains {
		if !t.Parked {
			return false
		}
	}
	return true
}
