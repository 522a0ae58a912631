package services

import (
	"mail-train-service/internal/domain"
	"math"
)

// assignment pairs a train with the package it should fetch next.
type assignment struct {
	train    *domain.Train
	pkg      *domain.Package
	toPickUp domain.Path
	score    int
}

// selectAssignment picks the (train, package) pair with the lowest score:
//
//	score = train.BusyUntil + time to reach the pickup - min BusyUntil of the fleet
//
// Subtracting the fleet minimum lets a busy train that is close to a package
// win over an idle one far away.
//
// Packages are enumerated in pending order and, for each, trains in fleet
// order; only trains whose total capacity covers the package weight and that
// can reach its pickup station take part. The first pair with the lowest
// score wins ties. ok is false when no pair is feasible.
func selectAssignment(state *domain.State) (best assignment, ok bool) {
	minBusy := state.MinBusy()
	best.score = math.MaxInt

	for _, pkg := range state.Pending {
		for _, train := range state.Trains {
			if train.Capacity < pkg.Weight {
				continue
			}

			// The train may sit on a different sub-network.
			path, found := FastestPath(state.Network, train.Current, pkg.PickUp)
			if !found {
				continue
			}

			score := train.BusyUntil + path.Cost() - minBusy
			if score < best.score {
				best = assignment{train: train, pkg: pkg, toPickUp: path, score: score}
				ok = true
			}
		}
	}

	return best, ok
}
