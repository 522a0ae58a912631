package services

import (
	"mail-train-service/internal/domain"
)

// deliverWithPickups follows the delivery leg like deliverSingle but
// consolidates: at every station on the way the train first drops the
// packages destined there, then keeps loading pending packages that wait at
// the station, fit the free capacity and are headed for a station still
// ahead on this leg. The route is never re-planned. Everything still aboard
// is dropped at the end of the leg.
func deliverWithPickups(state *domain.State, a assignment, leg domain.Path, clock int) ([]domain.Move, int, error) {
	if len(leg) == 0 {
		return deliverInPlace(state, a, clock)
	}

	train := a.train
	moves := make([]domain.Move, 0, len(leg)+1)
	for i, r := range leg {
		m := domain.Move{
			StartTime:    clock,
			StartStation: r.From,
			Train:        train,
			Route:        r,
			DropOffs:     train.UnloadAt(r.From),
		}

		if i == 0 {
			if err := train.Board(a.pkg); err != nil {
				return nil, clock, err
			}
			state.RemovePending(a.pkg)
			m.PickUps = append(m.PickUps, a.pkg)
		}

		ahead := leg[i:]
		for pkg := nextPickupAlong(state, train, r.From, ahead); pkg != nil; pkg = nextPickupAlong(state, train, r.From, ahead) {
			if err := train.Board(pkg); err != nil {
				return nil, clock, err
			}
			state.RemovePending(pkg)
			m.PickUps = append(m.PickUps, pkg)
		}

		moves = append(moves, m)
		clock += r.TravelTime
	}

	moves = append(moves, domain.Move{
		StartTime:    clock,
		StartStation: leg.Destination(),
		Train:        train,
		DropOffs:     train.UnloadAll(),
	})
	return moves, clock, nil
}

// nextPickupAlong returns the first pending package waiting at station that
// fits the train and whose destination is one of the stations the remaining
// path arrives at.
func nextPickupAlong(state *domain.State, train *domain.Train, station domain.StationID, ahead domain.Path) *domain.Package {
	free := train.FreeCapacity()
	for _, pkg := range state.Pending {
		if pkg.PickUp == station && pkg.Weight <= free && ahead.Visits(pkg.DropOff) {
			return pkg
		}
	}
	return nil
}
