package services

import (
	"mail-train-service/internal/domain"
)

// deliverSingle carries only the assigned package: one move per route of the
// leg, the package loaded on the first, and a stationary drop-off move at the
// destination.
func deliverSingle(state *domain.State, a assignment, leg domain.Path, clock int) ([]domain.Move, int, error) {
	if len(leg) == 0 {
		return deliverInPlace(state, a, clock)
	}

	if err := a.train.Board(a.pkg); err != nil {
		return nil, clock, err
	}
	state.RemovePending(a.pkg)

	moves := make([]domain.Move, 0, len(leg)+1)
	for i, r := range leg {
		m := domain.Move{
			StartTime:    clock,
			StartStation: r.From,
			Train:        a.train,
			Route:        r,
		}
		if i == 0 {
			m.PickUps = []*domain.Package{a.pkg}
		}
		moves = append(moves, m)
		clock += r.TravelTime
	}

	moves = append(moves, domain.Move{
		StartTime:    clock,
		StartStation: leg.Destination(),
		Train:        a.train,
		DropOffs:     a.train.UnloadAt(leg.Destination()),
	})
	return moves, clock, nil
}

// deliverInPlace handles a package whose pickup and dropoff coincide: it is
// loaded and unloaded by a single stationary move.
func deliverInPlace(state *domain.State, a assignment, clock int) ([]domain.Move, int, error) {
	if err := a.train.Board(a.pkg); err != nil {
		return nil, clock, err
	}
	state.RemovePending(a.pkg)

	return []domain.Move{{
		StartTime:    clock,
		StartStation: a.pkg.DropOff,
		Train:        a.train,
		PickUps:      []*domain.Package{a.pkg},
		DropOffs:     a.train.UnloadAt(a.pkg.DropOff),
	}}, clock, nil
}
