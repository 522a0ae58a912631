package services

import (
	"context"
	"fmt"
	"mail-train-service/internal/domain"
)

// legPolicy executes the pickup-to-dropoff leg of an assignment starting at
// clock. It returns the leg's moves (the last one stationary, at the leg's
// destination) and the time the train becomes free again.
type legPolicy func(state *domain.State, a assignment, leg domain.Path, clock int) ([]domain.Move, int, error)

// scheduleAssignments repeatedly picks the best (train, package) pair, sends
// the train to the pickup station and lets policy drive the delivery leg,
// until no package is pending.
//
// A package whose destination cannot be reached from its pickup station, or
// a pool where no train can reach any package, ends the run with a
// *DeliveryError. Moves of completed assignments are kept.
func scheduleAssignments(ctx context.Context, state *domain.State, policy legPolicy) ([]domain.Move, error) {
	moves := []domain.Move{}

	for len(state.Pending) > 0 {
		if err := ctx.Err(); err != nil {
			return moves, err
		}

		a, ok := selectAssignment(state)
		if !ok {
			return moves, &DeliveryError{
				Packages: domain.PackageNames(state.Pending),
				Err:      ErrUnreachablePackage,
			}
		}

		leg, ok := FastestPath(state.Network, a.pkg.PickUp, a.pkg.DropOff)
		if !ok {
			return moves, &DeliveryError{
				Packages: []string{a.pkg.Name},
				Err:      ErrUnreachablePackage,
			}
		}

		clock := a.train.BusyUntil
		for _, r := range a.toPickUp {
			moves = append(moves, domain.Move{
				StartTime:    clock,
				StartStation: r.From,
				Train:        a.train,
				Route:        r,
			})
			clock += r.TravelTime
		}

		legMoves, end, err := policy(state, a, leg, clock)
		if err != nil {
			return moves, fmt.Errorf("schedule assignments: train %s package %s: %w", a.train.Name, a.pkg.Name, err)
		}
		moves = append(moves, legMoves...)

		last := legMoves[len(legMoves)-1]
		a.train.BusyUntil = end
		a.train.Current = last.StartStation
	}

	return moves, nil
}
