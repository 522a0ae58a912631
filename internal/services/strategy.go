package services

import (
	"context"
	"errors"
	"fmt"
	"mail-train-service/internal/domain"
	"slices"
	"strings"
)

// Strategy names one of the scheduling algorithms.
type Strategy string

const (
	// Deliver one package at a time with the best-placed train.
	SingleDeliveries Strategy = "single"
	// Like SingleDeliveries, but collect packages along the delivery leg.
	PickupsAlongRoute Strategy = "pickups"
	// Time-stepped simulation where each idle train heads for the nearest job.
	GreedyTrains Strategy = "greedy"
)

// All strategies in presentation order.
var Strategies = []Strategy{SingleDeliveries, PickupsAlongRoute, GreedyTrains}

func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Strategies, st) {
		return "", fmt.Errorf("parse strategy %q: %w", s, ErrUnknownStrategy)
	}
	return st, nil
}

// Human readable heading used by reports.
func (s Strategy) Title() string {
	switch s {
	case SingleDeliveries:
		return "Deliver one-by-one"
	case PickupsAlongRoute:
		return "Deliver with pickups"
	case GreedyTrains:
		return "Deliver with greedy trains"
	default:
		return string(s)
	}
}

// Schedule runs a strategy on state and returns its time-ordered moves.
//
// The state is consumed: trains move and the pending pool drains. Callers
// that need the initial state afterwards must pass a Clone. On a runtime
// failure the moves scheduled so far are returned together with a
// *DeliveryError.
func Schedule(ctx context.Context, strategy Strategy, state *domain.State) ([]domain.Move, error) {
	var (
		moves []domain.Move
		err   error
	)

	switch strategy {
	case SingleDeliveries:
		moves, err = scheduleAssignments(ctx, state, deliverSingle)
		moves = mergeDropOffs(moves)
	case PickupsAlongRoute:
		moves, err = scheduleAssignments(ctx, state, deliverWithPickups)
		moves = mergeDropOffs(moves)
	case GreedyTrains:
		moves, err = scheduleGreedyTrains(ctx, state)
	default:
		return nil, fmt.Errorf("schedule: %q: %w", strategy, ErrUnknownStrategy)
	}

	sortMoves(moves)

	var derr *DeliveryError
	if errors.As(err, &derr) {
		derr.Strategy = strategy
	}
	return moves, err
}
