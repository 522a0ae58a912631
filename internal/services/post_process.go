package services

import (
	"mail-train-service/internal/domain"
	"slices"
)

// mergeDropOffs removes redundant stationary drop-off moves.
//
// A stationary move that only drops packages is first merged with the
// movement move of the same train that departs from the same station at the
// same time: the stationary move takes over that move's pickups and route and
// the departing move is discarded. A drop-off move with no such departure
// (typically the last delivery of a train) is folded into the movement move
// that brought the train there, as arrival drop-offs.
func mergeDropOffs(moves []domain.Move) []domain.Move {
	removed := make([]bool, len(moves))

	for i := range moves {
		d := &moves[i]
		if !isDropOnly(d) {
			continue
		}

		if j := findDeparture(moves, removed, d); j >= 0 {
			d.PickUps = append(d.PickUps, moves[j].PickUps...)
			d.DropOffs = append(d.DropOffs, moves[j].DropOffs...)
			d.Route = moves[j].Route
			removed[j] = true
			continue
		}

		if j := findArrival(moves, removed, d); j >= 0 {
			moves[j].ArrivalDropOffs = append(moves[j].ArrivalDropOffs, d.DropOffs...)
			removed[i] = true
		}
	}

	out := make([]domain.Move, 0, len(moves))
	for i, m := range moves {
		if !removed[i] {
			out = append(out, m)
		}
	}
	return out
}

func isDropOnly(m *domain.Move) bool {
	return m.Stationary() && len(m.DropOffs) > 0 && len(m.PickUps) == 0
}

// findDeparture returns the index of the first movement move of d's train
// leaving d's station at d's time, or -1.
func findDeparture(moves []domain.Move, removed []bool, d *domain.Move) int {
	for j := range moves {
		m := &moves[j]
		if removed[j] || m.Stationary() {
			continue
		}
		if m.Train == d.Train && m.StartTime == d.StartTime && m.StartStation == d.StartStation {
			return j
		}
	}
	return -1
}

// findArrival returns the index of the last movement move of d's train that
// arrives at d's station exactly at d's time, or -1.
func findArrival(moves []domain.Move, removed []bool, d *domain.Move) int {
	for j := len(moves) - 1; j >= 0; j-- {
		m := &moves[j]
		if removed[j] || m.Stationary() {
			continue
		}
		if m.Train == d.Train && m.ArriveAt() == d.StartTime && m.Route.To == d.StartStation {
			return j
		}
	}
	return -1
}

// sortMoves orders moves by start time, keeping scheduling order for moves
// that start together.
func sortMoves(moves []domain.Move) {
	slices.SortStableFunc(moves, func(a, b domain.Move) int {
		return a.StartTime - b.StartTime
	})
}
