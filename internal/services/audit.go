package services

import (
	"errors"
	"fmt"
	"mail-train-service/internal/domain"
	"slices"
)

var ErrScheduleViolation = errors.New("schedule violation")

type auditEvent struct {
	time    int
	move    int
	kind    int
	train   string
	station domain.StationID
	pkg     *domain.Package
	pickup  bool
}

// Event kinds in the order they happen within one move. A zero-time route
// can unload on arrival a package loaded at departure, so arrival drop-offs
// come last.
const (
	kindDrop = iota
	kindPickUp
	kindPassThrough
	kindArrivalDrop
)

// Audit replays a schedule against the initial state it was computed from
// and reports every broken invariant, each wrapping ErrScheduleViolation:
//
//   - moves are sorted by start time;
//   - a train's first move starts at its home and later moves start where
//     the previous one ended, no earlier than it ended;
//   - packages are loaded at their pickup and unloaded at their dropoff
//     station by the train carrying them, never beyond its capacity;
//   - every package that needs transport is loaded and unloaded exactly once.
//
// Partial schedules fail the last check.
func Audit(initial *domain.State, moves []domain.Move) error {
	var errs []error
	violation := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrScheduleViolation, fmt.Sprintf(format, args...)))
	}
	name := initial.Network.StationName

	trains := make(map[string]*domain.Train, len(initial.Trains))
	for _, t := range initial.Trains {
		trains[t.Name] = t
	}

	last := make(map[string]*domain.Move)
	var events []auditEvent
	for i := range moves {
		m := &moves[i]
		if i > 0 && m.StartTime < moves[i-1].StartTime {
			violation("move %d starts at %d before move %d at %d", i, m.StartTime, i-1, moves[i-1].StartTime)
		}

		t, ok := trains[m.Train.Name]
		if !ok {
			violation("move %d uses unknown train %s", i, m.Train.Name)
			continue
		}
		if prev, ok := last[t.Name]; ok {
			if m.StartStation != prev.EndStation() {
				violation("train %s starts at %s but was at %s", t.Name, name(m.StartStation), name(prev.EndStation()))
			}
			if m.StartTime < prev.ArriveAt() {
				violation("train %s leaves at %d before arriving at %d", t.Name, m.StartTime, prev.ArriveAt())
			}
		} else if m.StartStation != t.Home {
			violation("train %s starts at %s instead of home %s", t.Name, name(m.StartStation), name(t.Home))
		}
		if m.Route != nil && m.Route.From != m.StartStation {
			violation("train %s takes route %s from %s while at %s", t.Name, m.Route.Name, name(m.Route.From), name(m.StartStation))
		}
		last[t.Name] = m

		for _, p := range m.DropOffs {
			kind := kindDrop
			if slices.Contains(m.PickUps, p) {
				kind = kindPassThrough
			}
			events = append(events, auditEvent{time: m.StartTime, move: i, kind: kind, train: t.Name, station: m.StartStation, pkg: p})
		}
		for _, p := range m.PickUps {
			events = append(events, auditEvent{time: m.StartTime, move: i, kind: kindPickUp, train: t.Name, station: m.StartStation, pkg: p, pickup: true})
		}
		for _, p := range m.ArrivalDropOffs {
			if m.Route == nil {
				violation("stationary move of %s has arrival drop-offs", t.Name)
				continue
			}
			events = append(events, auditEvent{time: m.ArriveAt(), move: i, kind: kindArrivalDrop, train: t.Name, station: m.Route.To, pkg: p})
		}
	}

	// Replay in time order; at the same instant a train's moves follow
	// schedule order.
	slices.SortStableFunc(events, func(a, b auditEvent) int {
		if a.time != b.time {
			return a.time - b.time
		}
		if a.move != b.move {
			return a.move - b.move
		}
		return a.kind - b.kind
	})

	// Packages that need no transport may legitimately be absent.
	expected := make(map[string]bool)
	optional := make(map[string]bool)
	for _, p := range initial.Pending {
		expected[p.Name] = true
		optional[p.Name] = p.PickUp == p.DropOff
	}

	loads := make(map[string]int)
	aboard := make(map[string]string)
	picked := make(map[string]int)
	dropped := make(map[string]int)
	for _, e := range events {
		p := e.pkg
		if !expected[p.Name] {
			violation("package %s is not part of the scenario", p.Name)
			continue
		}

		if e.pickup {
			picked[p.Name]++
			if e.station != p.PickUp {
				violation("package %s loaded at %s instead of %s", p.Name, name(e.station), name(p.PickUp))
			}
			if holder, ok := aboard[p.Name]; ok {
				violation("package %s loaded by %s while aboard %s", p.Name, e.train, holder)
			}
			aboard[p.Name] = e.train
			loads[e.train] += p.Weight
			if capacity := trains[e.train].Capacity; loads[e.train] > capacity {
				violation("train %s carries %d over capacity %d at %d", e.train, loads[e.train], capacity, e.time)
			}
			continue
		}

		dropped[p.Name]++
		if holder, ok := aboard[p.Name]; !ok || holder != e.train {
			violation("package %s unloaded by %s without being aboard", p.Name, e.train)
			continue
		}
		if e.station != p.DropOff {
			violation("package %s unloaded at %s instead of %s", p.Name, name(e.station), name(p.DropOff))
		}
		delete(aboard, p.Name)
		loads[e.train] -= p.Weight
	}

	names := make([]string, 0, len(expected))
	for n := range expected {
		names = append(names, n)
	}
	slices.Sort(names)
	for _, n := range names {
		if optional[n] && picked[n] == 0 && dropped[n] == 0 {
			continue
		}
		if picked[n] != 1 || dropped[n] != 1 {
			violation("package %s loaded %d and unloaded %d times", n, picked[n], dropped[n])
		}
	}

	return errors.Join(errs...)
}
