package domain

import (
	"fmt"
	"slices"
	"strings"
)

// State is the mutable simulation state a scheduling strategy works on: the
// fleet and the pool of pending packages, over a shared read-only Network.
//
// Strategies change trains and the pending pool in place, so each run needs
// its own copy (see Clone). A State must never be handed to two strategies at
// the same time.
type State struct {
	Network *Network
	Trains  []*Train
	Pending []*Package
}

func NewState(n *Network) *State {
	return &State{Network: n}
}

// Add a train parked at the named home station.
func (s *State) AddTrain(name, home string, capacity int) (*Train, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("add train: name must be non-empty")
	}
	if slices.ContainsFunc(s.Trains, func(t *Train) bool { return t.Name == name }) {
		return nil, fmt.Errorf("add train %s: %w", name, ErrDuplicateTrain)
	}
	id, ok := s.Network.Lookup(home)
	if !ok {
		return nil, fmt.Errorf("add train %s: home %q: %w", name, home, ErrUnknownStation)
	}

	t := NewTrain(name, id, capacity)
	s.Trains = append(s.Trains, t)
	return t, nil
}

// Add a package to the pending pool.
func (s *State) AddPackage(name, pickUp, dropOff string, weight int) (*Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("add package: name must be non-empty")
	}
	if slices.ContainsFunc(s.Pending, func(p *Package) bool { return p.Name == name }) {
		return nil, fmt.Errorf("add package %s: %w", name, ErrDuplicatePackage)
	}
	from, ok := s.Network.Lookup(pickUp)
	if !ok {
		return nil, fmt.Errorf("add package %s: pickup %q: %w", name, pickUp, ErrUnknownStation)
	}
	to, ok := s.Network.Lookup(dropOff)
	if !ok {
		return nil, fmt.Errorf("add package %s: dropoff %q: %w", name, dropOff, ErrUnknownStation)
	}

	p := &Package{Name: name, PickUp: from, DropOff: to, Weight: weight}
	s.Pending = append(s.Pending, p)
	return p, nil
}

// Remove a package from the pending pool, keeping the order of the rest.
func (s *State) RemovePending(pkg *Package) {
	if i := slices.Index(s.Pending, pkg); i >= 0 {
		s.Pending = slices.Delete(s.Pending, i, i+1)
	}
}

// Smallest BusyUntil across the fleet, 0 for an empty fleet.
func (s *State) MinBusy() int {
	if len(s.Trains) == 0 {
		return 0
	}
	lowest := s.Trains[0].BusyUntil
	for _, t := range s.Trains[1:] {
		lowest = min(lowest, t.BusyUntil)
	}
	return lowest
}

// Clone deep-copies trains and packages. Package identity is preserved
// across the copy: a package aboard a train and in the pending pool of the
// original maps to a single package in the clone. The Network is shared.
func (s *State) Clone() *State {
	pkgs := make(map[*Package]*Package)
	clonePkg := func(p *Package) *Package {
		if c, ok := pkgs[p]; ok {
			return c
		}
		c := *p
		pkgs[p] = &c
		return &c
	}

	out := &State{
		Network: s.Network,
		Trains:  make([]*Train, 0, len(s.Trains)),
		Pending: make([]*Package, 0, len(s.Pending)),
	}
	for _, p := range s.Pending {
		out.Pending = append(out.Pending, clonePkg(p))
	}
	for _, t := range s.Trains {
		c := *t
		c.Packages = make([]*Package, 0, len(t.Packages))
		for _, p := range t.Packages {
			c.Packages = append(c.Packages, clonePkg(p))
		}
		out.Trains = append(out.Trains, &c)
	}
	return out
}
