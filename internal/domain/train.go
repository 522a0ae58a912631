package domain

import (
	"fmt"
	"slices"
)

// Mail train aggregate: a capacity-limited vehicle that moves between stations
// carrying packages.
// BusyUntil is the cumulative time the train has committed to travelling; a
// train is available again once the clock reaches it. Parked trains take no
// further action.
type Train struct {
	Name      string
	Capacity  int
	Home      StationID
	Current   StationID
	Packages  []*Package
	BusyUntil int
	Parked    bool
}

func NewTrain(name string, home StationID, capacity int) *Train {
	return &Train{
		Name:     name,
		Capacity: capacity,
		Home:     home,
		Current:  home,
	}
}

// Sum of the weights of the packages aboard.
func (t *Train) Load() int {
	total := 0
	for _, p := range t.Packages {
		total += p.Weight
	}
	return total
}

func (t *Train) FreeCapacity() int { return t.Capacity - t.Load() }

// Board a single package onto the train.
func (t *Train) Board(pkg *Package) error {
	if pkg.Weight > t.FreeCapacity() {
		return fmt.Errorf(
			"board train: train %s cannot take %s (weight=%d free=%d)",
			t.Name, pkg.Name, pkg.Weight, t.FreeCapacity(),
		)
	}
	t.Packages = append(t.Packages, pkg)
	return nil
}

// Unload every package destined for the given station and return them in
// boarding order.
func (t *Train) UnloadAt(s StationID) []*Package {
	var out []*Package
	t.Packages = slices.DeleteFunc(t.Packages, func(p *Package) bool {
		if p.DropOff == s {
			out = append(out, p)
			return true
		}
		return false
	})
	return out
}

// Unload all packages from the train.
func (t *Train) UnloadAll() []*Package {
	out := t.Packages
	t.Packages = nil
	return out
}
