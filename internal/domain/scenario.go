package domain

import "fmt"

// Plain description of a rail network, its fleet and the deliveries to make.
// Loaders and repositories exchange Scenarios; Build turns one into a fresh
// simulation State.
type Scenario struct {
	Name       string
	Stations   []string
	Links      []LinkSpec
	Trains     []TrainSpec
	Deliveries []DeliverySpec
}

type LinkSpec struct {
	Name       string
	From       string
	To         string
	TravelTime int
}

type TrainSpec struct {
	Name     string
	Home     string
	Capacity int
}

type DeliverySpec struct {
	Name    string
	PickUp  string
	DropOff string
	Weight  int
}

// Build constructs the network and the initial simulation state.
// Stations, links, trains and deliveries keep the order of the description.
func (sc Scenario) Build() (*State, error) {
	n := NewNetwork()
	for _, name := range sc.Stations {
		if _, err := n.AddStation(name); err != nil {
			return nil, fmt.Errorf("build scenario %q: %w", sc.Name, err)
		}
	}

	for _, l := range sc.Links {
		from, ok := n.Lookup(l.From)
		if !ok {
			return nil, fmt.Errorf("build scenario %q: link %s from %q: %w", sc.Name, l.Name, l.From, ErrUnknownStation)
		}
		to, ok := n.Lookup(l.To)
		if !ok {
			return nil, fmt.Errorf("build scenario %q: link %s to %q: %w", sc.Name, l.Name, l.To, ErrUnknownStation)
		}
		if err := n.Connect(l.Name, from, to, l.TravelTime); err != nil {
			return nil, fmt.Errorf("build scenario %q: %w", sc.Name, err)
		}
	}

	s := NewState(n)
	for _, t := range sc.Trains {
		if _, err := s.AddTrain(t.Name, t.Home, t.Capacity); err != nil {
			return nil, fmt.Errorf("build scenario %q: %w", sc.Name, err)
		}
	}
	for _, d := range sc.Deliveries {
		if _, err := s.AddPackage(d.Name, d.PickUp, d.DropOff, d.Weight); err != nil {
			return nil, fmt.Errorf("build scenario %q: %w", sc.Name, err)
		}
	}

	return s, nil
}
