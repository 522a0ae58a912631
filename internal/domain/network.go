package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Index of a Station inside the Network that owns it.
type StationID int

// Index of a Route inside the Network that owns it.
type RouteID int

// A stop in the rail network.
// Routes holds the outgoing routes in the order they were connected. Path
// finding walks them in that order, which makes tie-breaks reproducible.
type Station struct {
	ID     StationID
	Name   string
	Routes []RouteID
}

// Directed weighted edge between two stations.
// An undirected rail link is stored as two Routes with the same name and
// travel time, one per direction.
type Route struct {
	ID         RouteID
	Name       string
	From       StationID
	To         StationID
	TravelTime int
}

var (
	ErrUnknownStation   = errors.New("unknown station")
	ErrDuplicateStation = errors.New("duplicate station")
	ErrDuplicateTrain   = errors.New("duplicate train")
	ErrDuplicatePackage = errors.New("duplicate package")
)

// Network is an arena of stations and routes. Routes refer to stations by
// index so the graph has no owning cycles. It is only mutated while being
// built; strategies treat it as read-only and share it between state copies.
type Network struct {
	stations []Station
	routes   []Route
	byName   map[string]StationID
}

func NewNetwork() *Network {
	return &Network{byName: make(map[string]StationID)}
}

// Add a station and return its index.
func (n *Network) AddStation(name string) (StationID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errors.New("add station: name must be non-empty")
	}
	if _, ok := n.byName[name]; ok {
		return 0, fmt.Errorf("add station %q: %w", name, ErrDuplicateStation)
	}

	id := StationID(len(n.stations))
	n.stations = append(n.stations, Station{ID: id, Name: name})
	n.byName[name] = id
	return id, nil
}

// Connect adds an undirected link between a and b as a pair of opposite
// routes. The forward route always gets an even RouteID and the reverse route
// the following odd one.
func (n *Network) Connect(name string, a, b StationID, travelTime int) error {
	if !n.valid(a) || !n.valid(b) {
		return fmt.Errorf("connect %q: %w", name, ErrUnknownStation)
	}
	if a == b {
		return fmt.Errorf("connect %q: link starts and ends at %q", name, n.stations[a].Name)
	}
	if travelTime < 0 {
		return fmt.Errorf("connect %q: negative travel time %d", name, travelTime)
	}

	n.addRoute(name, a, b, travelTime)
	n.addRoute(name, b, a, travelTime)
	return nil
}

func (n *Network) addRoute(name string, from, to StationID, travelTime int) {
	id := RouteID(len(n.routes))
	n.routes = append(n.routes, Route{ID: id, Name: name, From: from, To: to, TravelTime: travelTime})
	n.stations[from].Routes = append(n.stations[from].Routes, id)
}

func (n *Network) valid(id StationID) bool {
	return id >= 0 && int(id) < len(n.stations)
}

// Lookup finds a station index by name.
func (n *Network) Lookup(name string) (StationID, bool) {
	id, ok := n.byName[strings.TrimSpace(name)]
	return id, ok
}

func (n *Network) Station(id StationID) *Station { return &n.stations[id] }

func (n *Network) Route(id RouteID) *Route { return &n.routes[id] }

func (n *Network) StationName(id StationID) string { return n.stations[id].Name }

func (n *Network) StationCount() int { return len(n.stations) }

func (n *Network) Stations() []Station { return n.stations }

func (n *Network) Routes() []Route { return n.routes }

// Links returns one route per undirected link (the forward direction).
func (n *Network) Links() []Route {
	links := make([]Route, 0, len(n.routes)/2)
	for i := 0; i < len(n.routes); i += 2 {
		links = append(links, n.routes[i])
	}
	return links
}
