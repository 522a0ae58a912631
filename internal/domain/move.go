package domain

// One scheduled event: a train at a station at a given time, optionally
// departing along a route.
//
// DropOffs and PickUps happen at StartStation at StartTime, drop-offs first.
// ArrivalDropOffs are unloaded at the route's destination when the train
// arrives; only post-processing fills them in. A Move without a Route is
// stationary (a trailing drop-off or a parked train).
type Move struct {
	StartTime       int
	StartStation    StationID
	Train           *Train
	Route           *Route
	PickUps         []*Package
	DropOffs        []*Package
	ArrivalDropOffs []*Package
}

func (m *Move) Stationary() bool { return m.Route == nil }

// Time at which the move is complete.
func (m *Move) ArriveAt() int {
	if m.Route == nil {
		return m.StartTime
	}
	return m.StartTime + m.Route.TravelTime
}

// Station the train is at once the move is complete.
func (m *Move) EndStation() StationID {
	if m.Route == nil {
		return m.StartStation
	}
	return m.Route.To
}
