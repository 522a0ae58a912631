package domain

// Path is an ordered list of routes where each route starts where the
// previous one ended. An empty Path means origin and destination coincide.
type Path []*Route

// Total travel time along the path.
func (p Path) Cost() int {
	total := 0
	for _, r := range p {
		total += r.TravelTime
	}
	return total
}

// Destination returns the station the path ends at, or NoStation for an
// empty path.
func (p Path) Destination() StationID {
	if len(p) == 0 {
		return NoStation
	}
	return p[len(p)-1].To
}

// Visits reports whether any route of the path arrives at s.
func (p Path) Visits(s StationID) bool {
	for _, r := range p {
		if r.To == s {
			return true
		}
	}
	return false
}

// NoStation marks an absent station reference.
const NoStation StationID = -1
