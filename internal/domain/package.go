package domain

// Represents a single delivery unit handled by the system.
// A Package waits at its PickUp station until a train loads it and leaves the
// simulation once it has been unloaded at DropOff.
type Package struct {
	Name    string
	PickUp  StationID
	DropOff StationID
	Weight  int
}

// Return the names of the given packages, in order.
func PackageNames(pkgs []*Package) []string {
	names := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		names = append(names, p.Name)
	}
	return names
}
