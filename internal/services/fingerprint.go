package services

import (
	"fmt"
	"mail-train-service/internal/domain"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes everything a schedule depends on: stations, routes in
// adjacency order, trains and pending packages in enumeration order. Two
// states with the same fingerprint produce the same schedule for a given
// strategy.
func Fingerprint(state *domain.State) string {
	d := xxhash.New()
	write := func(parts ...string) {
		for _, p := range parts {
			_, _ = d.WriteString(p)
			_, _ = d.WriteString("\x1f")
		}
		_, _ = d.WriteString("\x1e")
	}
	itoa := strconv.Itoa
	n := state.Network

	for _, s := range n.Stations() {
		write("S", s.Name)
		for _, rid := range s.Routes {
			r := n.Route(rid)
			write("R", r.Name, n.StationName(r.To), itoa(r.TravelTime))
		}
	}
	for _, t := range state.Trains {
		write("T", t.Name, n.StationName(t.Current), itoa(t.Capacity), itoa(t.BusyUntil))
	}
	for _, p := range state.Pending {
		write("P", p.Name, n.StationName(p.PickUp), n.StationName(p.DropOff), itoa(p.Weight))
	}

	return fmt.Sprintf("%016x", d.Sum64())
}
