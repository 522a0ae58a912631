package services

import (
	"mail-train-service/internal/domain"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ConnectivityReport describes how the rail network splits into
// sub-networks and which packages no train can ever deliver because of it.
type ConnectivityReport struct {
	// Station names per connected component, components ordered by their
	// lowest station index and stations in index order.
	Components [][]string
	// Stations without any link.
	Isolated []string
	// Packages whose pickup and dropoff lie on different sub-networks, or
	// whose pickup sub-network has no train large enough.
	Stranded []string
}

// AnalyzeConnectivity computes the connected components of the network.
// It is advisory: strategies still report unreachable packages themselves.
func AnalyzeConnectivity(state *domain.State) ConnectivityReport {
	n := state.Network

	g := simple.NewUndirectedGraph()
	for _, s := range n.Stations() {
		g.AddNode(simple.Node(s.ID))
	}
	for _, l := range n.Links() {
		g.SetEdge(g.NewEdge(simple.Node(l.From), simple.Node(l.To)))
	}

	var components [][]domain.StationID
	for _, cc := range topo.ConnectedComponents(g) {
		ids := make([]domain.StationID, 0, len(cc))
		for _, node := range cc {
			ids = append(ids, domain.StationID(node.ID()))
		}
		slices.Sort(ids)
		components = append(components, ids)
	}
	slices.SortFunc(components, func(a, b []domain.StationID) int {
		return int(a[0] - b[0])
	})

	componentOf := make([]int, n.StationCount())
	report := ConnectivityReport{}
	for ci, ids := range components {
		names := make([]string, 0, len(ids))
		for _, id := range ids {
			componentOf[id] = ci
			names = append(names, n.StationName(id))
		}
		report.Components = append(report.Components, names)
		if len(ids) == 1 {
			report.Isolated = append(report.Isolated, names[0])
		}
	}

	largest := make(map[int]int)
	for _, t := range state.Trains {
		ci := componentOf[t.Current]
		if c, ok := largest[ci]; !ok || t.Capacity > c {
			largest[ci] = t.Capacity
		}
	}

	for _, p := range state.Pending {
		ci := componentOf[p.PickUp]
		capacity, hasTrain := largest[ci]
		if ci != componentOf[p.DropOff] || !hasTrain || capacity < p.Weight {
			report.Stranded = append(report.Stranded, p.Name)
		}
	}

	return report
}
