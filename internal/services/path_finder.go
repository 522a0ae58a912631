package services

import (
	"container/heap"
	"mail-train-service/internal/domain"
	"math"
	"slices"
)

// FastestPath finds a minimum travel time path between two stations using
// Dijkstra's algorithm. It returns an empty path when from == to and
// ok == false when to cannot be reached (e.g. it sits on a disconnected
// sub-network). Travel times must be non-negative.
//
// Ties are broken deterministically: among stations with equal tentative
// time the one with the lower index is settled first, and a station keeps the
// first route (in adjacency order) that reached its best time.
func FastestPath(n *domain.Network, from, to domain.StationID) (_ domain.Path, ok bool) {
	if from == to {
		return domain.Path{}, true
	}

	count := n.StationCount()
	times := make([]int, count)
	via := make([]*domain.Route, count)
	settled := make([]bool, count)
	for i := range times {
		times[i] = math.MaxInt
	}
	times[from] = 0

	pq := &stationQueue{{station: from, time: 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(queuedStation)
		if settled[cur.station] || cur.time > times[cur.station] {
			continue
		}
		settled[cur.station] = true

		if cur.station == to {
			break
		}

		for _, rid := range n.Station(cur.station).Routes {
			r := n.Route(rid)
			if settled[r.To] {
				continue
			}
			t := cur.time + r.TravelTime
			if t < times[r.To] {
				times[r.To] = t
				via[r.To] = r
				heap.Push(pq, queuedStation{station: r.To, time: t})
			}
		}
	}

	if !settled[to] {
		return nil, false
	}

	// Walk predecessor routes back from the destination.
	var path domain.Path
	for s := to; s != from; s = via[s].From {
		path = append(path, via[s])
	}
	slices.Reverse(path)
	return path, true
}

type queuedStation struct {
	station domain.StationID
	time    int
}

// stationQueue is a min-heap on (time, station index).
type stationQueue []queuedStation

func (q stationQueue) Len() int { return len(q) }

func (q stationQueue) Less(i, j int) bool {
	if q[i].time != q[j].time {
		return q[i].time < q[j].time
	}
	return q[i].station < q[j].station
}

func (q stationQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *stationQueue) Push(x any) { *q = append(*q, x.(queuedStation)) }

func (q *stationQueue) Pop() any {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]
	return item
}
