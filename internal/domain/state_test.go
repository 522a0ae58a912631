package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScenario() Scenario {
	return Scenario{
		Name:     "sample",
		Stations: []string{"A", "B", "C"},
		Links: []LinkSpec{
			{Name: "E1", From: "A", To: "B", TravelTime: 30},
			{Name: "E2", From: "B", To: "C", TravelTime: 10},
		},
		Trains:     []TrainSpec{{Name: "Q1", Home: "B", Capacity: 6}},
		Deliveries: []DeliverySpec{{Name: "K1", PickUp: "A", DropOff: "C", Weight: 5}},
	}
}

func TestScenarioBuild(t *testing.T) {
	s, err := sampleScenario().Build()
	require.NoError(t, err)

	n := s.Network
	require.Equal(t, 3, n.StationCount())
	require.Len(t, n.Routes(), 4)
	require.Len(t, n.Links(), 2)

	b, ok := n.Lookup("B")
	require.True(t, ok)
	// B was connected to A first, then to C.
	routes := n.Station(b).Routes
	require.Len(t, routes, 2)
	assert.Equal(t, "A", n.StationName(n.Route(routes[0]).To))
	assert.Equal(t, "C", n.StationName(n.Route(routes[1]).To))

	fwd, rev := n.Route(0), n.Route(1)
	assert.Equal(t, fwd.Name, rev.Name)
	assert.Equal(t, fwd.TravelTime, rev.TravelTime)
	assert.Equal(t, fwd.From, rev.To)
	assert.Equal(t, fwd.To, rev.From)

	require.Len(t, s.Trains, 1)
	assert.Equal(t, b, s.Trains[0].Current)
	require.Len(t, s.Pending, 1)
	assert.Equal(t, 5, s.Pending[0].Weight)
}

func TestScenarioBuildRejectsUnknownStation(t *testing.T) {
	sc := sampleScenario()
	sc.Trains = append(sc.Trains, TrainSpec{Name: "Q2", Home: "Z", Capacity: 1})

	_, err := sc.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStation))
}

func TestScenarioBuildRejectsDuplicateNames(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(sc *Scenario)
		want   error
	}{
		{
			name: "train",
			mutate: func(sc *Scenario) {
				sc.Trains = append(sc.Trains, TrainSpec{Name: "Q1", Home: "A", Capacity: 3})
			},
			want: ErrDuplicateTrain,
		},
		{
			name: "train name padded",
			mutate: func(sc *Scenario) {
				sc.Trains = append(sc.Trains, TrainSpec{Name: " Q1 ", Home: "A", Capacity: 3})
			},
			want: ErrDuplicateTrain,
		},
		{
			name: "package",
			mutate: func(sc *Scenario) {
				sc.Deliveries = append(sc.Deliveries, DeliverySpec{Name: "K1", PickUp: "B", DropOff: "A", Weight: 1})
			},
			want: ErrDuplicatePackage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := sampleScenario()
			tt.mutate(&sc)

			_, err := sc.Build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStateAddAllowsSharedNameAcrossKinds(t *testing.T) {
	s, err := sampleScenario().Build()
	require.NoError(t, err)

	// Trains and packages have separate namespaces.
	_, err = s.AddPackage("Q1", "A", "B", 1)
	require.NoError(t, err)
	_, err = s.AddTrain("K1", "C", 2)
	require.NoError(t, err)
}

func TestNetworkConnectValidation(t *testing.T) {
	n := NewNetwork()
	a, err := n.AddStation("A")
	require.NoError(t, err)
	_, err = n.AddStation("A")
	assert.ErrorIs(t, err, ErrDuplicateStation)

	assert.Error(t, n.Connect("loop", a, a, 1))
	assert.ErrorIs(t, n.Connect("dangling", a, 7, 1), ErrUnknownStation)

	b, err := n.AddStation("B")
	require.NoError(t, err)
	assert.Error(t, n.Connect("neg", a, b, -1))
	assert.NoError(t, n.Connect("ok", a, b, 0))
}

func TestStateCloneIsIndependent(t *testing.T) {
	s, err := sampleScenario().Build()
	require.NoError(t, err)

	carried := &Package{Name: "K9", PickUp: 0, DropOff: 2, Weight: 1}
	s.Pending = append(s.Pending, carried)
	require.NoError(t, s.Trains[0].Board(carried))

	c := s.Clone()
	require.Same(t, s.Network, c.Network)
	require.NotSame(t, s.Trains[0], c.Trains[0])
	require.NotSame(t, s.Pending[0], c.Pending[0])
	// The carried package keeps one identity inside the clone.
	require.Same(t, c.Pending[1], c.Trains[0].Packages[0])

	c.Trains[0].BusyUntil = 42
	c.Trains[0].UnloadAll()
	c.RemovePending(c.Pending[0])

	assert.Equal(t, 0, s.Trains[0].BusyUntil)
	assert.Len(t, s.Trains[0].Packages, 1)
	assert.Len(t, s.Pending, 2)
	assert.Len(t, c.Pending, 1)
	assert.Equal(t, "K9", c.Pending[0].Name)
}

func TestStateMinBusy(t *testing.T) {
	s := NewState(NewNetwork())
	assert.Equal(t, 0, s.MinBusy())

	s.Trains = []*Train{{BusyUntil: 10}, {BusyUntil: 4}, {BusyUntil: 7}}
	assert.Equal(t, 4, s.MinBusy())
}
