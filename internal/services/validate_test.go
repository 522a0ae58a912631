package services

import (
	"mail-train-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(sc *domain.Scenario)
		wantErr error
	}{
		{name: "valid"},
		{
			name:    "no trains",
			mutate:  func(sc *domain.Scenario) { sc.Trains = nil },
			wantErr: ErrNoTrains,
		},
		{
			name:    "package heavier than every train",
			mutate:  func(sc *domain.Scenario) { sc.Deliveries[0].Weight = 11 },
			wantErr: ErrInsufficientCapacity,
		},
		{
			name:    "negative weight",
			mutate:  func(sc *domain.Scenario) { sc.Deliveries[0].Weight = -1 },
			wantErr: ErrInvalidNetwork,
		},
		{
			name:    "negative capacity",
			mutate:  func(sc *domain.Scenario) { sc.Trains[0].Capacity = -1 },
			wantErr: ErrInvalidNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := lineScenario()
			if tt.mutate != nil {
				tt.mutate(&sc)
			}
			state := buildState(t, sc)

			_, err := Prepare(state)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPrepareNothingToDeliver(t *testing.T) {
	sc := lineScenario()
	sc.Trains = nil
	sc.Deliveries = []domain.DeliverySpec{{Name: "K0", PickUp: "B", DropOff: "B", Weight: 50}}
	state := buildState(t, sc)

	skipped, err := Prepare(state)
	require.NoError(t, err)
	assert.Equal(t, []string{"K0"}, skipped)
	assert.Empty(t, state.Pending)
}

func TestPrepareSkipsInPlacePackages(t *testing.T) {
	sc := consolidationScenario()
	sc.Deliveries = append(sc.Deliveries, domain.DeliverySpec{Name: "K4", PickUp: "C", DropOff: "C", Weight: 1})
	state := buildState(t, sc)

	skipped, err := Prepare(state)
	require.NoError(t, err)
	assert.Equal(t, []string{"K4"}, skipped)
	assert.Equal(t, []string{"K1", "K2", "K3"}, domain.PackageNames(state.Pending))
}
