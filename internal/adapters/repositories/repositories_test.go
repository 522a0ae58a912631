package repositories

import (
	"context"
	"mail-train-service/internal/domain"
	"mail-train-service/internal/ports"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedFile(t *testing.T) {
	scenarios, err := LoadSeedFile(filepath.Join("testdata", "scenarios.json"))
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	line := scenarios[0]
	assert.Equal(t, "line", line.Name)
	assert.Equal(t, []string{"A", "B", "C"}, line.Stations)
	assert.Equal(t, []domain.LinkSpec{
		{Name: "E1", From: "A", To: "B", TravelTime: 5},
		{Name: "E2", From: "B", To: "C", TravelTime: 3},
	}, line.Links)
	assert.Equal(t, []domain.DeliverySpec{{Name: "K1", PickUp: "A", DropOff: "C", Weight: 4}}, line.Deliveries)
}

func TestLoadSeedFileRejectsInvalidScenario(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join("testdata", "bad_station.json"))
	assert.ErrorIs(t, err, domain.ErrUnknownStation)

	_, err = LoadSeedFile(filepath.Join("testdata", "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMemoryScenarioRepository(t *testing.T) {
	ctx := context.Background()
	scenarios, err := LoadSeedFile(filepath.Join("testdata", "scenarios.json"))
	require.NoError(t, err)

	repo := NewMemoryScenarioRepository(scenarios...)

	names, err := repo.ListScenarios(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"line", "sample", "split"}, names)

	got, err := repo.LoadScenario(ctx, "sample")
	require.NoError(t, err)
	if diff := cmp.Diff(scenarios[1], got); diff != "" {
		t.Errorf("scenario mismatch (-want +got):\n%s", diff)
	}

	_, err = repo.LoadScenario(ctx, "nope")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestMemoryPlanStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPlanStore()

	plan := &domain.DeliveryPlan{ID: "p1", Scenario: "line", Strategy: "single", Complete: true, CreatedAt: time.Now()}
	require.NoError(t, store.SavePlan(ctx, plan))

	got, err := store.GetPlan(ctx, "p1")
	require.NoError(t, err)
	assert.Same(t, plan, got)

	_, err = store.GetPlan(ctx, "p2")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
