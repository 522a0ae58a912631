package cache

import (
	"context"
	"mail-train-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*RedisPlanCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr())
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisPlanCache(rdb, zap.NewNop().Sugar()), mr
}

func TestRedisPlanCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	plan := &domain.DeliveryPlan{
		ID:          "p1",
		Scenario:    "line",
		Strategy:    "single",
		Fingerprint: "00ff",
		Complete:    true,
		Makespan:    8,
		Steps: []domain.PlanStep{
			{StartTime: 0, Station: "A", Train: "Q1", Moving: true, Route: "E1", Destination: "B", ArriveAt: 5, PickUps: []string{"K1"}},
			{StartTime: 5, Station: "B", Train: "Q1", Moving: true, Route: "E2", Destination: "C", ArriveAt: 8, ArrivalDropOffs: []string{"K1"}},
		},
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	_, ok, err := c.Get(ctx, "00ff:single")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "00ff:single", plan, time.Minute))
	assert.True(t, mr.Exists("trains:plan:00ff:single"))

	got, ok, err := c.Get(ctx, "00ff:single")
	require.NoError(t, err)
	require.True(t, ok)
	if diff := cmp.Diff(plan, got); diff != "" {
		t.Errorf("cached plan mismatch (-want +got):\n%s", diff)
	}

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, "00ff:single")
	require.NoError(t, err)
	assert.False(t, ok, "entry expired")
}

func TestRedisPlanCacheErrors(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	_, _, err := c.Get(ctx, " ")
	assert.Error(t, err)

	require.NoError(t, mr.Set("trains:plan:bad", "{not json"))
	_, ok, err := c.Get(ctx, "bad")
	assert.Error(t, err)
	assert.False(t, ok)

	mr.Close()
	err = c.Set(ctx, "k", &domain.DeliveryPlan{ID: "p"}, time.Minute)
	assert.Error(t, err)
}
