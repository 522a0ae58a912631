package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeConnectivity(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		report := AnalyzeConnectivity(buildState(t, consolidationScenario()))
		assert.Equal(t, [][]string{{"A", "B", "C"}}, report.Components)
		assert.Empty(t, report.Isolated)
		assert.Empty(t, report.Stranded)
	})

	t.Run("split", func(t *testing.T) {
		report := AnalyzeConnectivity(buildState(t, splitScenario()))
		assert.Equal(t, [][]string{{"A", "B"}, {"C", "D"}}, report.Components)
		assert.Empty(t, report.Isolated)
		assert.Equal(t, []string{"K2"}, report.Stranded)
	})

	t.Run("isolated station", func(t *testing.T) {
		report := AnalyzeConnectivity(buildState(t, islandScenario()))
		assert.Equal(t, [][]string{{"A", "B"}, {"D"}}, report.Components)
		assert.Equal(t, []string{"D"}, report.Isolated)
		assert.Equal(t, []string{"K1"}, report.Stranded)
	})

	t.Run("no train large enough", func(t *testing.T) {
		sc := busyIdleScenario(8)
		sc.Trains[0].Capacity = 2
		sc.Trains[1].Capacity = 2
		sc.Deliveries[0].Weight = 3

		report := AnalyzeConnectivity(buildState(t, sc))
		assert.Len(t, report.Components, 1)
		assert.Equal(t, []string{"K1"}, report.Stranded)
	})
}

func TestFingerprint(t *testing.T) {
	a := buildState(t, consolidationScenario())
	b := buildState(t, consolidationScenario())

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.Equal(t, Fingerprint(a), Fingerprint(a.Clone()))
	assert.Len(t, Fingerprint(a), 16)

	heavier := consolidationScenario()
	heavier.Deliveries[1].Weight++
	assert.NotEqual(t, Fingerprint(a), Fingerprint(buildState(t, heavier)))

	slower := consolidationScenario()
	slower.Links[0].TravelTime++
	assert.NotEqual(t, Fingerprint(a), Fingerprint(buildState(t, slower)))

	busy := a.Clone()
	busy.Trains[0].BusyUntil = 3
	assert.NotEqual(t, Fingerprint(a), Fingerprint(busy))
}
