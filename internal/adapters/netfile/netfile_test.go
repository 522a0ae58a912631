package netfile

import (
	"mail-train-service/internal/domain"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextAndHCLDescribeTheSameNetwork(t *testing.T) {
	fromText, err := LoadFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	fromHCL, err := LoadFile(filepath.Join("testdata", "sample.hcl"))
	require.NoError(t, err)

	if diff := cmp.Diff(fromText, fromHCL); diff != "" {
		t.Fatalf("text and hcl scenarios differ (-text +hcl):\n%s", diff)
	}

	assert.Equal(t, "sample", fromText.Name)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, fromText.Stations)
	assert.Len(t, fromText.Links, 5, "self loop dropped")
	assert.Equal(t, domain.LinkSpec{Name: "E4", From: "B", To: "E", TravelTime: 12}, fromText.Links[3])
	assert.Equal(t, domain.DeliverySpec{Name: "K4", PickUp: "C", DropOff: "C", Weight: 1}, fromText.Deliveries[3])
	assert.Equal(t, []domain.TrainSpec{
		{Name: "Q1", Home: "B", Capacity: 6},
		{Name: "Q2", Home: "D", Capacity: 4},
	}, fromText.Trains)

	state, err := fromText.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, state.Network.StationCount())
	assert.Len(t, state.Network.Routes(), 10)
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "// nothing here\n",
			want:  "missing stations count",
		},
		{
			name:  "bad count",
			input: "two\nA\nB\n",
			want:  `line 1: invalid stations count "two"`,
		},
		{
			name:  "short section",
			input: "2\nA\nB\n3\nE1,A,B,4\n",
			want:  "routes: expected 3 rows, got 1",
		},
		{
			name:  "bad travel time",
			input: "2\nA\nB\n1\nE1,A,B,fast\n0\n0\n",
			want:  `line 5: routes row "E1,A,B,fast": invalid travel time "fast"`,
		},
		{
			name:  "wrong field count",
			input: "2\nA\nB\n0\n1\nK1,A,B\n0\n",
			want:  "expected 4 fields, got 3",
		},
		{
			name:  "trailing rows",
			input: "1\nA\n0\n0\n1\nQ1,A,5\nQ2,A,5\n",
			want:  `line 7: unexpected "Q2,A,5" after trains`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(tc.input), tc.name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseTextUnknownStationFailsOnBuild(t *testing.T) {
	sc, err := ParseText(strings.NewReader("2\nA\nB\n1\nE1,A,Z,4\n0\n1\nQ1,A,5\n"), "typo")
	require.NoError(t, err)

	_, err = sc.Build()
	assert.ErrorIs(t, err, domain.ErrUnknownStation)
}

func TestParseHCLErrors(t *testing.T) {
	_, err := ParseHCL([]byte(`station "A" {`), "broken.hcl", "broken")
	assert.ErrorContains(t, err, "parse hcl")

	_, err = ParseHCL([]byte(`
train "Q1" {
  home = "A"
}
`), "missing.hcl", "missing")
	assert.ErrorContains(t, err, "decode hcl")
}
