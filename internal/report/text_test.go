package report

import (
	"bytes"
	"mail-train-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name string
		step domain.PlanStep
		want string
	}{
		{
			name: "moving with pickup",
			step: domain.PlanStep{
				StartTime: 0, Station: "A", Train: "Q1",
				Moving: true, Route: "E1", Destination: "B", ArriveAt: 5,
				PickUps: []string{"K1", "K2"},
			},
			want: "@0, n = A, q = Q1, load= { K1,K2 }, drop= {  }, moving A->B:E1 arr 5",
		},
		{
			name: "parked with drop",
			step: domain.PlanStep{
				StartTime: 8, Station: "C", Train: "Q1", ArriveAt: 8,
				DropOffs: []string{"K1"},
			},
			want: "@8, n = C, q = Q1, load= {  }, drop= { K1 }, parked",
		},
		{
			name: "arrival drop",
			step: domain.PlanStep{
				StartTime: 5, Station: "B", Train: "Q1",
				Moving: true, Route: "E2", Destination: "C", ArriveAt: 8,
				ArrivalDropOffs: []string{"K1"},
			},
			want: "@5, n = B, q = Q1, load= {  }, drop= {  }, moving B->C:E2 arr 8, drop@arr= { K1 }",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Step(tc.step))
		})
	}
}

func TestWrite(t *testing.T) {
	plan := &domain.DeliveryPlan{
		Strategy: "greedy",
		Complete: false,
		Steps: []domain.PlanStep{
			{StartTime: 0, Station: "A", Train: "Q1", ArriveAt: 0},
		},
		Undelivered: []string{"K2"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, plan))

	want := "Deliver with greedy trains (1 moves)\n" +
		"@0, n = A, q = Q1, load= {  }, drop= {  }, parked\n" +
		"undelivered= { K2 }\n"
	assert.Equal(t, want, buf.String())
}
