package report

import (
	"bufio"
	"fmt"
	"io"
	"mail-train-service/internal/domain"
	"mail-train-service/internal/services"
	"strings"
)

// Step formats one plan step as a single line:
//
//	@0, n = A, q = Q1, load= { K1 }, drop= {  }, moving A->B:E1 arr 5
//	@8, n = C, q = Q1, load= {  }, drop= { K1 }, parked
//
// Packages unloaded on arrival follow the arrival time as drop@arr= { ... }.
func Step(s domain.PlanStep) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%d, n = %s, q = %s, load= { %s }, drop= { %s }, ",
		s.StartTime, s.Station, s.Train, strings.Join(s.PickUps, ","), strings.Join(s.DropOffs, ","))

	if !s.Moving {
		b.WriteString("parked")
		return b.String()
	}

	fmt.Fprintf(&b, "moving %s->%s:%s arr %d", s.Station, s.Destination, s.Route, s.ArriveAt)
	if len(s.ArrivalDropOffs) > 0 {
		fmt.Fprintf(&b, ", drop@arr= { %s }", strings.Join(s.ArrivalDropOffs, ","))
	}
	return b.String()
}

// Write renders a plan: a heading naming the strategy and move count, one
// line per step, then the undelivered packages of an incomplete plan.
func Write(w io.Writer, plan *domain.DeliveryPlan) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s (%d moves)\n", services.Strategy(plan.Strategy).Title(), len(plan.Steps))
	for _, s := range plan.Steps {
		bw.WriteString(Step(s))
		bw.WriteByte('\n')
	}
	if !plan.Complete {
		fmt.Fprintf(bw, "undelivered= { %s }\n", strings.Join(plan.Undelivered, ","))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
