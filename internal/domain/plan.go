package domain

import "time"

// Represents a single event of a delivery plan, with every station, train and
// package referred to by name.
// Moving is false for stationary steps (final drop-offs, parked trains).
type PlanStep struct {
	StartTime       int
	Station         string
	Train           string
	Moving          bool
	Route           string
	Destination     string
	ArriveAt        int
	PickUps         []string
	DropOffs        []string
	ArrivalDropOffs []string
}

// Represents the solved schedule for a whole scenario.
// A DeliveryPlan is the output of a scheduling strategy; it is immutable,
// self-contained data that can be stored, cached and rendered without the
// network it was computed on. Complete is false when some packages could not
// be delivered; they are listed in Undelivered. Skipped lists packages that
// needed no transport because they were already at their destination.
type DeliveryPlan struct {
	ID          string
	Scenario    string
	Strategy    string
	Fingerprint string
	Complete    bool
	Undelivered []string
	Skipped     []string
	Makespan    int
	Steps       []PlanStep
	CreatedAt   time.Time
}

// Flatten a move list into plan steps. Makespan is the latest completion
// time of any move.
func NewPlanSteps(n *Network, moves []Move) ([]PlanStep, int) {
	steps := make([]PlanStep, 0, len(moves))
	makespan := 0
	for i := range moves {
		m := &moves[i]
		step := PlanStep{
			StartTime:       m.StartTime,
			Station:         n.StationName(m.StartStation),
			Train:           m.Train.Name,
			ArriveAt:        m.ArriveAt(),
			PickUps:         PackageNames(m.PickUps),
			DropOffs:        PackageNames(m.DropOffs),
			ArrivalDropOffs: PackageNames(m.ArrivalDropOffs),
		}
		if m.Route != nil {
			step.Moving = true
			step.Route = m.Route.Name
			step.Destination = n.StationName(m.Route.To)
		}
		makespan = max(makespan, m.ArriveAt())
		steps = append(steps, step)
	}
	return steps, makespan
}
