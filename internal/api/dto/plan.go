package dto

import "time"

type PlanRequest struct {
	Scenario string `json:"scenario"`
	Strategy string `json:"strategy"`
}

type CompareRequest struct {
	Scenario string `json:"scenario"`
}

type PlanStepResponse struct {
	StartTime       int      `json:"start_time"`
	Station         string   `json:"station"`
	Train           string   `json:"train"`
	Moving          bool     `json:"moving"`
	Route           string   `json:"route,omitempty"`
	Destination     string   `json:"destination,omitempty"`
	ArriveAt        int      `json:"arrive_at"`
	PickUps         []string `json:"pickups"`
	DropOffs        []string `json:"dropoffs"`
	ArrivalDropOffs []string `json:"arrival_dropoffs"`
}

type PlanResponse struct {
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Strategy    string             `json:"strategy"`
	Complete    bool               `json:"complete"`
	Undelivered []string           `json:"undelivered"`
	Skipped     []string           `json:"skipped"`
	Makespan    int                `json:"makespan"`
	Moves       int                `json:"moves"`
	Steps       []PlanStepResponse `json:"steps"`
	CreatedAt   time.Time          `json:"created_at"`
}

type ComparePlanResponse struct {
	Plans []PlanResponse `json:"plans"`
}
