package repositories

import (
	"encoding/json"
	"fmt"
	"mail-train-service/internal/domain"
	"os"
	"strings"
)

type ScenarioSeed struct {
	Name       string         `json:"name"`
	Stations   []string       `json:"stations"`
	Links      []LinkSeed     `json:"links"`
	Trains     []TrainSeed    `json:"trains"`
	Deliveries []DeliverySeed `json:"deliveries"`
}

type LinkSeed struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
	Time int    `json:"time"`
}

type TrainSeed struct {
	Name     string `json:"name"`
	Home     string `json:"home"`
	Capacity int    `json:"capacity"`
}

type DeliverySeed struct {
	Name    string `json:"name"`
	PickUp  string `json:"pickup"`
	DropOff string `json:"dropoff"`
	Weight  int    `json:"weight"`
}

// Read scenarios from a JSON seed file. Every scenario must build into a
// valid state.
func LoadSeedFile(jsonPath string) ([]*domain.Scenario, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var data []ScenarioSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	seen := make(map[string]bool, len(data))
	scenarios := make([]*domain.Scenario, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("load seed: scenario at index %d: name cannot be empty", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("load seed: duplicate scenario %q", name)
		}
		seen[name] = true

		sc := item.toScenario()
		sc.Name = name
		if _, err := sc.Build(); err != nil {
			return nil, fmt.Errorf("load seed: %w", err)
		}
		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}

func (s ScenarioSeed) toScenario() *domain.Scenario {
	sc := &domain.Scenario{Name: s.Name, Stations: s.Stations}
	for _, l := range s.Links {
		sc.Links = append(sc.Links, domain.LinkSpec{Name: l.Name, From: l.From, To: l.To, TravelTime: l.Time})
	}
	for _, t := range s.Trains {
		sc.Trains = append(sc.Trains, domain.TrainSpec{Name: t.Name, Home: t.Home, Capacity: t.Capacity})
	}
	for _, d := range s.Deliveries {
		sc.Deliveries = append(sc.Deliveries, domain.DeliverySpec{Name: d.Name, PickUp: d.PickUp, DropOff: d.DropOff, Weight: d.Weight})
	}
	return sc
}
