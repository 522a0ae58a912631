package netfile

import (
	"fmt"
	"mail-train-service/internal/domain"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

type hclNetworkFile struct {
	Stations   []hclStation  `hcl:"station,block"`
	Links      []hclLink     `hcl:"link,block"`
	Trains     []hclTrain    `hcl:"train,block"`
	Deliveries []hclDelivery `hcl:"delivery,block"`
}

type hclStation struct {
	Name string `hcl:"name,label"`
}

type hclLink struct {
	Name string `hcl:"name,label"`
	From string `hcl:"from"`
	To   string `hcl:"to"`
	Time int    `hcl:"time"`
}

type hclTrain struct {
	Name     string `hcl:"name,label"`
	Home     string `hcl:"home"`
	Capacity int    `hcl:"capacity"`
}

type hclDelivery struct {
	Name    string `hcl:"name,label"`
	PickUp  string `hcl:"pickup"`
	DropOff string `hcl:"dropoff"`
	Weight  int    `hcl:"weight"`
}

// ParseHCL decodes a network described with station, link, train and
// delivery blocks. Block order within each kind is preserved. Links from a
// station to itself are dropped, as in the text format.
func ParseHCL(src []byte, filename, name string) (*domain.Scenario, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse hcl %q: %w", filename, diags)
	}

	var nf hclNetworkFile
	if diags := gohcl.DecodeBody(f.Body, nil, &nf); diags.HasErrors() {
		return nil, fmt.Errorf("decode hcl %q: %w", filename, diags)
	}

	sc := &domain.Scenario{Name: name}
	for _, s := range nf.Stations {
		sc.Stations = append(sc.Stations, s.Name)
	}
	for _, l := range nf.Links {
		if l.From == l.To {
			continue
		}
		sc.Links = append(sc.Links, domain.LinkSpec{Name: l.Name, From: l.From, To: l.To, TravelTime: l.Time})
	}
	for _, t := range nf.Trains {
		sc.Trains = append(sc.Trains, domain.TrainSpec{Name: t.Name, Home: t.Home, Capacity: t.Capacity})
	}
	for _, d := range nf.Deliveries {
		sc.Deliveries = append(sc.Deliveries, domain.DeliverySpec{Name: d.Name, PickUp: d.PickUp, DropOff: d.DropOff, Weight: d.Weight})
	}

	return sc, nil
}
