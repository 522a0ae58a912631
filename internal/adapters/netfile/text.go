package netfile

import (
	"bufio"
	"fmt"
	"io"
	"mail-train-service/internal/domain"
	"strconv"
	"strings"
)

type textLine struct {
	num  int
	text string
}

// ParseText reads the line-oriented network format:
//
//	<station count>
//	<name>                          per station
//	<route count>
//	<name>,<stationA>,<stationB>,<time>
//	<delivery count>
//	<name>,<pickup>,<dropoff>,<weight>
//	<train count>
//	<name>,<home>,<capacity>
//
// Blank lines and lines starting with "//" are ignored, trailing "//"
// comments are stripped. Routes are undirected; routes from a station to
// itself are dropped. Station references are checked when the scenario is
// built.
func ParseText(r io.Reader, name string) (*domain.Scenario, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("parse text %q: %w", name, err)
	}

	p := &textParser{lines: lines}
	sc := &domain.Scenario{Name: name}

	err = p.section("stations", 1, func(f []string) error {
		sc.Stations = append(sc.Stations, f[0])
		return nil
	})
	if err == nil {
		err = p.section("routes", 4, func(f []string) error {
			t, err := parseInt("travel time", f[3])
			if err != nil {
				return err
			}
			if f[1] == f[2] {
				return nil
			}
			sc.Links = append(sc.Links, domain.LinkSpec{Name: f[0], From: f[1], To: f[2], TravelTime: t})
			return nil
		})
	}
	if err == nil {
		err = p.section("deliveries", 4, func(f []string) error {
			w, err := parseInt("weight", f[3])
			if err != nil {
				return err
			}
			sc.Deliveries = append(sc.Deliveries, domain.DeliverySpec{Name: f[0], PickUp: f[1], DropOff: f[2], Weight: w})
			return nil
		})
	}
	if err == nil {
		err = p.section("trains", 3, func(f []string) error {
			c, err := parseInt("capacity", f[2])
			if err != nil {
				return err
			}
			sc.Trains = append(sc.Trains, domain.TrainSpec{Name: f[0], Home: f[1], Capacity: c})
			return nil
		})
	}
	if err != nil {
		return nil, fmt.Errorf("parse text %q: %w", name, err)
	}
	if p.pos < len(p.lines) {
		l := p.lines[p.pos]
		return nil, fmt.Errorf("parse text %q: line %d: unexpected %q after trains", name, l.num, l.text)
	}

	return sc, nil
}

func readLines(r io.Reader) ([]textLine, error) {
	var lines []textLine
	sc := bufio.NewScanner(r)
	for num := 1; sc.Scan(); num++ {
		text := sc.Text()
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		lines = append(lines, textLine{num: num, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

type textParser struct {
	lines []textLine
	pos   int
}

// section reads a count line followed by that many rows of exactly fields
// comma separated values.
func (p *textParser) section(what string, fields int, row func([]string) error) error {
	if p.pos >= len(p.lines) {
		return fmt.Errorf("missing %s count", what)
	}
	head := p.lines[p.pos]
	count, err := strconv.Atoi(head.text)
	if err != nil || count < 0 {
		return fmt.Errorf("line %d: invalid %s count %q", head.num, what, head.text)
	}
	p.pos++

	for i := 0; i < count; i++ {
		if p.pos >= len(p.lines) {
			return fmt.Errorf("%s: expected %d rows, got %d", what, count, i)
		}
		l := p.lines[p.pos]
		p.pos++

		f := strings.Split(l.text, ",")
		if len(f) != fields {
			return fmt.Errorf("line %d: %s row %q: expected %d fields, got %d", l.num, what, l.text, fields, len(f))
		}
		for j := range f {
			f[j] = strings.TrimSpace(f[j])
			if f[j] == "" {
				return fmt.Errorf("line %d: %s row %q: empty field %d", l.num, what, l.text, j+1)
			}
		}
		if err := row(f); err != nil {
			return fmt.Errorf("line %d: %s row %q: %w", l.num, what, l.text, err)
		}
	}
	return nil
}

func parseInt(what, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return v, nil
}
