package dates

import (
	"fmt"
	"time"
)

// Directive selects the departure dates for one run. Exactly one strategy
// applies, in priority order: explicit Dates, then RangeStart/RangeEnd,
// then Label plus YearOffsets resolved against BaseYear.
type Directive struct {
	Dates       []string
	RangeStart  string
	RangeEnd    string
	Label       string
	YearOffsets []int
	BaseYear    int
}

// Resolve expands the directive into the ordered, deduplicated set of
// target dates. Malformed input is an unrecoverable error; it is raised
// here, before any navigation happens.
func Resolve(d Directive) ([]time.Time, error) {
	resolved, err := expand(d)
	if err != nil {
		return nil, err
	}
	return dedupe(resolved), nil
}

func expand(d Directive) ([]time.Time, error) {
	if len(d.Dates) > 0 {
		out := make([]time.Time, 0, len(d.Dates))
		for _, value := range d.Dates {
			parsed, err := time.Parse("2006-01-02", value)
			if err != nil {
				return nil, fmt.Errorf("invalid date %q: %w", value, err)
			}
			out = append(out, parsed)
		}
		return out, nil
	}

	if d.RangeStart != "" && d.RangeEnd != "" {
		start, err := time.Parse("2006-01-02", d.RangeStart)
		if err != nil {
			return nil, fmt.Errorf("invalid range start %q: %w", d.RangeStart, err)
		}
		end, err := time.Parse("2006-01-02", d.RangeEnd)
		if err != nil {
			return nil, fmt.Errorf("invalid range end %q: %w", d.RangeEnd, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("range end %s is before range start %s", d.RangeEnd, d.RangeStart)
		}
		var out []time.Time
		for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
			out = append(out, cur)
		}
		return out, nil
	}

	base, err := LabelToDate(d.Label, d.BaseYear)
	if err != nil {
		return nil, err
	}
	offsets := d.YearOffsets
	if len(offsets) == 0 {
		offsets = []int{0}
	}
	out := make([]time.Time, 0, len(offsets))
	for _, offset := range offsets {
		out = append(out, ShiftYearSafe(base, offset))
	}
	return out, nil
}

// dedupe drops repeated dates, keeping first-seen order.
func dedupe(in []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(in))
	out := make([]time.Time, 0, len(in))
	for _, d := range in {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
