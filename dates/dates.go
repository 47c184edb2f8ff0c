// Package dates converts between the human-readable departure-date labels
// shown in the search UI and calendar dates, and expands a search directive
// into the ordered set of dates to scrape.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LabelToDate parses a label like "Wed, Oct 8" into a date in the given
// year. The month may be a full or abbreviated English name.
func LabelToDate(label string, year int) (time.Time, error) {
	parts := strings.SplitN(label, ", ", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("unexpected date label format: %q", label)
	}
	monthDay := strings.Fields(parts[1])
	if len(monthDay) != 2 {
		return time.Time{}, fmt.Errorf("unexpected month/day format in label: %q", label)
	}

	month, err := parseMonth(monthDay[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("unexpected month in label %q: %w", label, err)
	}
	day, err := strconv.Atoi(monthDay[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("unexpected day in label %q: %w", label, err)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// ToLabel is the inverse of LabelToDate: abbreviated weekday, abbreviated
// month, unpadded day.
func ToLabel(d time.Time) string {
	return fmt.Sprintf("%s, %s %d", d.Format("Mon"), d.Format("Jan"), d.Day())
}

// ShiftYearSafe moves d by offset years. When the shifted date does not
// exist (Feb 29 in a non-leap year) it falls back to the previous day in
// the target year instead of failing.
func ShiftYearSafe(d time.Time, offset int) time.Time {
	year := d.Year() + offset
	shifted := time.Date(year, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	if shifted.Month() != d.Month() {
		shifted = time.Date(year, d.Month(), d.Day()-1, 0, 0, 0, 0, time.UTC)
	}
	return shifted
}

func parseMonth(name string) (time.Month, error) {
	if t, err := time.Parse("Jan", name); err == nil {
		return t.Month(), nil
	}
	t, err := time.Parse("January", name)
	if err != nil {
		return 0, err
	}
	return t.Month(), nil
}
