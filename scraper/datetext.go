package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const arrivesSeparator = " and arrives "

var (
	dateFragmentPattern = regexp.MustCompile(`on ([A-Za-z]+, [A-Za-z]+ \d{1,2})`)
	dayOffsetPattern    = regexp.MustCompile(`\+(\d)`)
)

// The card label writes weekday and month either spelled out or
// abbreviated, in any combination.
var fragmentLayouts = []string{
	"Monday, January 2 2006",
	"Monday, Jan 2 2006",
	"Mon, January 2 2006",
	"Mon, Jan 2 2006",
}

// parseDatesFromLabel extracts the departure and arrival dates from a
// descriptive label of the form "<departure> and arrives <arrival>" (the
// arrival clause is optional). When both resolve and the arrival parses
// earlier than the departure, the arrival is advanced day-by-day until it
// no longer is; the year is implied by the source text, never written.
// Unresolved dates come back as empty strings.
func parseDatesFromLabel(label string, travelYear int) (string, string) {
	depFragment, arrFragment := label, ""
	if idx := strings.Index(label, arrivesSeparator); idx >= 0 {
		depFragment = label[:idx]
		arrFragment = label[idx+len(arrivesSeparator):]
	}

	depISO := parseDateFragment(depFragment, travelYear)
	arrISO := parseDateFragment(arrFragment, travelYear)

	if depISO != "" && arrISO != "" {
		dep, depErr := time.Parse("2006-01-02", depISO)
		arr, arrErr := time.Parse("2006-01-02", arrISO)
		if depErr == nil && arrErr == nil {
			for arr.Before(dep) {
				arr = arr.AddDate(0, 0, 1)
			}
			arrISO = arr.Format("2006-01-02")
		}
	}

	return depISO, arrISO
}

// parseDateFragment finds an "on <weekday>, <month> <day>" pattern in the
// fragment and parses it against the four known layouts combined with the
// travel year. Returns "" when nothing parses; absence is not an error.
func parseDateFragment(fragment string, travelYear int) string {
	match := dateFragmentPattern.FindStringSubmatch(fragment)
	if match == nil {
		return ""
	}
	text := fmt.Sprintf("%s %d", match[1], travelYear)
	for _, layout := range fragmentLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	return ""
}

// arrivalFromOffset derives the arrival date from a "+N" day-offset suffix
// in the arrival time text. Returns "" when no offset is present.
func arrivalFromOffset(departureISO, arrivalText string) string {
	match := dayOffsetPattern.FindStringSubmatch(arrivalText)
	if match == nil {
		return ""
	}
	dep, err := time.Parse("2006-01-02", departureISO)
	if err != nil {
		return ""
	}
	days, err := strconv.Atoi(match[1])
	if err != nil {
		return ""
	}
	return dep.AddDate(0, 0, days).Format("2006-01-02")
}
