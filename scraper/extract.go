package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/emon51/flight-scraper/models"
)

var firstIntPattern = regexp.MustCompile(`\d+`)

// Extract runs every field extractor against one card and assembles the
// raw record. Each extractor is independent: a missing element is the
// expected common case and never disturbs the others.
func Extract(card *Card, travelYear int) models.RawFlight {
	stopsText, stopsCount := extractStops(card.sel)
	times := extractTimes(card.sel, travelYear)
	return models.RawFlight{
		Airlines:      extractAirlines(card.sel),
		Price:         extractPrice(card.sel),
		Departure:     times.departure,
		Arrival:       times.arrival,
		DepartureDate: times.departureDate,
		ArrivalDate:   times.arrivalDate,
		Duration:      extractDuration(card.sel),
		StopsText:     stopsText,
		StopsCount:    stopsCount,
	}
}

// extractAirlines collects the distinct airline names on the card, joined
// with " + " for codeshare and multi-carrier itineraries.
func extractAirlines(sel *goquery.Selection) string {
	block := sel.Find(AirlineBlockSelector).First()
	if block.Length() == 0 {
		return "Unknown"
	}

	var names []string
	block.Find("span").Each(func(_ int, span *goquery.Selection) {
		value := normalize(span.Text())
		if value == "" {
			return
		}
		for _, seen := range names {
			if seen == value {
				return
			}
		}
		names = append(names, value)
	})
	if len(names) == 0 {
		if value := normalize(block.Text()); value != "" {
			names = append(names, value)
		}
	}
	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, " + ")
}

func extractPrice(sel *goquery.Selection) string {
	return normalize(sel.Find(PriceSelector).First().Text())
}

func extractDuration(sel *goquery.Selection) string {
	return normalize(sel.Find(DurationSelector).First().Text())
}

// extractStops returns the raw stops label and a derived count: 0 for a
// nonstop marker, else the first embedded integer, else nil when the count
// is unknown. Unknown is never reported as zero.
func extractStops(sel *goquery.Selection) (string, *int) {
	label := sel.Find(StopsSelector).First()
	if label.Length() == 0 {
		return "", nil
	}
	text := normalize(label.Text())
	if text == "" {
		return "", nil
	}
	if strings.Contains(strings.ToLower(text), "nonstop") {
		zero := 0
		return text, &zero
	}
	if match := firstIntPattern.FindString(text); match != "" {
		if count, err := strconv.Atoi(match); err == nil {
			return text, &count
		}
	}
	return text, nil
}

type cardTimes struct {
	departure     string
	arrival       string
	departureDate string
	arrivalDate   string
}

// extractTimes reads the departure/arrival time spans and resolves their
// calendar dates from the card's descriptive aria-label, disambiguated by
// the travel year.
func extractTimes(sel *goquery.Selection, travelYear int) cardTimes {
	var times cardTimes

	spans := sel.Find(TimeSpanSelector)
	if spans.Length() > 0 {
		times.departure = normalize(spans.Eq(0).Text())
	}
	if spans.Length() > 1 {
		times.arrival = normalize(spans.Eq(1).Text())
	}

	label, _ := sel.Find(DateLabelSelector).First().Attr("aria-label")
	if label != "" {
		times.departureDate, times.arrivalDate = parseDatesFromLabel(normalize(label), travelYear)
	}

	// A "+N" suffix on the arrival time still pins down the arrival date
	// when the label never mentioned it.
	if times.departureDate != "" && times.arrivalDate == "" {
		times.arrivalDate = arrivalFromOffset(times.departureDate, times.arrival)
	}

	return times
}
