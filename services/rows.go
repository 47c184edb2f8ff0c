package services

import (
	"fmt"
	"time"

	"github.com/emon51/flight-scraper/models"
)

// NormalizeRows maps harvested raw records into the output schema.
// The departure date always resolves to a concrete value: when no date
// could be parsed off the card, the navigated target date fills in.
func NormalizeRows(raw []models.RawFlight, target time.Time) []models.FlightRow {
	rows := make([]models.FlightRow, 0, len(raw))
	for _, r := range raw {
		departureDate := r.DepartureDate
		if departureDate == "" {
			departureDate = target.Format("2006-01-02")
		}

		rows = append(rows, models.FlightRow{
			Airline:       r.Airlines,
			Date:          departureDate,
			DepartureTime: r.Departure,
			ArrivalTime:   arrivalDisplay(r),
			Duration:      r.Duration,
			Transit:       transitDisplay(r),
			Price:         r.Price,
		})
	}
	return rows
}

// arrivalDisplay annotates the arrival time with its calendar date when one
// was resolved, since it can differ from the departure date.
func arrivalDisplay(r models.RawFlight) string {
	if r.ArrivalDate == "" {
		return r.Arrival
	}
	if r.Arrival == "" {
		return r.ArrivalDate
	}
	return fmt.Sprintf("%s (%s)", r.Arrival, r.ArrivalDate)
}

func transitDisplay(r models.RawFlight) string {
	if r.StopsText != "" {
		return r.StopsText
	}
	if r.StopsCount != nil && *r.StopsCount == 0 {
		return "Nonstop"
	}
	return "Unknown"
}
