package models

// RawFlight accumulates the fields extracted from a single result card.
// Every field defaults to an explicit empty/unknown value so downstream
// normalization never has to branch on missing keys. StopsCount is nil when
// the stop count could not be derived; nil and 0 mean different things.
type RawFlight struct {
	Airlines      string
	Price         string
	Departure     string
	Arrival       string
	DepartureDate string
	ArrivalDate   string
	Duration      string
	StopsText     string
	StopsCount    *int
}

// FlightRow is the exported schema consumed by the table renderer, the CSV
// writer and the Postgres writer.
type FlightRow struct {
	Airline       string `csv:"Airline"`
	Date          string `csv:"Date"`
	DepartureTime string `csv:"Departure Time"`
	ArrivalTime   string `csv:"Arrival Time"`
	Duration      string `csv:"Duration"`
	Transit       string `csv:"Transit"`
	Price         string `csv:"Price"`
}

// CardSnapshot is one rendered result card captured from the live page.
// ID is the page-provided data-id and may be empty; cards without an ID are
// never deduplicated.
type CardSnapshot struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
}
