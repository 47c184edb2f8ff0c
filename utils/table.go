package utils

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/emon51/flight-scraper/models"
)

// RenderTable prints all collected rows as a rounded table on stdout, in
// the order they were harvested (grouped by navigated date).
func RenderTable(rows []models.FlightRow) {
	if len(rows) == 0 {
		fmt.Println("No flight results captured.")
		return
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Airline", "Date", "Departure Time", "Arrival Time", "Duration", "Transit", "Price"})
	for _, row := range rows {
		t.AppendRow(table.Row{
			row.Airline,
			row.Date,
			row.DepartureTime,
			row.ArrivalTime,
			row.Duration,
			row.Transit,
			row.Price,
		})
	}
	t.Render()
}
