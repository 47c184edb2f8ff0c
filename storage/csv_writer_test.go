package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emon51/flight-scraper/models"
)

func TestWriteRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.csv")

	err := NewCSVWriter(path).WriteRows([]models.FlightRow{
		{
			Airline:       "Garuda Indonesia",
			Date:          "2025-12-01",
			DepartureTime: "9:05 PM",
			ArrivalTime:   "11:55 PM (2025-12-02)",
			Duration:      "26 hr 50 min",
			Transit:       "1 stop",
			Price:         "$1,024",
		},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Airline,Date,Departure Time,Arrival Time,Duration,Transit,Price", lines[0])
	assert.Equal(t, `Garuda Indonesia,2025-12-01,9:05 PM,11:55 PM (2025-12-02),26 hr 50 min,1 stop,"$1,024"`, lines[1])
}

func TestWriteRowsEmptyStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.csv")

	require.NoError(t, NewCSVWriter(path).WriteRows(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Airline,Date,Departure Time,Arrival Time,Duration,Transit,Price",
		strings.TrimSpace(string(data)))
}
