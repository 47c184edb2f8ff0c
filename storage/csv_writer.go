package storage

import (
	"os"

	"github.com/jszwec/csvutil"

	"github.com/emon51/flight-scraper/models"
)

type CSVWriter struct {
	filename string
}

func NewCSVWriter(filename string) *CSVWriter {
	return &CSVWriter{filename: filename}
}

// WriteRows writes all rows to the configured file, header first, column
// order taken from the csv tags on models.FlightRow.
func (w *CSVWriter) WriteRows(rows []models.FlightRow) error {
	data, err := csvutil.Marshal(rows)
	if err != nil {
		return err
	}
	return os.WriteFile(w.filename, data, 0o644)
}
