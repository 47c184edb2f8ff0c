package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/emon51/flight-scraper/models"
)

type PostgresWriter struct {
	db *sql.DB
}

func NewPostgresWriter(host string, port int, user, password, dbname string) (*PostgresWriter, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresWriter{db: db}, nil
}

func (w *PostgresWriter) Close() error {
	return w.db.Close()
}

func (w *PostgresWriter) CreateTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS flights (
		id SERIAL PRIMARY KEY,
		airline TEXT NOT NULL,
		flight_date DATE NOT NULL,
		departure_time TEXT,
		arrival_time TEXT,
		duration TEXT,
		transit TEXT,
		price TEXT,
		scraped_at TIMESTAMP DEFAULT NOW()
	)`

	if _, err := w.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

func (w *PostgresWriter) InsertRows(rows []models.FlightRow) error {
	query := `
	INSERT INTO flights (airline, flight_date, departure_time, arrival_time, duration, transit, price)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, row := range rows {
		_, err := tx.Exec(query,
			row.Airline,
			row.Date,
			row.DepartureTime,
			row.ArrivalTime,
			row.Duration,
			row.Transit,
			row.Price,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert flight: %w", err)
		}
	}

	return tx.Commit()
}
