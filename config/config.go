package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultURL is a sample one-way search whose tfs parameter carries the
// departure date that gets rewritten per navigation.
const DefaultURL = "https://www.google.com/travel/flights/search?" +
	"tfs=CBwQAhooEgoyMDI1LTEwLTA0agwIAhIIL20vMDQ0cnZyDAgCEggvbS8wN2Rma0AB" +
	"SAFwAYIBCwj___________8BmAED&tfu=EgYIABABGAA&tcfs=ChMKCC9tLzA0NHJ2GgdKYWthcnRhUgRgAXgB"

// DefaultDateLabel matches the date shown in the sample URL's search form.
const DefaultDateLabel = "Wed, Oct 8"

type Config struct {
	URL         string
	TargetLabel string
	Dates       []string
	RangeStart  string
	RangeEnd    string
	YearOffsets []int
	MaxResults  int
	CSVOutput   string
	NoTable     bool
	Headless    bool

	LogFile     string
	PageTimeout time.Duration
	CardWait    time.Duration

	Database DatabaseConfig
}

// DatabaseConfig enables the optional Postgres sink. An empty Host means
// the sink is skipped entirely.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

func NewConfig() *Config {
	return &Config{
		URL:         DefaultURL,
		TargetLabel: DefaultDateLabel,
		YearOffsets: []int{0, 1},
		Headless:    true,

		LogFile:     "flight-scraper.log",
		PageTimeout: 180 * time.Second,
		CardWait:    45 * time.Second,

		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "flight_scraper"),
		},
	}
}

func getEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}
