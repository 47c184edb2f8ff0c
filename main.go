package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/emon51/flight-scraper/config"
	"github.com/emon51/flight-scraper/services"
	"github.com/emon51/flight-scraper/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "flight-scraper",
		Short:         "Scrape Google Flights results for one or more departure dates.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := utils.NewLogger(cfg.LogFile)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer logger.Close()

			return services.NewPipeline(cfg, logger).Execute(cmd.Context())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.URL, "url", cfg.URL, "base Google Flights search URL")
	flags.StringVar(&cfg.TargetLabel, "target-date", cfg.TargetLabel, "departure date label as shown in the date input, e.g. 'Wed, Oct 8'")
	flags.StringSliceVar(&cfg.Dates, "dates", nil, "departure dates (YYYY-MM-DD); overrides --target-date and --year-offsets")
	flags.StringVar(&cfg.RangeStart, "range-start", "", "start date (YYYY-MM-DD) for an inclusive range")
	flags.StringVar(&cfg.RangeEnd, "range-end", "", "end date (YYYY-MM-DD) for an inclusive range")
	flags.IntSliceVar(&cfg.YearOffsets, "year-offsets", cfg.YearOffsets, "year offsets relative to the base filter year")
	flags.IntVar(&cfg.MaxResults, "max-results", 0, "maximum flight cards to capture per date (0 means all)")
	flags.StringVar(&cfg.CSVOutput, "csv-output", "", "optional path to write the scraped data to CSV")
	flags.BoolVar(&cfg.NoTable, "no-table", false, "skip printing the full results table to stdout")
	flags.BoolVar(&cfg.Headless, "headless", true, "run Chrome in headless mode")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
