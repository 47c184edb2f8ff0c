package services

import (
	"context"
	"fmt"
	"time"

	"github.com/emon51/flight-scraper/config"
	"github.com/emon51/flight-scraper/dates"
	"github.com/emon51/flight-scraper/models"
	"github.com/emon51/flight-scraper/scraper"
	"github.com/emon51/flight-scraper/storage"
	"github.com/emon51/flight-scraper/tfs"
	"github.com/emon51/flight-scraper/utils"
)

type Pipeline struct {
	cfg    *config.Config
	logger *utils.Logger
}

func NewPipeline(cfg *config.Config, logger *utils.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger}
}

// Execute runs the complete scraping pipeline: resolve the target dates,
// scrape each one through a single browser session, then render and export
// the collected rows. Only the date resolution step can abort the run; a
// failing date is reported and skipped.
func (p *Pipeline) Execute(ctx context.Context) error {
	started := time.Now()

	targets, err := p.resolveDates()
	if err != nil {
		return err
	}

	rows := p.scrapeAll(ctx, targets)

	if !p.cfg.NoTable {
		utils.RenderTable(rows)
	} else {
		fmt.Printf("Total flights collected: %d across %d dates.\n", len(rows), len(targets))
	}

	if p.cfg.CSVOutput != "" {
		if err := p.saveToCSV(rows); err != nil {
			return fmt.Errorf("CSV save failed: %w", err)
		}
	}

	if p.cfg.Database.Host != "" {
		if err := p.saveToDatabase(rows); err != nil {
			// Table and CSV output already happened; losing the DB copy
			// should not fail the run.
			p.logger.Error("database save failed", err)
		}
	}

	p.logger.LogScrapeSession(len(rows), time.Since(started))
	return nil
}

// resolveDates expands the configured directive into the unique target
// dates, in first-seen order. For the label strategy the base year comes
// from the URL's embedded filter year when it can be recovered, else the
// current calendar year.
func (p *Pipeline) resolveDates() ([]time.Time, error) {
	baseYear, ok := tfs.ReferenceYear(p.cfg.URL)
	if !ok {
		baseYear = time.Now().Year()
	}
	return dates.Resolve(dates.Directive{
		Dates:       p.cfg.Dates,
		RangeStart:  p.cfg.RangeStart,
		RangeEnd:    p.cfg.RangeEnd,
		Label:       p.cfg.TargetLabel,
		YearOffsets: p.cfg.YearOffsets,
		BaseYear:    baseYear,
	})
}

// scrapeAll processes the target dates strictly in sequence over one
// browser session. The harvester's dedup state and the rendered page are
// single-session resources, so no two navigations may overlap.
func (p *Pipeline) scrapeAll(ctx context.Context, targets []time.Time) []models.FlightRow {
	fmt.Println("\n=== STEP 1: SCRAPING ===")

	browserCtx, cancel := utils.NewBrowserContext(ctx, p.cfg.Headless)
	defer cancel()

	s := scraper.NewScraper(p.cfg.MaxResults, p.cfg.PageTimeout, p.cfg.CardWait)

	var all []models.FlightRow
	for _, target := range targets {
		day := target.Format("2006-01-02")
		url := tfs.RewriteDate(p.cfg.URL, target)

		raw, err := s.ScrapeDate(browserCtx, url, target)
		if err != nil {
			p.logger.Error(fmt.Sprintf("scrape failed for %s", day), err)
			continue
		}

		rows := NormalizeRows(raw, target)
		if len(rows) > 0 {
			p.logger.Info(fmt.Sprintf("Collected %d flights for %s", len(rows), day))
		} else {
			p.logger.Info(fmt.Sprintf("No flights found for %s", day))
		}
		all = append(all, rows...)
	}
	return all
}

func (p *Pipeline) saveToCSV(rows []models.FlightRow) error {
	fmt.Println("\n=== STEP 2: SAVING TO CSV ===")

	writer := storage.NewCSVWriter(p.cfg.CSVOutput)
	if err := writer.WriteRows(rows); err != nil {
		return err
	}

	p.logger.Success(fmt.Sprintf("Saved %d flight rows to %s", len(rows), p.cfg.CSVOutput))
	return nil
}

func (p *Pipeline) saveToDatabase(rows []models.FlightRow) error {
	fmt.Println("\n=== STEP 3: SAVING TO POSTGRESQL ===")

	pgWriter, err := storage.NewPostgresWriter(
		p.cfg.Database.Host,
		p.cfg.Database.Port,
		p.cfg.Database.User,
		p.cfg.Database.Password,
		p.cfg.Database.DBName,
	)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer pgWriter.Close()

	if err := pgWriter.CreateTable(); err != nil {
		return fmt.Errorf("table creation failed: %w", err)
	}

	if err := pgWriter.InsertRows(rows); err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}

	p.logger.Success(fmt.Sprintf("%d flights saved to PostgreSQL", len(rows)))
	return nil
}
