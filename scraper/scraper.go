package scraper

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/emon51/flight-scraper/models"
)

// Scraper harvests flight result cards from one navigated search page.
// The page paginates through UI side effects only (lazy scroll loading plus
// an occasional "more flights" control), so the harvest runs a convergence
// loop: keep expanding until the rendered card count stops growing or the
// result cap is hit.
type Scraper struct {
	maxResults  int
	pageTimeout time.Duration
	waitTimeout time.Duration
	settlePause time.Duration
	morePause   time.Duration
	scrollPause time.Duration
}

// NewScraper returns a Scraper capped at maxResults records per navigation
// (0 means unbounded). pageTimeout bounds each page load, waitTimeout the
// wait for the first result card.
func NewScraper(maxResults int, pageTimeout, waitTimeout time.Duration) *Scraper {
	return &Scraper{
		maxResults:  maxResults,
		pageTimeout: pageTimeout,
		waitTimeout: waitTimeout,
		settlePause: 1 * time.Second,
		morePause:   1500 * time.Millisecond,
		scrollPause: 1200 * time.Millisecond,
	}
}

// ScrapeDate navigates the browser tab to url and harvests every result
// card rendered for it. target's year disambiguates year-less date text on
// the cards.
func (s *Scraper) ScrapeDate(ctx context.Context, url string, target time.Time) ([]models.RawFlight, error) {
	navCtx, cancel := context.WithTimeout(ctx, s.pageTimeout)
	defer cancel()
	if err := chromedp.Run(navCtx, chromedp.Navigate(url)); err != nil {
		return nil, err
	}
	return s.harvest(ctx, target.Year())
}

func (s *Scraper) harvest(ctx context.Context, travelYear int) ([]models.RawFlight, error) {
	waitCtx, cancel := context.WithTimeout(ctx, s.waitTimeout)
	defer cancel()
	if err := chromedp.Run(waitCtx, chromedp.WaitReady(CardSelector, chromedp.ByQuery)); err != nil {
		// No card ever appeared: report zero results, not a failure.
		return nil, nil
	}

	state := newHarvestState(s.maxResults)
	for {
		var snaps []models.CardSnapshot
		if err := chromedp.Run(ctx, chromedp.Evaluate(snapshotScript, &snaps)); err != nil {
			return state.results, err
		}
		if capReached := state.ingest(snaps, travelYear); capReached {
			return state.results, nil
		}

		if err := chromedp.Run(ctx,
			chromedp.Evaluate(scrollToBottomScript, nil),
			chromedp.Sleep(s.settlePause),
		); err != nil {
			return state.results, err
		}

		var clicked bool
		if err := chromedp.Run(ctx, chromedp.Evaluate(clickMoreScript, &clicked)); err != nil {
			return state.results, err
		}
		if clicked {
			if err := chromedp.Run(ctx, chromedp.Sleep(s.morePause)); err != nil {
				return state.results, err
			}
			continue
		}

		prevCount := len(snaps)
		var count int
		if err := chromedp.Run(ctx,
			chromedp.Evaluate(scrollViewportScript, nil),
			chromedp.Sleep(s.scrollPause),
			chromedp.Evaluate(cardCountScript, &count),
		); err != nil {
			return state.results, err
		}
		if count <= prevCount {
			// Two expansion attempts with no growth: true end of results.
			return state.results, nil
		}
	}
}

// harvestState holds the per-navigation accumulation: the identifiers
// already processed and the records collected so far. It is created fresh
// for every navigation so deduplication never leaks between dates.
type harvestState struct {
	seen       map[string]bool
	results    []models.RawFlight
	maxResults int
}

func newHarvestState(maxResults int) *harvestState {
	return &harvestState{
		seen:       make(map[string]bool),
		maxResults: maxResults,
	}
}

// ingest extracts every not-yet-seen card in the snapshot batch. Cards
// without a page-provided identifier are always treated as new; suppressing
// them would risk dropping real offers. Stale snapshots are skipped
// silently. Reports whether the result cap was reached.
func (st *harvestState) ingest(snaps []models.CardSnapshot, travelYear int) bool {
	for _, snap := range snaps {
		if snap.ID != "" && st.seen[snap.ID] {
			continue
		}
		card, err := ParseCard(snap)
		if err != nil {
			// The card mutated under us; it may come back on a later pass.
			continue
		}
		st.results = append(st.results, Extract(card, travelYear))
		if snap.ID != "" {
			st.seen[snap.ID] = true
		}
		if st.maxResults > 0 && len(st.results) >= st.maxResults {
			return true
		}
	}
	return false
}
