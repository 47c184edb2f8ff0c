package scraper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emon51/flight-scraper/models"
)

func snapshot(id, airline string) models.CardSnapshot {
	return models.CardSnapshot{
		ID: id,
		HTML: fmt.Sprintf(`
<div jscontroller="yGdjUc" data-id=%q>
  <div class="Ir0Voe"><div class="sSHqwe tPgKwe ogfYpf"><span>%s</span></div></div>
</div>`, id, airline),
	}
}

func TestIngestDeduplicatesByID(t *testing.T) {
	state := newHarvestState(0)

	state.ingest([]models.CardSnapshot{snapshot("a", "Garuda Indonesia")}, 2025)
	// Same card shows up again on a later pagination tick.
	state.ingest([]models.CardSnapshot{
		snapshot("a", "Garuda Indonesia"),
		snapshot("b", "Batik Air"),
	}, 2025)

	require.Len(t, state.results, 2)
	assert.Equal(t, "Garuda Indonesia", state.results[0].Airlines)
	assert.Equal(t, "Batik Air", state.results[1].Airlines)
}

func TestIngestKeepsCardsWithoutID(t *testing.T) {
	state := newHarvestState(0)

	// Two textually identical cards with no page-provided identifier must
	// both be kept; suppressing them would drop real offers.
	state.ingest([]models.CardSnapshot{
		snapshot("", "Garuda Indonesia"),
		snapshot("", "Garuda Indonesia"),
	}, 2025)
	state.ingest([]models.CardSnapshot{snapshot("", "Garuda Indonesia")}, 2025)

	assert.Len(t, state.results, 3)
}

func TestIngestSkipsStaleSnapshots(t *testing.T) {
	state := newHarvestState(0)

	capReached := state.ingest([]models.CardSnapshot{
		{ID: "gone", HTML: ""},
		snapshot("b", "Batik Air"),
	}, 2025)

	assert.False(t, capReached)
	require.Len(t, state.results, 1)
	assert.Equal(t, "Batik Air", state.results[0].Airlines)
	// The stale card was not marked seen, so it can still land later.
	assert.False(t, state.seen["gone"])
}

func TestIngestStopsAtResultCap(t *testing.T) {
	state := newHarvestState(2)

	capReached := state.ingest([]models.CardSnapshot{
		snapshot("a", "Garuda Indonesia"),
		snapshot("b", "Batik Air"),
		snapshot("c", "Citilink"),
	}, 2025)

	assert.True(t, capReached)
	assert.Len(t, state.results, 2)
}

func TestIngestStateIsPerNavigation(t *testing.T) {
	first := newHarvestState(0)
	first.ingest([]models.CardSnapshot{snapshot("a", "Garuda Indonesia")}, 2025)

	// A fresh navigation starts with fresh dedup state.
	second := newHarvestState(0)
	second.ingest([]models.CardSnapshot{snapshot("a", "Garuda Indonesia")}, 2026)

	assert.Len(t, first.results, 1)
	assert.Len(t, second.results, 1)
}
