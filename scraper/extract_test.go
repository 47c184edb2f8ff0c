package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emon51/flight-scraper/models"
)

const fullCardHTML = `
<div jscontroller="yGdjUc" data-id="card-1">
  <div class="Ir0Voe">
    <div class="sSHqwe tPgKwe ogfYpf">
      <span>Garuda Indonesia</span>
      <span>Singapore Airlines</span>
      <span>Garuda Indonesia</span>
    </div>
  </div>
  <div class="zxVSec YMlIz tPgKwe ogfYpf">
    <span class="mv1WYe" aria-label="Leaves at 9:05 PM on Mon, Dec 1 and arrives at 11:55 PM on Tue, Dec 2.">
      <span role="text">9:05&#8239;PM</span>
      <span role="text">11:55&#8239;PM+1</span>
    </span>
  </div>
  <div class="gvkrdb AdWm1c tPgKwe ogfYpf">26 hr 50 min</div>
  <div class="EfT7Ae AdWm1c tPgKwe"><span class="ogfYpf">1 stop</span></div>
  <div class="YMlIz FpEdX"><span>$1,024</span></div>
</div>`

func mustParse(t *testing.T, html, id string) *Card {
	t.Helper()
	card, err := ParseCard(models.CardSnapshot{ID: id, HTML: html})
	require.NoError(t, err)
	return card
}

func TestExtractFullCard(t *testing.T) {
	card := mustParse(t, fullCardHTML, "card-1")
	got := Extract(card, 2025)

	assert.Equal(t, "Garuda Indonesia + Singapore Airlines", got.Airlines)
	assert.Equal(t, "$1,024", got.Price)
	assert.Equal(t, "9:05 PM", got.Departure)
	assert.Equal(t, "11:55 PM +1", got.Arrival)
	assert.Equal(t, "2025-12-01", got.DepartureDate)
	assert.Equal(t, "2025-12-02", got.ArrivalDate)
	assert.Equal(t, "26 hr 50 min", got.Duration)
	assert.Equal(t, "1 stop", got.StopsText)
	require.NotNil(t, got.StopsCount)
	assert.Equal(t, 1, *got.StopsCount)
}

func TestExtractEmptyCardUsesSentinels(t *testing.T) {
	card := mustParse(t, `<div jscontroller="yGdjUc" data-id="bare"><div>nothing useful</div></div>`, "bare")
	got := Extract(card, 2025)

	assert.Equal(t, models.RawFlight{Airlines: "Unknown"}, got)
}

func TestExtractAirlinesFallsBackToBlockText(t *testing.T) {
	card := mustParse(t, `
<div jscontroller="yGdjUc">
  <div class="Ir0Voe"><div class="sSHqwe tPgKwe ogfYpf">Batik Air</div></div>
</div>`, "")
	got := Extract(card, 2025)

	assert.Equal(t, "Batik Air", got.Airlines)
}

func TestExtractStops(t *testing.T) {
	testCases := []struct {
		name          string
		stopsLabel    string
		expectedText  string
		expectedCount *int
	}{
		{"nonstop", "Nonstop", "Nonstop", intPtr(0)},
		{"one stop", "1 stop", "1 stop", intPtr(1)},
		{"two stops", "2 stops", "2 stops", intPtr(2)},
		{"no digits and no nonstop marker", "Self transfer", "Self transfer", nil},
	}
	for _, tc := range testCases {
		card := mustParse(t, `
<div jscontroller="yGdjUc">
  <div class="EfT7Ae AdWm1c tPgKwe"><span class="ogfYpf">`+tc.stopsLabel+`</span></div>
</div>`, "")
		got := Extract(card, 2025)

		assert.Equal(t, tc.expectedText, got.StopsText, tc.name)
		if tc.expectedCount == nil {
			assert.Nil(t, got.StopsCount, tc.name)
		} else {
			require.NotNil(t, got.StopsCount, tc.name)
			assert.Equal(t, *tc.expectedCount, *got.StopsCount, tc.name)
		}
	}
}

func TestExtractTimesOffsetFallback(t *testing.T) {
	// The label only pins down the departure; the "+1" suffix on the
	// arrival time supplies the arrival date.
	card := mustParse(t, `
<div jscontroller="yGdjUc">
  <div class="zxVSec YMlIz tPgKwe ogfYpf">
    <span class="mv1WYe" aria-label="Leaves at 11:30 PM on Mon, Dec 1.">
      <span role="text">11:30 PM</span>
      <span role="text">6:10 AM+1</span>
    </span>
  </div>
</div>`, "")
	got := Extract(card, 2025)

	assert.Equal(t, "2025-12-01", got.DepartureDate)
	assert.Equal(t, "2025-12-02", got.ArrivalDate)
}

func TestParseCardStale(t *testing.T) {
	for _, html := range []string{"", "   ", "<div>not a card</div>"} {
		_, err := ParseCard(models.CardSnapshot{ID: "x", HTML: html})
		assert.ErrorIs(t, err, ErrStaleCard, html)
	}
}

func intPtr(v int) *int { return &v }
