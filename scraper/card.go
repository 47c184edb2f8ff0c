package scraper

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/emon51/flight-scraper/models"
)

// ErrStaleCard marks a card whose snapshot was invalidated by a page
// re-render before it could be read. Callers recover by skipping the card;
// it may reappear on a later pass.
var ErrStaleCard = errors.New("stale result card")

// Card is a parsed result card. It exposes only read accessors over the
// captured markup; the live element it came from may already be gone.
type Card struct {
	ID  string
	sel *goquery.Selection
}

// ParseCard turns a raw snapshot into a readable Card. An empty or
// unparseable snapshot yields ErrStaleCard.
func ParseCard(snap models.CardSnapshot) (*Card, error) {
	if strings.TrimSpace(snap.HTML) == "" {
		return nil, ErrStaleCard
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snap.HTML))
	if err != nil {
		return nil, ErrStaleCard
	}
	sel := doc.Find(CardSelector).First()
	if sel.Length() == 0 {
		// Snapshot no longer carries the card container.
		return nil, ErrStaleCard
	}
	return &Card{ID: snap.ID, sel: sel}, nil
}
