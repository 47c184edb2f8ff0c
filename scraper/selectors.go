package scraper

// CSS selectors for the Google Flights results page. These hooks are an
// unstable external contract; keeping them in one place makes updates
// trivial when the page markup rotates.
const (
	// Result cards
	CardSelector = "div[jscontroller='yGdjUc']"

	// Per-card field hooks
	AirlineBlockSelector = ".Ir0Voe > .sSHqwe.tPgKwe.ogfYpf"
	TimeSpanSelector     = ".zxVSec span[role='text']"
	DateLabelSelector    = ".zxVSec.YMlIz.tPgKwe.ogfYpf .mv1WYe"
	DurationSelector     = ".gvkrdb.AdWm1c.tPgKwe.ogfYpf"
	StopsSelector        = ".EfT7Ae.AdWm1c.tPgKwe span.ogfYpf"
	PriceSelector        = ".YMlIz.FpEdX span"
)

// snapshotScript captures every rendered result card as a data-id plus
// outerHTML pair. Extraction happens in Go on the snapshot, so a card that
// mutates mid-pass only costs that one card.
const snapshotScript = `
	(() => {
		const cards = Array.from(document.querySelectorAll("div[jscontroller='yGdjUc']"));
		return cards.map(card => ({
			id: card.getAttribute('data-id') || '',
			html: card.outerHTML || '',
		}));
	})()
`

// cardCountScript reports how many cards are currently rendered.
const cardCountScript = `document.querySelectorAll("div[jscontroller='yGdjUc']").length`

// Scroll scripts driving lazy loading.
const (
	scrollToBottomScript = `window.scrollTo(0, document.body.scrollHeight); true`
	scrollViewportScript = `window.scrollBy(0, window.innerHeight); true`
)

// clickMoreScript finds a visible "more flights" control (the page rotates
// between several label variants) and clicks it. Returns whether a control
// was clicked.
const clickMoreScript = `
	(() => {
		const variants = ['More flights', 'View more flights', 'Show more flights'];
		const candidates = Array.from(document.querySelectorAll('button, div[role="button"]'));
		for (const el of candidates) {
			const text = (el.innerText || '').trim();
			if (!variants.some(v => text.includes(v))) continue;
			const rect = el.getBoundingClientRect();
			if (rect.width === 0 || rect.height === 0) continue;
			try {
				el.click();
			} catch (err) {
				continue;
			}
			return true;
		}
		return false;
	})()
`
