package scraper

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var meridiemOffsetPattern = regexp.MustCompile(`([AP]M)(\+\d)`)

// normalize folds page text into a predictable form: NFKC normalization,
// non-breaking spaces replaced with ordinary spaces, surrounding whitespace
// trimmed, and a space inserted between a meridiem marker and a trailing
// day-offset suffix ("10:45 PM+1") so later regex matching is reliable.
func normalize(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, " ", " ")
	text = strings.ReplaceAll(text, " ", " ")
	text = strings.TrimSpace(text)
	return meridiemOffsetPattern.ReplaceAllString(text, "$1 $2")
}
