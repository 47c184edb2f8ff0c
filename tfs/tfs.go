// Package tfs rewrites the departure date embedded in the opaque `tfs`
// query parameter of a Google Flights search URL.
//
// The parameter is an undocumented base64url blob. The only structure
// assumed here is that its decoded bytes contain one literal YYYY-MM-DD
// substring. Rewriting patches exactly those ten bytes and leaves the rest
// of the blob untouched. Every failure mode is a no-op: a possibly
// wrong-date fetch is preferred over aborting the run.
package tfs

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const paramName = "tfs"

var (
	isoDatePattern   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	yearChunkPattern = regexp.MustCompile(`Egoy[A-Za-z0-9_-]{4}`)
	yearPattern      = regexp.MustCompile(`20\d{2}`)
)

// RewriteDate returns baseURL with the departure date inside the tfs
// parameter replaced by d. If the parameter is absent, not decodable, or
// contains no recognizable date, baseURL is returned unchanged.
func RewriteDate(baseURL string, d time.Time) string {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	query := parsed.Query()
	value := query.Get(paramName)
	if value == "" {
		return baseURL
	}

	decoded, err := decodeLoose(value)
	if err != nil {
		return baseURL
	}

	patched, ok := PatchDate(decoded, d)
	if !ok {
		return baseURL
	}

	query.Set(paramName, base64.RawURLEncoding.EncodeToString(patched))
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// PatchDate replaces the first YYYY-MM-DD substring in blob with d's ISO
// form, preserving every other byte. It reports false when blob holds no
// date substring. The input slice is never modified.
func PatchDate(blob []byte, d time.Time) ([]byte, bool) {
	loc := isoDatePattern.FindIndex(blob)
	if loc == nil {
		return nil, false
	}
	patched := make([]byte, 0, len(blob))
	patched = append(patched, blob[:loc[0]]...)
	patched = append(patched, d.Format("2006-01-02")...)
	patched = append(patched, blob[loc[1]:]...)
	return patched, true
}

// ReferenceYear recovers the departure year embedded in the tfs parameter.
// It scans the still-encoded text for a short recognizable prefix, decodes
// just that fragment and looks for a four-digit year. The second return is
// false when no year could be recovered; callers should fall back to the
// current calendar year.
func ReferenceYear(baseURL string) (int, bool) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return 0, false
	}
	value := parsed.Query().Get(paramName)
	if value == "" {
		return 0, false
	}
	chunk := yearChunkPattern.FindString(value)
	if chunk == "" {
		return 0, false
	}
	decoded, err := decodeLoose(chunk)
	if err != nil {
		return 0, false
	}
	match := yearPattern.Find(decoded)
	if match == nil {
		return 0, false
	}
	year, err := strconv.Atoi(string(match))
	if err != nil {
		return 0, false
	}
	return year, true
}

// decodeLoose base64url-decodes s, tolerating the missing padding Google
// strips from the parameter.
func decodeLoose(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
