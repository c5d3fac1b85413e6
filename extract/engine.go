// Package extract recovers structured clinic facts from arbitrary website
// HTML. There is no guaranteed markup, no API and usually no structured
// data, so each field is produced by a priority-ordered chain of independent
// heuristics; whatever cannot be recovered degrades to an empty value.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/clinivoz/sitescan/models"
)

// Document bundles the three read-only views of a fetched page that the
// field extractors consume: the raw HTML, the decoded JSON-LD records and
// the normalized plain text. It is built once per scrape and never mutated.
type Document struct {
	// RawHTML is the page exactly as fetched.
	RawHTML string

	// Records holds every JSON-LD object that decoded cleanly.
	Records []StructuredRecord

	// Text is the plain-text view of the page (see NormalizeText).
	Text string

	// dom is the parsed document, nil when the HTML would not parse.
	dom *goquery.Document
}

// NewDocument parses rawHTML into the shared extractor inputs.
func NewDocument(rawHTML string) *Document {
	d := &Document{
		RawHTML: rawHTML,
		Records: ParseStructuredData(rawHTML),
		Text:    NormalizeText(rawHTML),
	}
	if dom, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML)); err == nil {
		d.dom = dom
	}
	return d
}

// strategy is one heuristic in a waterfall. An empty return means
// "no match, try the next one" — it is an expected outcome, not an error.
type strategy func(*Document) string

// firstNonEmpty runs strategies in priority order and returns the first
// non-empty trimmed result, or "" when every heuristic missed.
func firstNonEmpty(d *Document, strategies ...strategy) string {
	for _, s := range strategies {
		if v := strings.TrimSpace(s(d)); v != "" {
			return v
		}
	}
	return ""
}

// Extract runs the full pipeline over one fetched page and assembles the
// result record. It never fails: fields the heuristics could not recover
// are empty, and the reserved enrichment fields stay at their placeholders.
func Extract(rawHTML string) models.ClinicInfo {
	d := NewDocument(rawHTML)

	info := models.EmptyClinicInfo()
	info.Name = Name(d)
	info.Phone = Phone(d)
	info.Address = Address(d)
	info.Specialties = Specialties(d)
	info.Schedule = Schedule(d)
	return info
}

// collapseSpaces reduces any whitespace runs to single spaces and trims.
func collapseSpaces(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
