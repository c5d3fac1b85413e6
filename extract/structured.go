package extract

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
)

// StructuredRecord is one JSON-LD object found on the page. Clinic sites
// built on common CMSes often emit Organization / MedicalOrganization /
// MedicalBusiness records with name, telephone and address — when present
// they beat any text heuristic.
type StructuredRecord map[string]any

// reJSONLD matches <script type="application/ld+json"> blocks. It is
// deliberately lenient: the type attribute may appear anywhere in the tag,
// with either quote style.
var reJSONLD = regexp.MustCompile(`(?is)<script[^>]*type\s*=\s*["']application/ld\+json["'][^>]*>(.*?)</script\s*>`)

// ParseStructuredData scans rawHTML for JSON-LD blocks and decodes every
// syntactically valid one. Malformed blocks are common in the wild and are
// skipped silently — a broken marketing plugin must not break the scrape.
// Top-level arrays and @graph wrappers are flattened into individual records.
func ParseStructuredData(rawHTML string) []StructuredRecord {
	var records []StructuredRecord
	for _, m := range reJSONLD.FindAllStringSubmatch(rawHTML, -1) {
		payload := strings.TrimSpace(m[1])
		if payload == "" {
			continue
		}

		var decoded any
		if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
			slog.Debug("structured data: skipping malformed JSON-LD block", "error", err)
			continue
		}
		records = append(records, flattenRecords(decoded)...)
	}
	return records
}

// flattenRecords normalizes the decoded JSON-LD shapes (single object,
// array of objects, @graph wrapper) into a flat record list. Non-object
// values are discarded.
func flattenRecords(v any) []StructuredRecord {
	switch t := v.(type) {
	case map[string]any:
		if graph, ok := t["@graph"].([]any); ok {
			var out []StructuredRecord
			for _, g := range graph {
				out = append(out, flattenRecords(g)...)
			}
			return out
		}
		return []StructuredRecord{StructuredRecord(t)}
	case []any:
		var out []StructuredRecord
		for _, e := range t {
			out = append(out, flattenRecords(e)...)
		}
		return out
	default:
		return nil
	}
}

// HasType reports whether the record's "@type" matches any of names.
// The field may be a single string or a list of strings.
func (r StructuredRecord) HasType(names ...string) bool {
	match := func(t string) bool {
		for _, n := range names {
			if strings.EqualFold(t, n) {
				return true
			}
		}
		return false
	}

	switch t := r["@type"].(type) {
	case string:
		return match(t)
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok && match(s) {
				return true
			}
		}
	}
	return false
}

// Str returns the trimmed string value for key, or "" when the key is
// absent or not a string.
func (r StructuredRecord) Str(key string) string {
	if s, ok := r[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// Child returns the nested object under key. When the key holds an array
// of objects the first one is returned. Returns nil when there is none.
func (r StructuredRecord) Child(key string) StructuredRecord {
	switch t := r[key].(type) {
	case map[string]any:
		return StructuredRecord(t)
	case []any:
		for _, e := range t {
			if m, ok := e.(map[string]any); ok {
				return StructuredRecord(m)
			}
		}
	}
	return nil
}
