package extract

import (
	"regexp"
	"strings"
)

var (
	// A location label followed by free text. The capture is bounded at
	// 150 chars; the length gate below does the real filtering.
	reAddressLabel = regexp.MustCompile(`(?i)(?:direcci[óo]n|ubicaci[óo]n|d[óo]nde estamos|nos encontramos)[:\s]+(.{20,150})`)

	// A street indicator followed by a number and trailing context:
	// "Calle Mayor 12, 28013 Madrid, junto al metro".
	reStreet = regexp.MustCompile(`(?i)\b(?:calle|c/|avenida|av\.|plaza|pl\.)\s[^<>]{0,40}?\d+[^<>]{0,80}`)
)

// Address extracts the clinic's postal address as free text.
func Address(d *Document) string {
	return firstNonEmpty(d,
		addressFromStructuredData,
		addressFromLabels,
		addressFromStreetPattern,
		addressFromItemprop,
	)
}

// validAddress gates pattern candidates. The bounds come from the shape of
// real matches: below ~20 chars it is a fragment ("Calle Mayor 12"),
// above ~200 the pattern swallowed surrounding copy.
func validAddress(s string) bool {
	n := len(strings.TrimSpace(s))
	return n > 20 && n < 200
}

// addressFromStructuredData reads the JSON-LD address, which may be a plain
// string or a PostalAddress object whose parts are joined with ", ".
func addressFromStructuredData(d *Document) string {
	for _, r := range d.Records {
		switch v := r["address"].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case map[string]any:
			addr := StructuredRecord(v)
			var parts []string
			for _, key := range []string{"streetAddress", "addressLocality", "postalCode"} {
				if p := addr.Str(key); p != "" {
					parts = append(parts, p)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, ", ")
			}
		}
	}
	return ""
}

func addressFromLabels(d *Document) string {
	for _, m := range reAddressLabel.FindAllStringSubmatch(d.Text, -1) {
		if validAddress(m[1]) {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func addressFromStreetPattern(d *Document) string {
	for _, m := range reStreet.FindAllString(d.Text, -1) {
		if validAddress(m) {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// addressFromItemprop is the last resort: microdata markup on an element,
// e.g. <span itemprop="streetAddress">.
func addressFromItemprop(d *Document) string {
	if d.dom == nil {
		return ""
	}
	return collapseSpaces(d.dom.Find(`[itemprop="streetAddress"]`).First().Text())
}
