package extract

import (
	"regexp"
	"strings"
)

var (
	// tel: hyperlink targets, the most reliable in-page source.
	reTelHref = regexp.MustCompile(`(?i)href\s*=\s*["']tel:([^"']+)["']`)

	// A contact label followed by a run of digits and phone punctuation.
	rePhoneLabel = regexp.MustCompile(`(?i)(?:tel[ée]fono|contacto)[:\s]*([+(]?\d[\d\s\-.()/]{7,})`)

	// Spanish mobile/landline shape, with or without the +34 prefix.
	reSpanishPhone = regexp.MustCompile(`(?:\+34[\s\-.]?)?[6-9]\d{2}[\s\-.]?\d{3}[\s\-.]?\d{3}`)

	reNonPhoneRune = regexp.MustCompile(`[^0-9+]`)
)

// Phone extracts a contact phone number, normalized to digits plus a
// leading "+" when a country code is recognized.
func Phone(d *Document) string {
	return firstNonEmpty(d,
		phoneFromStructuredData,
		phoneFromTelLinks,
		phoneFromLabels,
		phoneFromSpanishPattern,
	)
}

// normalizePhone strips everything but digits and "+", validates the
// length, and applies the Spanish national-number assumptions:
//
//	"34612345678" (11 chars starting 34) → "+34612345678"
//	"612345678"   (9 digits, no "+")     → "+34612345678"
//
// Returns "" for candidates outside the 9-15 character range so the
// caller moves on to the next match.
func normalizePhone(candidate string) string {
	stripped := reNonPhoneRune.ReplaceAllString(candidate, "")
	if len(stripped) < 9 || len(stripped) > 15 {
		return ""
	}
	if !strings.HasPrefix(stripped, "+") {
		if len(stripped) == 11 && strings.HasPrefix(stripped, "34") {
			return "+" + stripped
		}
		if len(stripped) == 9 {
			return "+34" + stripped
		}
	}
	return stripped
}

// firstValidPhone scans re's matches over input in document order and
// returns the first candidate that survives normalization.
func firstValidPhone(re *regexp.Regexp, input string) string {
	for _, m := range re.FindAllStringSubmatch(input, -1) {
		candidate := m[0]
		if len(m) > 1 {
			candidate = m[1]
		}
		if phone := normalizePhone(candidate); phone != "" {
			return phone
		}
	}
	return ""
}

func phoneFromStructuredData(d *Document) string {
	for _, r := range d.Records {
		if tel := r.Str("telephone"); tel != "" {
			if phone := normalizePhone(tel); phone != "" {
				return phone
			}
		}
		if cp := r.Child("contactPoint"); cp != nil {
			if phone := normalizePhone(cp.Str("telephone")); phone != "" {
				return phone
			}
		}
	}
	return ""
}

func phoneFromTelLinks(d *Document) string {
	return firstValidPhone(reTelHref, d.RawHTML)
}

func phoneFromLabels(d *Document) string {
	return firstValidPhone(rePhoneLabel, d.RawHTML)
}

func phoneFromSpanishPattern(d *Document) string {
	return firstValidPhone(reSpanishPhone, d.RawHTML)
}
