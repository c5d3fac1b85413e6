package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks after NFD decomposition, so
// "odontología", "odontologìa" and "odontologia" reduce to the same key.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldKey lowercases s and removes diacritics. Used as the case- and
// accent-insensitive identity of specialty terms.
func foldKey(s string) string {
	out, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// titleCaseSpanish renders a specialty term for display ("medicina general"
// → "Medicina General"). Casers are not safe for concurrent use, so one is
// created per call.
func titleCaseSpanish(s string) string {
	return cases.Title(language.Spanish).String(strings.ToLower(s))
}
