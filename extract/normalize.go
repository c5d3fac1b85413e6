package extract

import (
	"regexp"
	"strings"
)

var (
	reScriptBlock = regexp.MustCompile(`(?is)<script[^>]*>.*?</script\s*>`)
	reStyleBlock  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style\s*>`)
	reAnyTag      = regexp.MustCompile(`(?s)<[^>]+>`)
	reWhitespace  = regexp.MustCompile(`\s+`)
)

// entityReplacer decodes the four entities that actually show up in clinic
// site text. Full entity decoding is not worth it for pattern matching.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
)

// NormalizeText converts raw HTML into a single plain-text line used as the
// fallback corpus for the pattern extractors. In order: script and style
// blocks go (content included), remaining tags go, common entities are
// decoded, whitespace runs collapse to single spaces, ends are trimmed.
//
// The function is pure, and idempotent for ordinary page text: a second
// pass over its own output returns the identical string. The one caveat
// is text carrying encoded markup (&lt;b&gt; and the like) — the entity
// step decodes it to literal angle brackets, which a re-run would strip
// as tags. Entity decoding must stay after tag stripping so encoded
// fragments never count as structure on the first pass.
func NormalizeText(rawHTML string) string {
	s := reScriptBlock.ReplaceAllString(rawHTML, " ")
	s = reStyleBlock.ReplaceAllString(s, " ")
	s = reAnyTag.ReplaceAllString(s, " ")
	s = entityReplacer.Replace(s)
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
