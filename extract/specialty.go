package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxSpecialties caps the result; beyond this the list stops being a
// profile and starts being the page's word cloud.
const maxSpecialties = 20

// specialtyDictionary is the Spanish medical-specialty vocabulary matched
// against the page text. Terms are stored in display casing's lower form;
// matching is case- and accent-insensitive.
var specialtyDictionary = []string{
	"medicina general",
	"medicina familiar",
	"medicina interna",
	"medicina estética",
	"odontología",
	"ortodoncia",
	"implantología",
	"endodoncia",
	"periodoncia",
	"odontopediatría",
	"pediatría",
	"cardiología",
	"dermatología",
	"ginecología",
	"obstetricia",
	"traumatología",
	"oftalmología",
	"otorrinolaringología",
	"neurología",
	"psiquiatría",
	"psicología",
	"fisioterapia",
	"osteopatía",
	"rehabilitación",
	"nutrición",
	"dietética",
	"endocrinología",
	"urología",
	"oncología",
	"radiología",
	"análisis clínicos",
	"cirugía general",
	"cirugía plástica",
	"cirugía estética",
	"podología",
	"logopedia",
	"alergología",
	"reumatología",
	"neumología",
}

// dictionaryPatterns pairs each folded dictionary term with a word-bounded
// regexp over folded text. Folding first keeps \b (ASCII word boundary)
// reliable despite the accented vocabulary.
var dictionaryPatterns = func() []struct {
	term string
	re   *regexp.Regexp
} {
	out := make([]struct {
		term string
		re   *regexp.Regexp
	}, 0, len(specialtyDictionary))
	for _, term := range specialtyDictionary {
		out = append(out, struct {
			term string
			re   *regexp.Regexp
		}{
			term: term,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(foldKey(term)) + `\b`),
		})
	}
	return out
}()

// reSpecialtyLabel finds a label like "Especialidades:" or "Servicios"
// followed by markup and a short text node.
var reSpecialtyLabel = regexp.MustCompile(`(?i)(?:especialidades?|servicios?)[^<]{0,20}(?:<[^>]+>\s*)+([^<]{5,80})`)

// Specialties extracts the set of medical specialties advertised on the
// page. Two strategies run unconditionally and their results are unioned:
// a dictionary scan over the normalized text and a structural scan over
// the markup. Entries are deduplicated case- and accent-insensitively,
// capped at 20 and title-cased. Order is first-discovery order and carries
// no meaning.
func Specialties(d *Document) []string {
	set := newSpecialtySet()

	// Strategy 1: dictionary scan over folded normalized text.
	folded := foldKey(d.Text)
	for _, p := range dictionaryPatterns {
		if p.re.MatchString(folded) {
			set.add(p.term)
		}
	}

	// Strategy 2: structural scan over the markup.
	for _, m := range reSpecialtyLabel.FindAllStringSubmatch(d.RawHTML, -1) {
		set.add(m[1])
	}
	if d.dom != nil {
		d.dom.Find("li[class], div[class], span[class], a[class]").Each(func(_ int, s *goquery.Selection) {
			class, _ := s.Attr("class")
			lc := strings.ToLower(class)
			if !strings.Contains(lc, "service") &&
				!strings.Contains(lc, "specialty") &&
				!strings.Contains(lc, "especialidad") {
				return
			}
			set.add(s.Text())
		})
	}

	return set.items
}

// specialtySet accumulates candidates with case/accent-insensitive dedup
// and the entry cap, title-casing on insertion.
type specialtySet struct {
	seen  map[string]struct{}
	items []string
}

func newSpecialtySet() *specialtySet {
	return &specialtySet{
		seen:  make(map[string]struct{}),
		items: []string{},
	}
}

func (s *specialtySet) add(candidate string) {
	candidate = collapseSpaces(candidate)
	if len(candidate) < 5 || len(candidate) > 80 {
		return
	}
	if strings.Contains(strings.ToLower(candidate), "http") {
		return
	}
	if len(s.items) >= maxSpecialties {
		return
	}

	key := foldKey(candidate)
	if _, dup := s.seen[key]; dup {
		return
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, titleCaseSpanish(candidate))
}
