package extract

import "strings"

// organizationTypes are the JSON-LD types whose name field is most likely
// the clinic's actual business name.
var organizationTypes = []string{"Organization", "MedicalOrganization", "MedicalBusiness"}

// Name extracts the clinic's business name. Best-effort: the only
// validation is "non-empty after trimming".
func Name(d *Document) string {
	return firstNonEmpty(d,
		nameFromStructuredData,
		nameFromMetaTags,
		nameFromTitle,
		nameFromHeading,
	)
}

// nameFromStructuredData prefers organization-typed records, then takes a
// name from any record at all.
func nameFromStructuredData(d *Document) string {
	for _, r := range d.Records {
		if r.HasType(organizationTypes...) {
			if name := r.Str("name"); name != "" {
				return name
			}
		}
	}
	for _, r := range d.Records {
		if name := r.Str("name"); name != "" {
			return name
		}
	}
	return ""
}

// nameFromMetaTags checks the social-sharing meta tags, which most site
// builders fill in even when nothing else is structured.
func nameFromMetaTags(d *Document) string {
	if d.dom == nil {
		return ""
	}
	for _, sel := range []string{
		`meta[property="og:site_name"]`,
		`meta[property="og:title"]`,
		`meta[name="twitter:title"]`,
	} {
		if content, ok := d.dom.Find(sel).First().Attr("content"); ok {
			if v := strings.TrimSpace(content); v != "" {
				return v
			}
		}
	}
	return ""
}

// nameFromTitle takes the <title> text, discarding tagline suffixes:
// "Clínica Sonrisas | Madrid" and "Clínica Sonrisas - Pide cita" both
// yield "Clínica Sonrisas". The space-padded hyphen rule keeps hyphenated
// business names intact.
func nameFromTitle(d *Document) string {
	if d.dom == nil {
		return ""
	}
	title := collapseSpaces(d.dom.Find("title").First().Text())
	if i := strings.Index(title, "|"); i >= 0 {
		title = title[:i]
	}
	if i := strings.Index(title, " - "); i >= 0 {
		title = title[:i]
	}
	return title
}

// nameFromHeading falls back to the first <h1> on the page.
func nameFromHeading(d *Document) string {
	if d.dom == nil {
		return ""
	}
	return collapseSpaces(d.dom.Find("h1").First().Text())
}
