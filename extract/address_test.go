package extract

import "testing"

func TestAddress_StructuredDataString(t *testing.T) {
	html := `<script type="application/ld+json">
{"@type": "MedicalBusiness", "address": "Calle Mayor 12, 28013 Madrid"}
</script>`

	want := "Calle Mayor 12, 28013 Madrid"
	if got := Address(NewDocument(html)); got != want {
		t.Errorf("Address() = %q, want %q", got, want)
	}
}

func TestAddress_StructuredDataObject(t *testing.T) {
	html := `<script type="application/ld+json">
{"@type": "Organization", "address": {
	"@type": "PostalAddress",
	"streetAddress": "Avenida de la Paz 4",
	"addressLocality": "Sevilla",
	"postalCode": "41001"
}}</script>`

	want := "Avenida de la Paz 4, Sevilla, 41001"
	if got := Address(NewDocument(html)); got != want {
		t.Errorf("Address() = %q, want %q", got, want)
	}
}

func TestAddress_StructuredDataObjectSkipsMissingParts(t *testing.T) {
	html := `<script type="application/ld+json">
{"address": {"streetAddress": "Plaza España 1", "postalCode": "50001"}}
</script>`

	want := "Plaza España 1, 50001"
	if got := Address(NewDocument(html)); got != want {
		t.Errorf("Address() = %q, want %q", got, want)
	}
}

func TestAddress_LabelPattern(t *testing.T) {
	html := `<body><p>Dirección: Calle de Alcalá 200, 2º izquierda, 28028 Madrid</p></body>`

	if got := Address(NewDocument(html)); got == "" {
		t.Error("Address() = empty, want the labeled address")
	} else if len(got) <= 20 || len(got) >= 200 {
		t.Errorf("Address() length %d outside (20,200): %q", len(got), got)
	}
}

func TestAddress_StreetPattern(t *testing.T) {
	html := `<body><footer>Estamos en Avenida Diagonal 512, entresuelo, Barcelona</footer></body>`

	got := Address(NewDocument(html))
	if got == "" {
		t.Fatal("Address() = empty, want street match")
	}
	if len(got) <= 20 || len(got) >= 200 {
		t.Errorf("Address() length %d outside (20,200): %q", len(got), got)
	}
}

func TestAddress_RejectsTooShortCandidates(t *testing.T) {
	// "Calle Sol 3" style fragments are below the length gate; with no
	// other source the extractor must return empty, not the fragment.
	html := `<body><p>Dirección: Calle Sol 3</p></body>`

	if got := Address(NewDocument(html)); got != "" {
		t.Errorf("Address() = %q, want empty for a fragment", got)
	}
}

func TestAddress_ItempropFallback(t *testing.T) {
	html := `<body><span itemprop="streetAddress">
	Calle   del Carmen 9
</span></body>`

	want := "Calle del Carmen 9"
	if got := Address(NewDocument(html)); got != want {
		t.Errorf("Address() = %q, want %q", got, want)
	}
}

func TestAddress_NothingFound(t *testing.T) {
	if got := Address(NewDocument(`<body><p>Bienvenidos a la clínica.</p></body>`)); got != "" {
		t.Errorf("Address() = %q, want empty", got)
	}
}
