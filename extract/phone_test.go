package extract

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{"nine digit national", "612345678", "+34612345678"},
		{"eleven digits with country code", "34612345678", "+34612345678"},
		{"already prefixed", "+34612345678", "+34612345678"},
		{"punctuation stripped", "91 234-56.78", "+34912345678"},
		{"too short", "12345678", ""},
		{"too long", "1234567890123456", ""},
		{"empty", "", ""},
		{"ten digits kept as-is", "6123456789", "6123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePhone(tt.candidate); got != tt.want {
				t.Errorf("normalizePhone(%q) = %q, want %q", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestPhone_StructuredDataTelephone(t *testing.T) {
	html := `
<script type="application/ld+json">{"@type": "MedicalBusiness", "telephone": "+34 912 345 678"}</script>
<a href="tel:600111222">llámanos</a>`

	if got := Phone(NewDocument(html)); got != "+34912345678" {
		t.Errorf("Phone() = %q, want %q", got, "+34912345678")
	}
}

func TestPhone_StructuredDataContactPoint(t *testing.T) {
	html := `<script type="application/ld+json">
{"@type": "Organization", "contactPoint": {"@type": "ContactPoint", "telephone": "612 345 678"}}
</script>`

	if got := Phone(NewDocument(html)); got != "+34612345678" {
		t.Errorf("Phone() = %q, want %q", got, "+34612345678")
	}
}

func TestPhone_TelLink(t *testing.T) {
	html := `<body><a href="tel:+34 911 22 33 44">Teléfono</a></body>`

	if got := Phone(NewDocument(html)); got != "+34911223344" {
		t.Errorf("Phone() = %q, want %q", got, "+34911223344")
	}
}

func TestPhone_InvalidCandidateFallsThrough(t *testing.T) {
	// The first tel: target is too short after stripping; the scan must
	// move on to the next candidate instead of giving up.
	html := `
<a href="tel:112">emergencias</a>
<a href="tel:912345678">cita previa</a>`

	if got := Phone(NewDocument(html)); got != "+34912345678" {
		t.Errorf("Phone() = %q, want %q", got, "+34912345678")
	}
}

func TestPhone_LabelPattern(t *testing.T) {
	html := `<body><p>Teléfono: 91 234 56 78 — atención al paciente</p></body>`

	if got := Phone(NewDocument(html)); got != "+34912345678" {
		t.Errorf("Phone() = %q, want %q", got, "+34912345678")
	}
}

func TestPhone_SpanishMobilePattern(t *testing.T) {
	html := `<body><p>Llámanos al 612 345 678 y reserva tu cita.</p></body>`

	if got := Phone(NewDocument(html)); got != "+34612345678" {
		t.Errorf("Phone() = %q, want %q", got, "+34612345678")
	}
}

func TestPhone_MobileWithCountryPrefix(t *testing.T) {
	html := `<body><span>+34 699 888 777</span></body>`

	if got := Phone(NewDocument(html)); got != "+34699888777" {
		t.Errorf("Phone() = %q, want %q", got, "+34699888777")
	}
}

func TestPhone_NothingFound(t *testing.T) {
	html := `<body><p>Escríbenos un correo.</p></body>`

	if got := Phone(NewDocument(html)); got != "" {
		t.Errorf("Phone() = %q, want empty", got)
	}
}
