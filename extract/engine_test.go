package extract

import "testing"

// clinicPage is a realistic page exercising every extractor at once.
const clinicPage = `<!DOCTYPE html>
<html lang="es">
<head>
<title>Clínica Dental Sonrisas | Madrid</title>
<meta property="og:site_name" content="Clínica Dental Sonrisas">
<script type="application/ld+json">
{
	"@context": "https://schema.org",
	"@type": "MedicalBusiness",
	"name": "Clínica Dental Sonrisas",
	"telephone": "+34 912 345 678",
	"address": {
		"@type": "PostalAddress",
		"streetAddress": "Calle de Alcalá 200",
		"addressLocality": "Madrid",
		"postalCode": "28028"
	}
}
</script>
<style>.hero { background: url(x.jpg); }</style>
</head>
<body>
<h1>Clínica Dental Sonrisas</h1>
<p>Ofrecemos odontología, ortodoncia e implantología para toda la familia.</p>
<p>Horario: Lunes a Viernes de 9:00 a 20:00, Sábados de 10:00 a 14:00</p>
<ul>
	<li class="service-card">Blanqueamiento dental profesional</li>
</ul>
<footer><a href="tel:+34912345678">Llámanos</a></footer>
</body>
</html>`

func TestExtract_FullPage(t *testing.T) {
	info := Extract(clinicPage)

	if info.Name != "Clínica Dental Sonrisas" {
		t.Errorf("Name = %q", info.Name)
	}
	if info.Phone != "+34912345678" {
		t.Errorf("Phone = %q", info.Phone)
	}
	if info.Address != "Calle de Alcalá 200, Madrid, 28028" {
		t.Errorf("Address = %q", info.Address)
	}
	if len(info.Specialties) == 0 {
		t.Fatal("Specialties empty")
	}
	if !contains(info.Specialties, "Odontología") {
		t.Errorf("Specialties = %v, missing Odontología", info.Specialties)
	}
	if !contains(info.Specialties, "Blanqueamiento Dental Profesional") {
		t.Errorf("Specialties = %v, missing class-scanned entry", info.Specialties)
	}
	if info.Schedule == "" {
		t.Error("Schedule empty")
	}
}

func TestExtract_PlaceholdersStayEmpty(t *testing.T) {
	info := Extract(clinicPage)

	if len(info.Doctors) != 0 || info.Doctors == nil {
		t.Errorf("Doctors = %v, want empty non-nil slice", info.Doctors)
	}
	if len(info.OpeningHours) != 0 || info.OpeningHours == nil {
		t.Errorf("OpeningHours = %v, want empty non-nil map", info.OpeningHours)
	}
	if info.AdditionalInfo != "" {
		t.Errorf("AdditionalInfo = %q, want empty", info.AdditionalInfo)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	info := Extract("")

	if info.Name != "" || info.Phone != "" || info.Address != "" || info.Schedule != "" {
		t.Errorf("Extract(\"\") produced non-empty fields: %+v", info)
	}
	if info.Specialties == nil || len(info.Specialties) != 0 {
		t.Errorf("Specialties = %v, want empty non-nil slice", info.Specialties)
	}
}

func TestExtract_GarbageInputDoesNotPanic(t *testing.T) {
	inputs := []string{
		"not html at all",
		"<html><script type=\"application/ld+json\">{broken</script>",
		"<<<>>>",
		"\x00\x01\x02",
	}
	for _, in := range inputs {
		info := Extract(in)
		_ = info
	}
}
