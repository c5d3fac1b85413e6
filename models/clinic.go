package models

// ClinicInfo is the structured record recovered from a clinic website.
//
// Every field is best-effort: an empty value means "could not be determined
// automatically", never an application error. The onboarding UI presents
// empty fields for manual completion.
type ClinicInfo struct {
	// Name is the clinic's business name.
	Name string `json:"name"`

	// Phone is the contact number, normalized to digits with a leading "+"
	// when a country code was detected (e.g. "+34612345678").
	Phone string `json:"phone"`

	// Address is the postal address as free text (20-200 chars when present).
	Address string `json:"address"`

	// Specialties lists medical specialties found on the page, title-cased,
	// deduplicated case-insensitively, capped at 20 entries. Order is the
	// order of first discovery and carries no meaning.
	Specialties []string `json:"specialties"`

	// Schedule is the opening-hours description as free text
	// (20-300 chars when present).
	Schedule string `json:"schedule"`

	// Doctors, OpeningHours and AdditionalInfo are reserved for future
	// enrichment stages. The extraction engine leaves them empty.
	Doctors        []string          `json:"doctors"`
	OpeningHours   map[string]string `json:"opening_hours"`
	AdditionalInfo string            `json:"additional_info"`
}

// EmptyClinicInfo returns a ClinicInfo with all fields at their empty values.
// Slices and maps are allocated so the JSON encoding is [] / {} rather than
// null — the form-prefill clients iterate these without nil checks.
func EmptyClinicInfo() ClinicInfo {
	return ClinicInfo{
		Specialties:  []string{},
		Doctors:      []string{},
		OpeningHours: map[string]string{},
	}
}
