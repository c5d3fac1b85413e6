package extract

import (
	"regexp"
	"strings"
)

var (
	// "Horario:" / "Horarios de atención" followed by free text.
	reScheduleLabel = regexp.MustCompile(`(?i)horarios?(?:\s+de\s+atenci[óo]n)?[:\s]+(.{30,300})`)

	// A span starting at one day name and ending near another, optionally
	// trailed by a time range ("Lunes ... Viernes de 9:00 a 20:00").
	reDaySpan = regexp.MustCompile(`(?i)\b(?:lunes|monday)\b.{10,200}?\b(?:viernes|domingo|friday|sunday)\b(?:[\s:]*(?:de\s*)?\d{1,2}:\d{2}\s*(?:a|-|–|hasta)\s*\d{1,2}:\d{2})?`)

	// Two HH:MM times with filler between them.
	reTimeSpan = regexp.MustCompile(`\b\d{1,2}:\d{2}\b.{10,150}?\b\d{1,2}:\d{2}\b`)
)

// Schedule extracts the opening-hours description as free text from the
// normalized page text.
func Schedule(d *Document) string {
	return firstNonEmpty(d,
		scheduleFromLabel,
		scheduleFromDaySpan,
		scheduleFromTimeSpan,
	)
}

// validSchedule gates candidates to a plausible free-text length.
func validSchedule(s string) bool {
	n := len(strings.TrimSpace(s))
	return n >= 20 && n <= 300
}

func scheduleFromLabel(d *Document) string {
	for _, m := range reScheduleLabel.FindAllStringSubmatch(d.Text, -1) {
		if validSchedule(m[1]) {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func scheduleFromDaySpan(d *Document) string {
	for _, m := range reDaySpan.FindAllString(d.Text, -1) {
		if validSchedule(m) {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

func scheduleFromTimeSpan(d *Document) string {
	for _, m := range reTimeSpan.FindAllString(d.Text, -1) {
		if validSchedule(m) {
			return strings.TrimSpace(m)
		}
	}
	return ""
}
