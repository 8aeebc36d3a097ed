package model

import (
	"strings"
	"time"
)

// Normalize trims the raw input and maps blank values to nil. The transport
// layer never receives "" as a filter value, only nil or a non-empty
// trimmed string.
func Normalize(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

// DoctorFilter is the directory's filter triple.
type DoctorFilter struct {
	Name      *string
	Time      *string
	Specialty *string
}

// ScheduleFilter drives one appointment-table reload.
type ScheduleFilter struct {
	Date        string
	PatientName *string
}

// DateFormat is the wire format for schedule dates.
const DateFormat = "2006-01-02"

// Today returns the current local date in YYYY-MM-DD form.
func Today(now func() time.Time) string {
	if now == nil {
		now = time.Now
	}
	return now().Format(DateFormat)
}
