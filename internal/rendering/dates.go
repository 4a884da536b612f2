package rendering

import (
	"strings"
	"time"
)

// FormatMonthYear converts a YYYY-MM date string to a human month/year
// label, e.g. "2022-03" becomes "Mar 2022". Empty or malformed input yields
// an empty label rather than an error.
func FormatMonthYear(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01", date)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2006")
}

// dateRange joins a start and end date with " - ". When current is true the
// end label is always "Present" and any end date is ignored. Empty parts are
// dropped; an entry with no dates yields an empty string.
func dateRange(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	parts := make([]string, 0, 2)
	if start != "" {
		parts = append(parts, start)
	}
	if end != "" {
		parts = append(parts, end)
	}
	return strings.Join(parts, " - ")
}

// formattedDateRange is dateRange with both dates run through
// FormatMonthYear, used by the HTML renderer.
func formattedDateRange(start, end string, current bool) string {
	if current {
		return dateRange(FormatMonthYear(start), "", true)
	}
	return dateRange(FormatMonthYear(start), FormatMonthYear(end), false)
}
