// Package calendar renders behind-the-wheel availability as iCalendar data.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/dmv-dates/internal/availability"
)

// SlotDuration is the length given to each appointment entry
const SlotDuration = 30 * time.Minute

const bookingURL = "https://www.dmv.ca.gov/portal/appointments/"

// GenerateICS generates an iCalendar (.ics) document with one event per
// office, holding that office's earliest open slot.
func GenerateICS(results []availability.Result, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//DMV Dates//dmv-dates//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	for _, res := range results {
		writeEvent(&ics, res, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, res availability.Result, now time.Time) {
	start := res.Date
	end := start.Add(SlotDuration)

	ics.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(ics, "UID:%d-%s@dmv-dates\r\n", res.Office.ID, formatICSTime(start))
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", formatICSTime(now))
	fmt.Fprintf(ics, "DTSTART:%s\r\n", formatICSTime(start))
	fmt.Fprintf(ics, "DTEND:%s\r\n", formatICSTime(end))
	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS("Behind-the-wheel test - "+res.Office.Name))
	fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(fmt.Sprintf(
		"Earliest open drive test slot at %s DMV (office %d).\nBook at: %s",
		res.Office.Name, res.Office.ID, bookingURL)))
	fmt.Fprintf(ics, "LOCATION:%s\r\n", escapeICS(res.Office.Name+" DMV, CA"))
	fmt.Fprintf(ics, "URL:%s\r\n", bookingURL)
	ics.WriteString("STATUS:TENTATIVE\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// RFC 5545 text escaping
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
