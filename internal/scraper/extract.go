package scraper

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/dmv-dates/internal/logger"
)

const (
	// AlertSelector marks the notice elements on the availability page
	AlertSelector = ".alert"

	// DateLayout matches e.g. "Thursday, December 31, 2015 at 9:00 AM"
	DateLayout = "Monday, January 2, 2006 at 3:04 PM"

	// availabilityIndex skips the leading disclaimer notice
	availabilityIndex = 1
)

// ExtractDate parses an availability page and returns the earliest
// appointment it announces, interpreted as UTC wall-clock time.
func ExtractDate(r io.Reader) (time.Time, error) {
	return extractDate(r, time.UTC)
}

// extractDate locates the availability notice and parses it in loc
func extractDate(r io.Reader, loc *time.Location) (time.Time, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return time.Time{}, &ExtractionError{Reason: "parsing HTML", Err: err}
	}

	alerts := doc.Find(AlertSelector)
	if alerts.Length() <= availabilityIndex {
		texts := alerts.Map(func(_ int, sel *goquery.Selection) string {
			return strings.TrimSpace(sel.Text())
		})
		logger.Debug("Availability notice not found", logger.Fields{
			"selector": AlertSelector,
			"matched":  texts,
		})
		return time.Time{}, &ExtractionError{
			Reason: fmt.Sprintf("found %d %s elements, want at least %d", len(texts), AlertSelector, availabilityIndex+1),
		}
	}

	raw := strings.TrimSpace(alerts.Eq(availabilityIndex).Text())
	date, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, &ExtractionError{Reason: fmt.Sprintf("parsing %q", raw), Err: err}
	}

	return date, nil
}
