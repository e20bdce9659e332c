package notifier

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/dmv-dates/internal/availability"
)

// MaxListed caps how many offices a message mentions
const MaxListed = 3

// Notifier defines the interface for posting availability notifications
type Notifier interface {
	// Notify posts a notification for results, sorted soonest first
	Notify(results []availability.Result) error
}

// FormatMessage summarizes the soonest offices as plain text
func FormatMessage(results []availability.Result) string {
	if len(results) == 0 {
		return "No behind-the-wheel appointments available."
	}

	var b strings.Builder
	b.WriteString("Behind-the-wheel test openings:\n")
	for i, res := range results {
		if i == MaxListed {
			fmt.Fprintf(&b, "+%d more offices\n", len(results)-MaxListed)
			break
		}
		fmt.Fprintf(&b, "%s - %s\n", res.Office.Name, res.Date.Format("Mon Jan 2 3:04 PM"))
	}
	return strings.TrimRight(b.String(), "\n")
}
