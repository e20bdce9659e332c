package cli

import (
	"slices"
	"strings"

	"github.com/pfrederiksen/dmv-dates/internal/availability"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDate   SortOrder = "date"
	SortByOffice SortOrder = "office"
)

// sortResults reorders results for display. Results arrive sorted by date,
// so SortByDate leaves them untouched.
func sortResults(results []availability.Result, order SortOrder) {
	if order != SortByOffice {
		return
	}
	slices.SortStableFunc(results, func(a, b availability.Result) int {
		return strings.Compare(a.Office.Name, b.Office.Name)
	})
}
