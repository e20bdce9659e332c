package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/dmv-dates/internal/availability"
	"github.com/pfrederiksen/dmv-dates/internal/calendar"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt time.Time             `json:"checked_at"`
	Results   []availability.Result `json:"results"`
	Count     int                   `json:"count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	case FormatICS:
		_, err := io.WriteString(w, calendar.GenerateICS(result.Results, result.CheckedAt))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs one "<office name> <timestamp>" line per office
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.Count == 0 {
		fmt.Fprintln(w, "No appointments found.")
		return nil
	}

	for _, res := range result.Results {
		if verbose {
			fmt.Fprintf(w, "%s (office %d)\n", res.String(), res.Office.ID)
		} else {
			fmt.Fprintln(w, res.String())
		}
	}

	if verbose {
		fmt.Fprintf(w, "\nTotal: %d offices with availability\n", result.Count)
	}
	return nil
}
