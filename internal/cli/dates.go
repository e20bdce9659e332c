package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/dmv-dates/internal/logger"
	"github.com/spf13/cobra"
)

var (
	flagRefresh     bool
	flagFormat      string
	flagLimit       int
	flagSort        string
	flagConcurrency int
	flagStats       bool
)

func newDatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "Show the earliest behind-the-wheel test date at every office",
		Long: `Query every DMV office for its earliest behind-the-wheel test appointment
and print the offices soonest first. Offices whose page shows no availability
are left out; a network failure stops the query.`,
		Args: cobra.NoArgs,
		RunE: runDates,
	}

	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Ignore cached results and query every office")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json or ics")
	cmd.Flags().IntVar(&flagLimit, "limit", 0, "Only show the N soonest offices (0 for all)")
	cmd.Flags().StringVar(&flagSort, "sort", "date", "Sort order: date or office")
	cmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "Offices queried at once (default $DMV_CONCURRENCY or 1)")
	cmd.Flags().BoolVar(&flagStats, "stats", false, "Print fetch metrics to stderr")

	return cmd
}

// runDates is the main command logic
func runDates(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON && format != FormatICS {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'ics')", flagFormat)
	}

	order := SortOrder(strings.ToLower(flagSort))
	if order != SortByDate && order != SortByOffice {
		return fmt.Errorf("invalid sort: %s (must be 'date' or 'office')", flagSort)
	}

	if flagLimit < 0 {
		return fmt.Errorf("invalid limit: %d", flagLimit)
	}

	a, err := newApp(flagConcurrency)
	if err != nil {
		return err
	}

	results, err := a.repo.AvailableDates(cmd.Context(), a.params, flagRefresh)
	if err != nil {
		return fmt.Errorf("fetching dates: %w", err)
	}

	if flagLimit > 0 && len(results) > flagLimit {
		results = results[:flagLimit]
	}
	sortResults(results, order)

	result := &OutputResult{
		CheckedAt: time.Now().UTC(),
		Results:   results,
		Count:     len(results),
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagStats {
		encoder := json.NewEncoder(os.Stderr)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(logger.GetMetricsSnapshot()); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}

	return nil
}
