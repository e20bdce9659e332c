package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/dmv-dates/internal/office"
	"github.com/spf13/cobra"
)

var (
	flagOfficeID     int
	flagOfficeName   string
	flagOfficeFormat string
)

func newOfficesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offices",
		Short: "List DMV offices or resolve one by ID or name",
		Args:  cobra.NoArgs,
		RunE:  runOffices,
	}

	cmd.Flags().IntVar(&flagOfficeID, "id", 0, "Resolve the office with this ID")
	cmd.Flags().StringVar(&flagOfficeName, "name", "", "Resolve the office with this name (case-insensitive)")
	cmd.Flags().StringVar(&flagOfficeFormat, "format", "text", "Output format: text or json")
	cmd.MarkFlagsMutuallyExclusive("id", "name")

	return cmd
}

func runOffices(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagOfficeFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagOfficeFormat)
	}

	reg := office.Default()

	var offices []office.Office
	switch {
	case cmd.Flags().Changed("id"):
		o, err := reg.ByID(flagOfficeID)
		if err != nil {
			return err
		}
		offices = []office.Office{o}
	case flagOfficeName != "":
		o, err := reg.ByName(flagOfficeName)
		if err != nil {
			return err
		}
		offices = []office.Office{o}
	default:
		offices = reg.All()
	}

	return writeOffices(cmd.OutOrStdout(), offices, format)
}

func writeOffices(w io.Writer, offices []office.Office, format OutputFormat) error {
	if format == FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(offices)
	}

	for _, o := range offices {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", o.ID, o.Name); err != nil {
			return err
		}
	}
	return nil
}
