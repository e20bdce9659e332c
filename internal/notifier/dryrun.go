package notifier

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/dmv-dates/internal/availability"
)

// DryRunNotifier prints what would be posted without actually posting
type DryRunNotifier struct {
	w io.Writer
}

// NewDryRunNotifier creates a new dry-run notifier writing to w
func NewDryRunNotifier(w io.Writer) *DryRunNotifier {
	return &DryRunNotifier{w: w}
}

// Notify prints the message that would be posted
func (n *DryRunNotifier) Notify(results []availability.Result) error {
	msg := FormatMessage(results)
	if _, err := fmt.Fprintf(n.w, "--- Notification ---\n%s\n", msg); err != nil {
		return fmt.Errorf("writing dry run: %w", err)
	}
	return nil
}
