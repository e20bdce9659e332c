package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pfrederiksen/dmv-dates/internal/availability"
	"github.com/pfrederiksen/dmv-dates/internal/config"
	"github.com/pfrederiksen/dmv-dates/internal/logger"
	"github.com/pfrederiksen/dmv-dates/internal/notifier"
	"github.com/pfrederiksen/dmv-dates/internal/scraper"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

const beforeLayout = "2006-01-02"

var (
	flagSchedule string
	flagBefore   string
	flagNotify   string
	flagOnce     bool
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-check availability on a schedule and notify about early slots",
		Long: `Query every DMV office on a cron schedule. When any office has a slot
before --before (or any slot at all when --before is not set), send a
notification listing the soonest offices.`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}

	cmd.Flags().StringVar(&flagSchedule, "schedule", "*/30 * * * *", "Cron schedule for checks")
	cmd.Flags().StringVar(&flagBefore, "before", "", "Only notify about slots before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagNotify, "notify", "dryrun", "Notifier: dryrun, twitter or telegram")
	cmd.Flags().BoolVar(&flagOnce, "once", false, "Run a single check and exit")
	cmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "Offices queried at once (default $DMV_CONCURRENCY or 1)")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	var before time.Time
	if flagBefore != "" {
		t, err := time.Parse(beforeLayout, flagBefore)
		if err != nil {
			return fmt.Errorf("invalid --before: %w", err)
		}
		before = t
	}

	a, err := newApp(flagConcurrency)
	if err != nil {
		return err
	}
	if !before.IsZero() {
		before = time.Date(before.Year(), before.Month(), before.Day(), 0, 0, 0, 0, a.cfg.Location)
	}

	n, err := newNotifier(flagNotify, a.cfg, cmd)
	if err != nil {
		return err
	}

	w := &watcher{repo: a.repo, notifier: n, before: before, params: a.params}

	if flagOnce {
		return w.check(cmd.Context())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := cron.New(cron.WithLocation(a.cfg.Location))
	if _, err := c.AddFunc(flagSchedule, func() {
		if err := w.check(ctx); err != nil {
			logger.Error("Availability check failed", logger.Fields{"schedule": flagSchedule}, err)
		}
	}); err != nil {
		return fmt.Errorf("invalid --schedule %q: %w", flagSchedule, err)
	}

	logger.Info("Watching availability", logger.Fields{
		"schedule": flagSchedule,
		"before":   flagBefore,
		"notify":   flagNotify,
	})
	c.Start()

	<-ctx.Done()
	logger.Info("Stopping watcher", nil)
	<-c.Stop().Done()
	return nil
}

func newNotifier(kind string, cfg *config.Config, cmd *cobra.Command) (notifier.Notifier, error) {
	switch strings.ToLower(kind) {
	case "dryrun":
		return notifier.NewDryRunNotifier(cmd.OutOrStdout()), nil
	case "twitter":
		return notifier.NewTwitterNotifier(notifier.TwitterCredentials{
			APIKey:       cfg.TwitterAPIKey,
			APISecret:    cfg.TwitterAPISecret,
			AccessToken:  cfg.TwitterAccessToken,
			AccessSecret: cfg.TwitterAccessSecret,
		})
	case "telegram":
		return notifier.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	default:
		return nil, fmt.Errorf("invalid notifier: %s (must be 'dryrun', 'twitter' or 'telegram')", kind)
	}
}

// dateSource is the part of the repository the watcher needs
type dateSource interface {
	AvailableDates(ctx context.Context, params scraper.Params, forceRefresh bool) ([]availability.Result, error)
}

// watcher runs one availability check per tick
type watcher struct {
	repo     dateSource
	notifier notifier.Notifier
	before   time.Time
	params   scraper.Params
}

// check refreshes every office and notifies when a qualifying slot exists
func (w *watcher) check(ctx context.Context) error {
	results, err := w.repo.AvailableDates(ctx, w.params, true)
	if err != nil {
		return fmt.Errorf("fetching dates: %w", err)
	}

	early := w.early(results)
	logger.Info("Availability checked", logger.Fields{
		"offices": len(results),
		"early":   len(early),
	})
	if len(early) == 0 {
		return nil
	}

	if err := w.notifier.Notify(early); err != nil {
		return fmt.Errorf("notifying: %w", err)
	}
	return nil
}

// early keeps results before the threshold; results are sorted so the
// qualifying ones form a prefix
func (w *watcher) early(results []availability.Result) []availability.Result {
	if w.before.IsZero() {
		return results
	}
	for i, res := range results {
		if !res.Date.Before(w.before) {
			return results[:i]
		}
	}
	return results
}
