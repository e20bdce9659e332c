package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/pfrederiksen/dmv-dates/internal/availability"
	"github.com/pfrederiksen/dmv-dates/internal/config"
	"github.com/pfrederiksen/dmv-dates/internal/logger"
	"github.com/pfrederiksen/dmv-dates/internal/office"
	"github.com/pfrederiksen/dmv-dates/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagParamsFile string
	flagParams     []string
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dmv-dates",
		Short: "Find the soonest behind-the-wheel test at California DMV offices",
		Long: `A CLI tool to find the earliest available behind-the-wheel driving test
appointment at every California DMV office, sorted soonest first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flagParamsFile, "params", "", "YAML file with applicant form fields (default $DMV_PARAMS_FILE)")
	cmd.PersistentFlags().StringArrayVar(&flagParams, "param", nil, "Form field as key=value, overrides --params (repeatable)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newOfficesCmd())
	cmd.AddCommand(newDatesCmd())
	cmd.AddCommand(newWatchCmd())

	return cmd
}

// app holds the components shared by commands that query the DMV
type app struct {
	cfg     *config.Config
	scraper *scraper.Scraper
	repo    *availability.Repository
	params  scraper.Params
}

// newApp loads configuration and wires the scraper and repository.
// concurrency overrides the configured value when positive.
func newApp(concurrency int) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := setupLogger(cfg); err != nil {
		return nil, err
	}

	params, err := loadParams(cfg)
	if err != nil {
		return nil, err
	}

	if concurrency <= 0 {
		concurrency = cfg.Concurrency
	}

	sc := scraper.New(
		scraper.WithEndpoint(cfg.Endpoint),
		scraper.WithUserAgent(cfg.UserAgent),
		scraper.WithLocation(cfg.Location),
		scraper.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)

	logger.Debug("Configured scraper", logger.Fields{
		"endpoint":    sc.URL(),
		"timeout":     cfg.Timeout.String(),
		"concurrency": concurrency,
		"fields":      len(params),
	})

	return &app{
		cfg:     cfg,
		scraper: sc,
		repo:    availability.New(office.Default(), sc, availability.WithConcurrency(concurrency)),
		params:  params,
	}, nil
}

func setupLogger(cfg *config.Config) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	if flagVerbose {
		level = logger.LevelDebug
	}

	l := logger.New(level, os.Stderr)
	l.SetFormat(logger.Format(cfg.LogFormat))
	logger.SetDefault(l)
	return nil
}

// loadParams merges the params file with --param overrides
func loadParams(cfg *config.Config) (scraper.Params, error) {
	params := scraper.Params{}

	path := flagParamsFile
	if path == "" {
		path = cfg.ParamsFile
	}
	if path != "" {
		loaded, err := config.LoadParams(path)
		if err != nil {
			return nil, err
		}
		params = loaded
	}

	for _, p := range flagParams {
		k, v, err := config.ParseParam(p)
		if err != nil {
			return nil, err
		}
		params[k] = v
	}

	return params, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
