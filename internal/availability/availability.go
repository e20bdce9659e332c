package availability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/pfrederiksen/dmv-dates/internal/logger"
	"github.com/pfrederiksen/dmv-dates/internal/office"
	"github.com/pfrederiksen/dmv-dates/internal/scraper"
	"golang.org/x/sync/errgroup"
)

// DisplayLayout is the timestamp layout used by Result.String
const DisplayLayout = "2006-01-02 15:04:05"

// Fetcher returns the earliest appointment for one office.
// *scraper.Scraper implements it.
type Fetcher interface {
	FetchDate(ctx context.Context, o office.Office, params scraper.Params) (time.Time, error)
}

// Result pairs an office with its earliest available appointment
type Result struct {
	Date   time.Time     `json:"date"`
	Office office.Office `json:"office"`
}

// String formats the result as "<office name> <timestamp>"
func (r Result) String() string {
	return fmt.Sprintf("%s %s", r.Office.Name, r.Date.Format(DisplayLayout))
}

// Repository caches availability for every office in a registry.
// Calls are serialized so at most one refresh cycle runs at a time.
type Repository struct {
	registry    *office.Registry
	fetcher     Fetcher
	concurrency int

	mu      sync.Mutex
	results []Result
}

// Option configures a Repository
type Option func(*Repository)

// WithConcurrency fetches up to n offices at once during a refresh.
// Values below 2 keep the sequential walk.
func WithConcurrency(n int) Option {
	return func(r *Repository) {
		r.concurrency = n
	}
}

// New creates a Repository over registry using fetcher for each office
func New(registry *office.Registry, fetcher Fetcher, opts ...Option) *Repository {
	r := &Repository{
		registry:    registry,
		fetcher:     fetcher,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AvailableDates returns the cached results sorted by date, soonest first.
// The cache is rebuilt when forceRefresh is set or when it is empty, so a
// cycle in which no office had availability is repeated on the next call.
func (r *Repository) AvailableDates(ctx context.Context, params scraper.Params, forceRefresh bool) ([]Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if forceRefresh || len(r.results) == 0 {
		if err := r.refresh(ctx, params); err != nil {
			return nil, err
		}
	}

	return r.sorted(), nil
}

// Refresh discards the cache and queries every office again.
// On a non-extraction failure the cycle stops and the results gathered so far
// stay cached.
func (r *Repository) Refresh(ctx context.Context, params scraper.Params) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refresh(ctx, params)
}

// Cached returns the current cache contents sorted by date without fetching
func (r *Repository) Cached() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted()
}

// Print writes one "<office name> <timestamp>" line per available office
func (r *Repository) Print(ctx context.Context, w io.Writer, params scraper.Params, forceRefresh bool) error {
	results, err := r.AvailableDates(ctx, params, forceRefresh)
	if err != nil {
		return err
	}
	for _, res := range results {
		if _, err := fmt.Fprintln(w, res.String()); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) sorted() []Result {
	out := slices.Clone(r.results)
	slices.SortStableFunc(out, func(a, b Result) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

func (r *Repository) refresh(ctx context.Context, params scraper.Params) error {
	r.results = r.results[:0]
	defer func() {
		logger.SetGauge("cache.size", float64(len(r.results)))
	}()

	if r.concurrency > 1 {
		return r.refreshConcurrent(ctx, params)
	}

	for _, o := range r.registry.All() {
		date, err := r.fetcher.FetchDate(ctx, o, params)
		if err != nil {
			if skip(o, err) {
				continue
			}
			return fmt.Errorf("fetching %s: %w", o.Name, err)
		}
		logger.IncrCounter("fetch.success")
		r.results = append(r.results, Result{Date: date, Office: o})
	}

	return nil
}

// refreshConcurrent fans offices out to a bounded worker group. Each worker
// owns one slot so the cache is assembled in registry order.
func (r *Repository) refreshConcurrent(ctx context.Context, params scraper.Params) error {
	offices := r.registry.All()
	slots := make([]*Result, len(offices))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, o := range offices {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			date, err := r.fetcher.FetchDate(gctx, o, params)
			if err != nil {
				if skip(o, err) {
					return nil
				}
				return fmt.Errorf("fetching %s: %w", o.Name, err)
			}
			logger.IncrCounter("fetch.success")
			slots[i] = &Result{Date: date, Office: o}
			return nil
		})
	}

	err := g.Wait()
	for _, res := range slots {
		if res != nil {
			r.results = append(r.results, *res)
		}
	}
	if err == nil {
		err = ctx.Err()
	}
	return err
}

// skip reports whether err only concerns this office's page.
// Other failures are logged and abort the cycle.
func skip(o office.Office, err error) bool {
	fields := logger.Fields{"office_id": o.ID, "office": o.Name}

	var extractErr *scraper.ExtractionError
	if errors.As(err, &extractErr) {
		logger.IncrCounter("fetch.extraction_error")
		fields["reason"] = extractErr.Error()
		logger.Info("Skipping office without availability", fields)
		return true
	}

	var transportErr *scraper.TransportError
	if errors.As(err, &transportErr) {
		logger.IncrCounter("fetch.transport_error")
	}
	logger.Error("Refresh aborted", fields, err)
	return false
}
