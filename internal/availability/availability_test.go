package availability

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pfrederiksen/dmv-dates/internal/office"
	"github.com/pfrederiksen/dmv-dates/internal/scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type outcome struct {
	date  time.Time
	err   error
	delay time.Duration
}

// fakeFetcher answers from a fixed table keyed by office ID
type fakeFetcher struct {
	mu       sync.Mutex
	outcomes map[int]outcome
	calls    []int
	params   []scraper.Params
}

func (f *fakeFetcher) FetchDate(ctx context.Context, o office.Office, params scraper.Params) (time.Time, error) {
	f.mu.Lock()
	f.calls = append(f.calls, o.ID)
	f.params = append(f.params, params)
	out, ok := f.outcomes[o.ID]
	f.mu.Unlock()

	if out.delay > 0 {
		select {
		case <-time.After(out.delay):
		case <-ctx.Done():
			return time.Time{}, &scraper.TransportError{URL: "fake", Err: ctx.Err()}
		}
	}
	if !ok {
		return time.Time{}, &scraper.ExtractionError{Reason: "no alerts"}
	}
	return out.date, out.err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

var (
	alturas     = office.Office{ID: 537, Name: "ALTURAS"}
	arleta      = office.Office{ID: 587, Name: "ARLETA"}
	arvin       = office.Office{ID: 661, Name: "ARVIN"}
	auburn      = office.Office{ID: 570, Name: "AUBURN"}
	bakersfield = office.Office{ID: 529, Name: "BAKERSFIELD"}
)

func testRegistry(t *testing.T) *office.Registry {
	t.Helper()
	reg, err := office.NewRegistry([]office.Office{alturas, arleta, arvin, auburn, bakersfield})
	require.NoError(t, err)
	return reg
}

func day(d int) time.Time {
	return time.Date(2016, time.January, d, 9, 0, 0, 0, time.UTC)
}

func extractionFailure() error {
	return &scraper.ExtractionError{Reason: "found 1 .alert elements, want at least 2"}
}

func transportFailure() error {
	return &scraper.TransportError{URL: "http://dmv.test", StatusCode: 503}
}

func TestAvailableDates_SortedSoonestFirst(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: map[int]outcome{
		alturas.ID:     {date: day(20)},
		arleta.ID:      {date: day(3)},
		arvin.ID:       {date: day(11)},
		auburn.ID:      {date: day(3)},
		bakersfield.ID: {date: day(1)},
	}}
	repo := New(testRegistry(t), fetcher)

	got, err := repo.AvailableDates(context.Background(), scraper.Params{"firstName": "PAT"}, false)
	require.NoError(t, err)

	want := []Result{
		{Date: day(1), Office: bakersfield},
		{Date: day(3), Office: arleta},
		{Date: day(3), Office: auburn},
		{Date: day(11), Office: arvin},
		{Date: day(20), Office: alturas},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AvailableDates() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []int{537, 587, 661, 570, 529}, fetcher.calls, "offices must be fetched in registry order")
	for _, p := range fetcher.params {
		assert.Equal(t, "PAT", p["firstName"])
	}
}

func TestAvailableDates_SkipsExtractionFailures(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: map[int]outcome{
		alturas.ID:     {date: day(5)},
		arleta.ID:      {err: extractionFailure()},
		arvin.ID:       {err: extractionFailure()},
		auburn.ID:      {date: day(2)},
		bakersfield.ID: {err: extractionFailure()},
	}}
	repo := New(testRegistry(t), fetcher)

	got, err := repo.AvailableDates(context.Background(), nil, false)
	require.NoError(t, err)

	want := []Result{
		{Date: day(2), Office: auburn},
		{Date: day(5), Office: alturas},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AvailableDates() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, fetcher.callCount())
}

func TestAvailableDates_TransportFailureAbortsCycle(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: map[int]outcome{
		alturas.ID:     {date: day(5)},
		arleta.ID:      {err: extractionFailure()},
		arvin.ID:       {err: transportFailure()},
		auburn.ID:      {date: day(2)},
		bakersfield.ID: {date: day(1)},
	}}
	repo := New(testRegistry(t), fetcher)

	_, err := repo.AvailableDates(context.Background(), nil, false)

	var transportErr *scraper.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Contains(t, err.Error(), "ARVIN")
	assert.Equal(t, []int{537, 587, 661}, fetcher.calls, "offices after the failure must not be fetched")

	// the partial cache is still usable
	assert.Equal(t, []Result{{Date: day(5), Office: alturas}}, repo.Cached())

	got, err := repo.AvailableDates(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, []Result{{Date: day(5), Office: alturas}}, got)
	assert.Equal(t, 3, fetcher.callCount(), "non-empty partial cache must be reused")
}

func TestAvailableDates_OtherErrorsAbortCycle(t *testing.T) {
	boom := errors.New("boom")
	fetcher := &fakeFetcher{outcomes: map[int]outcome{
		alturas.ID: {err: boom},
	}}
	repo := New(testRegistry(t), fetcher)

	_, err := repo.AvailableDates(context.Background(), nil, false)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, fetcher.callCount())
}

func TestAvailableDates_CacheReuse(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: map[int]outcome{
		alturas.ID: {date: day(5)},
		arvin.ID:   {date: day(4)},
	}}
	repo := New(testRegistry(t), fetcher)
	ctx := context.Background()

	first, err := repo.AvailableDates(ctx, nil, false)
	require.NoError(t, err)
	require.Equal(t, 5, fetcher.callCount())

	second, err := repo.AvailableDates(ctx, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 5, fetcher.callCount(), "second call must not issue requests")
	assert.Equal(t, first, second)

	_, err = repo.AvailableDates(ctx, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 10, fetcher.callCount(), "forced refresh must fetch every office again")
}

func TestAvailableDates_EmptyCycleIsRefetched(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: map[int]outcome{}}
	repo := New(testRegistry(t), fetcher)
	ctx := context.Background()

	got, err := repo.AvailableDates(ctx, nil, false)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = repo.AvailableDates(ctx, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 10, fetcher.callCount(), "an empty cache counts as never fetched")
}

func TestRefresh_ReplacesCache(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: map[int]outcome{
		alturas.ID: {date: day(5)},
	}}
	repo := New(testRegistry(t), fetcher)
	ctx := context.Background()

	require.NoError(t, repo.Refresh(ctx, nil))
	assert.Len(t, repo.Cached(), 1)

	fetcher.mu.Lock()
	fetcher.outcomes = map[int]outcome{arleta.ID: {date: day(7)}, arvin.ID: {date: day(6)}}
	fetcher.mu.Unlock()

	require.NoError(t, repo.Refresh(ctx, nil))
	assert.Equal(t, []Result{
		{Date: day(6), Office: arvin},
		{Date: day(7), Office: arleta},
	}, repo.Cached())
}

func TestAvailableDates_ReturnedSliceIsACopy(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: map[int]outcome{
		alturas.ID: {date: day(5)},
		arleta.ID:  {date: day(6)},
	}}
	repo := New(testRegistry(t), fetcher)

	got, err := repo.AvailableDates(context.Background(), nil, false)
	require.NoError(t, err)
	got[0] = Result{}

	assert.Equal(t, alturas, repo.Cached()[0].Office)
}

func TestAvailableDates_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	// later offices finish first; ordering must not depend on completion
	fetcher := &fakeFetcher{outcomes: map[int]outcome{
		alturas.ID:     {date: day(3), delay: 40 * time.Millisecond},
		arleta.ID:      {err: extractionFailure(), delay: 30 * time.Millisecond},
		arvin.ID:       {date: day(3), delay: 20 * time.Millisecond},
		auburn.ID:      {date: day(1), delay: 10 * time.Millisecond},
		bakersfield.ID: {date: day(3)},
	}}
	repo := New(testRegistry(t), fetcher, WithConcurrency(5))

	got, err := repo.AvailableDates(context.Background(), nil, false)
	require.NoError(t, err)

	want := []Result{
		{Date: day(1), Office: auburn},
		{Date: day(3), Office: alturas},
		{Date: day(3), Office: arvin},
		{Date: day(3), Office: bakersfield},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AvailableDates() mismatch (-want +got):\n%s", diff)
	}
}

func TestAvailableDates_ConcurrentTransportFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	fetcher := &fakeFetcher{outcomes: map[int]outcome{
		alturas.ID:     {date: day(2)},
		arleta.ID:      {err: transportFailure(), delay: 20 * time.Millisecond},
		arvin.ID:       {date: day(4), delay: time.Second},
		auburn.ID:      {date: day(1), delay: time.Second},
		bakersfield.ID: {date: day(1), delay: time.Second},
	}}
	repo := New(testRegistry(t), fetcher, WithConcurrency(5))

	start := time.Now()
	_, err := repo.AvailableDates(context.Background(), nil, false)

	var transportErr *scraper.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Less(t, time.Since(start), 900*time.Millisecond, "remaining fetches must be cancelled")
	assert.Equal(t, []Result{{Date: day(2), Office: alturas}}, repo.Cached())
}

func TestAvailableDates_ConcurrentCanceledContext(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: map[int]outcome{alturas.ID: {date: day(2)}}}
	repo := New(testRegistry(t), fetcher, WithConcurrency(3))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.AvailableDates(ctx, nil, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrint(t *testing.T) {
	fetcher := &fakeFetcher{outcomes: map[int]outcome{
		alturas.ID: {date: time.Date(2015, time.December, 31, 9, 0, 0, 0, time.UTC)},
		arvin.ID:   {date: time.Date(2015, time.December, 30, 14, 30, 0, 0, time.UTC)},
	}}
	repo := New(testRegistry(t), fetcher)

	var buf bytes.Buffer
	require.NoError(t, repo.Print(context.Background(), &buf, nil, false))

	assert.Equal(t, "ARVIN 2015-12-30 14:30:00\nALTURAS 2015-12-31 09:00:00\n", buf.String())
}

func TestResult_String(t *testing.T) {
	r := Result{
		Date:   time.Date(2015, time.December, 31, 9, 0, 0, 0, time.UTC),
		Office: office.Office{ID: 505, Name: "FRESNO"},
	}
	assert.Equal(t, "FRESNO 2015-12-31 09:00:00", r.String())
}
