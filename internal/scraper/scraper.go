package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dghubble/sling"
	"github.com/google/go-querystring/query"
	"github.com/pfrederiksen/dmv-dates/internal/logger"
	"github.com/pfrederiksen/dmv-dates/internal/office"
)

const (
	BehindTheWheelURL = "https://www.dmv.ca.gov/wasapp/foa/findDriveTest.do"
	UserAgent         = "dmv-dates-cli/1.0 (github.com/pfrederiksen/dmv-dates)"
	Timeout           = 30 * time.Second

	// DriveTestTask is the requestedTask code for behind-the-wheel tests
	DriveTestTask = "DT"
)

// Params holds the form fields shared by every office request, such as the
// applicant's name, birth date and phone number.
type Params map[string]string

// Values returns the params as form values
func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	for k, val := range p {
		v.Set(k, val)
	}
	return v
}

// officeQuery is laid over the caller's params for each office
type officeQuery struct {
	OfficeID         int    `url:"officeId"`
	NumberItems      int    `url:"numberItems"`
	RequestedTask    string `url:"requestedTask"`
	ResetCheckFields bool   `url:"resetCheckFields"`
}

// Scraper posts availability queries for single offices
type Scraper struct {
	client    *http.Client
	url       string
	userAgent string
	location  *time.Location
}

// Option configures a Scraper
type Option func(*Scraper)

// WithHTTPClient sets the client used for requests
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scraper) {
		if c != nil {
			s.client = c
		}
	}
}

// WithEndpoint overrides the booking endpoint URL
func WithEndpoint(u string) Option {
	return func(s *Scraper) {
		if u != "" {
			s.url = u
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(s *Scraper) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithLocation sets the time zone appointment times are interpreted in
func WithLocation(loc *time.Location) Option {
	return func(s *Scraper) {
		if loc != nil {
			s.location = loc
		}
	}
}

// New creates a new Scraper instance
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url:       BehindTheWheelURL,
		userAgent: UserAgent,
		location:  time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the booking endpoint in use
func (s *Scraper) URL() string {
	return s.url
}

// ExtractDate parses an availability page in the scraper's time zone
func (s *Scraper) ExtractDate(r io.Reader) (time.Time, error) {
	return extractDate(r, s.location)
}

// FetchDate queries the earliest behind-the-wheel appointment at o.
// params is copied and never modified.
func (s *Scraper) FetchDate(ctx context.Context, o office.Office, params Params) (time.Time, error) {
	form, err := buildForm(o, params)
	if err != nil {
		return time.Time{}, fmt.Errorf("building form for %s: %w", o.Name, err)
	}

	body, err := s.post(ctx, form)
	if err != nil {
		return time.Time{}, err
	}

	return s.ExtractDate(bytes.NewReader(body))
}

// buildForm copies params and overlays the office-specific fields
func buildForm(o office.Office, params Params) (url.Values, error) {
	overlay, err := query.Values(officeQuery{
		OfficeID:         o.ID,
		NumberItems:      1,
		RequestedTask:    DriveTestTask,
		ResetCheckFields: true,
	})
	if err != nil {
		return nil, err
	}

	form := params.Values()
	for k := range overlay {
		form.Set(k, overlay.Get(k))
	}
	return form, nil
}

// post sends the form to the booking endpoint and returns the response body
func (s *Scraper) post(ctx context.Context, form url.Values) ([]byte, error) {
	req, err := sling.New().
		Base(s.url).
		Set("User-Agent", s.userAgent).
		BodyProvider(formBody(form)).
		Post("").
		Request()
	if err != nil {
		return nil, &TransportError{URL: s.url, Err: fmt.Errorf("creating request: %w", err)}
	}

	logger.Debug("Posting availability query", logger.Fields{
		"url":       s.url,
		"office_id": form.Get("officeId"),
	})

	start := time.Now()
	resp, err := s.client.Do(req.WithContext(ctx))
	logger.RecordTiming("fetch.office", time.Since(start))
	if err != nil {
		return nil, &TransportError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: s.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: s.url, Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, nil
}

// formBody is a sling.BodyProvider for url-encoded forms built from url.Values
type formBody url.Values

func (f formBody) ContentType() string {
	return "application/x-www-form-urlencoded"
}

func (f formBody) Body() (io.Reader, error) {
	return strings.NewReader(url.Values(f).Encode()), nil
}
