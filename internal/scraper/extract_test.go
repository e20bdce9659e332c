package scraper

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		want      time.Time
		wantError bool
	}{
		{
			name: "second alert holds the date",
			html: `<div class="alert">Disclaimer</div>
				<div class="alert">Thursday, December 31, 2015 at 9:00 AM</div>`,
			want: time.Date(2015, time.December, 31, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "afternoon two digit hour",
			html: `<p class="alert">x</p><p class="alert">Monday, March 7, 2016 at 12:45 PM</p>`,
			want: time.Date(2016, time.March, 7, 12, 45, 0, 0, time.UTC),
		},
		{
			name: "surrounding whitespace is ignored",
			html: `<p class="alert">x</p><p class="alert">
				Friday, January 1, 2016 at 1:15 PM
			</p>`,
			want: time.Date(2016, time.January, 1, 13, 15, 0, 0, time.UTC),
		},
		{
			name: "later alerts are ignored",
			html: `<p class="alert">x</p>
				<p class="alert">Thursday, December 31, 2015 at 9:00 AM</p>
				<p class="alert">Sorry, no appointments</p>`,
			want: time.Date(2015, time.December, 31, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "only one alert",
			html:      `<div class="alert">Thursday, December 31, 2015 at 9:00 AM</div>`,
			wantError: true,
		},
		{
			name:      "no alerts",
			html:      `<html><body><p>Maintenance</p></body></html>`,
			wantError: true,
		},
		{
			name:      "unexpected sentence",
			html:      `<p class="alert">x</p><p class="alert">Sorry, there are no appointments available</p>`,
			wantError: true,
		},
		{
			name:      "numeric date format",
			html:      `<p class="alert">x</p><p class="alert">12/31/2015 09:00</p>`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractDate(strings.NewReader(tt.html))

			if tt.wantError {
				var extractErr *ExtractionError
				if !errors.As(err, &extractErr) {
					t.Fatalf("ExtractDate() error = %v, want *ExtractionError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ExtractDate() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ExtractDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractDate_ParseErrorIsWrapped(t *testing.T) {
	html := `<p class="alert">x</p><p class="alert">Thursday, Smarch 31, 2015 at 9:00 AM</p>`

	_, err := ExtractDate(strings.NewReader(html))

	var parseErr *time.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("ExtractDate() error = %v, want wrapped *time.ParseError", err)
	}
}

func TestExtractDate_Fixture(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/find_drive_test.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	got, err := ExtractDate(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("ExtractDate() error: %v", err)
	}

	want := time.Date(2015, time.December, 31, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ExtractDate() = %v, want %v", got, want)
	}
}

func TestScraperExtractDate_Location(t *testing.T) {
	loc := time.FixedZone("PST", -8*60*60)
	s := New(WithLocation(loc))

	got, err := s.ExtractDate(strings.NewReader(
		`<p class="alert">x</p><p class="alert">Thursday, December 31, 2015 at 9:00 AM</p>`))
	if err != nil {
		t.Fatalf("ExtractDate() error: %v", err)
	}

	if got.Location() != loc {
		t.Errorf("location = %v, want %v", got.Location(), loc)
	}
	if got.Hour() != 9 || got.Day() != 31 {
		t.Errorf("wall clock = %v, want Dec 31 09:00", got)
	}
}
