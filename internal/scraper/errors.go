package scraper

import "fmt"

// ExtractionError reports a response page that did not contain a parseable
// availability date.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extracting date: %s: %v", e.Reason, e.Err)
	}
	return "extracting date: " + e.Reason
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// TransportError reports a failed request to the booking endpoint.
// StatusCode is zero when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("posting %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("posting %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
