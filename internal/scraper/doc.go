// Package scraper fetches and parses DMV behind-the-wheel availability.
//
// For one office the scraper posts the DMV "find drive test" form with the
// caller's applicant fields plus the office-specific overlay, then extracts
// the earliest appointment from the returned HTML. The page carries several
// ".alert" notices; the first is a general disclaimer and the second holds a
// sentence such as "Thursday, December 31, 2015 at 9:00 AM".
//
// Failures come in two kinds. *ExtractionError means the page did not have the
// expected shape for this office. *TransportError means the request itself
// failed. Callers aggregating many offices skip the former and abort on the
// latter.
package scraper
