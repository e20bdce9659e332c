// Package cli implements the command-line interface for dmv-dates.
//
// The cli package provides the Cobra-based CLI with commands to list and resolve
// DMV offices, fetch the earliest behind-the-wheel test date at every office
// (text, JSON or iCalendar output), and watch availability on a cron schedule
// with optional notifications. It wires configuration, the scraper and the
// availability repository together.
package cli
