// Package availability aggregates behind-the-wheel availability across all
// DMV offices.
//
// A Repository walks the office registry, asks a Fetcher for each office's
// earliest appointment and caches the successes. Offices whose page cannot be
// parsed are skipped; a transport failure aborts the cycle and leaves the
// results gathered so far in the cache. Results are always returned sorted by
// date, soonest first, with ties kept in registry order.
package availability
