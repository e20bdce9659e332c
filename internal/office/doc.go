// Package office provides the registry of DMV field offices.
//
// Every office has a numeric identifier used by the DMV booking form and a
// canonical uppercase name. The registry resolves offices in both directions
// and iterates them in a stable registration order. It is built once and
// never mutated afterwards.
package office
