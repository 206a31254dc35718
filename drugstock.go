// Package drugstock extracts product and per-drugstore stock data from
// a pharmacy product page and emits it as a single JSON record.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package drugstock
