// Package query exposes go-command compatible read handlers for portfolios:
// owner lookups, public slug lookups, slug availability and rendering.
package query
