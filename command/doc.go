// Package command exposes go-command compatible handlers for the portfolio
// write paths (create, save). Commands are wired by the service layer and can
// be invoked by any transport.
package command
