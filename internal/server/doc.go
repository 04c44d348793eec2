// Package server runs the HTTP transport of the cargo-settings server and
// shuts it down gracefully when the run context is cancelled.
package server
