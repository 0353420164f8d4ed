// Package server holds the HTTP server configuration.
//
// The serve command starts a Fiber application exposing one invocation endpoint per
// sync engine. This package only defines the settings it needs: the listen port and
// the API key that protects every route except /swagger and /metrics.
package server
