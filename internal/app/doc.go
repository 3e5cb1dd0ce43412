// Package app wires application dependencies for the CLI.
//
// It builds the logger, HTTP client and service client from config.Config,
// exposing them via the Wire struct for commands to use.
package app
