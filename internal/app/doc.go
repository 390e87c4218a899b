// Package app wires application dependencies for the CLI.
//
// It builds the structure reader/writer, the run logger and the high-level
// builder services from Config, exposing them via the Wire struct for
// commands to use.
package app
