// Package app wires configuration, logging, the endpoint client, the
// state store and the TUI together, and runs the background connectivity
// watcher.
package app
