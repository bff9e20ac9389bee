// Package cli provides the interactive Stadtwache command-line client.
//
// It wires configuration, the local SQLite cache, the HTTP API client, the
// session manager, and the sync poller into an interactive REPL. Typical
// flow: restore a persisted session (or prompt for credentials), register
// the background refresh tasks, and execute user commands until exit.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
