// Package cli provides the interactive reservation command-line client.
//
// It wires configuration, the local session store, API services, and an
// interactive REPL. Each mobile screen of the product is a CLI screen
// reached through a small navigation stack (Router):
//
//   - login / logout
//   - home
//   - reservations (list, delete)
//   - reservation-new / reservation-edit
//   - profile
//
// Every screen runs with its own context, cancelled when another screen is
// entered, so results fetched for a screen that was left are discarded.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Router and runREPL for details.
package cli
