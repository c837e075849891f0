// Package cli provides the interactive snoozer terminal client.
//
// It wires configuration, the SQLite-backed local storage, the story API
// client and the page controller, and renders the page as text. On start it
// restores a remembered session, if any, then runs a REPL.
//
// Key features:
//   - Login / Signup / Logout
//   - List stories with favorite markers
//   - Show the profile of the logged-in user
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, TerminalView and runREPL for details.
package cli
