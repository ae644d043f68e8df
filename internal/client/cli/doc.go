// Package cli provides the interactive jwtconsole command-line client.
//
// It wires configuration, the local session store, the API gateways and the
// views, then runs a REPL whose prompt shows the active route and the
// logged-in user. Typical flow: log in (or register, then log in), list the
// users, show/edit/delete one of them, log out.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or ctx is cancelled. See App and runREPL for details.
package cli
