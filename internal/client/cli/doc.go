// Package cli provides the interactive coinclub terminal client.
//
// It wires configuration, the client database, the session state, the HTTP
// client, the session sync watcher, and a REPL whose commands cover the
// whole API surface: account, wallet, treasure chest, marketplace, and the
// admin panel. Private commands are gated by the route guard; hitting one
// while logged out prompts for login and replays the command afterwards.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
