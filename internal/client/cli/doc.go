// Package cli provides the interactive wellkeeper command-line client.
//
// It wires configuration, the selected storage backend, the services and
// an interactive REPL. Typical flow: register, log in, then record moods,
// journal entries, gratitude lists, meditation sessions and routine
// check-offs for a day.
//
// Key features:
//   - Register / Login / Logout with a per-device account list
//   - Record and edit logs, list them by category, export the journal
//   - Maintain routines, goals and the care network
//   - Today summary, weekly mood trend and an AI reflection
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
