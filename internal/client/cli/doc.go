// Package cli provides the interactive socialdeck command-line client.
//
// It wires configuration, session storage, the API client, services and a
// notification center into an interactive REPL. Typical flow: log in,
// start a background connectivity watcher, then manage linked accounts,
// the weekly posting schedule and new posts.
//
// Key features:
//   - Register / Login (with two-factor codes) / Logout
//   - Accounts: list, connect Mastodon/Reddit/LinkedIn, disconnect
//   - Schedule: list, add and delete weekly slots
//   - Compose posts to publish now, queue or schedule
//   - Notifications: every outcome is shown as a transient notification
//
// Commands that need identity check the session first. An invalid session
// is wiped and the REPL returns to its login entry point. Session storage
// is cleared when the App closes.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
