// Package cli provides the interactive Stellar Burgers command-line client.
//
// It wires configuration, logging, local storage, the REST client and the
// application store, then runs a REPL over them. Typical flow: load the
// catalog and the feed, check the stored session, start the background
// feed watcher and execute user commands.
//
// Key features:
//   - Browse the ingredient catalog and build a burger (add, remove, up, down)
//   - Place the order and dismiss the confirmation
//   - Public order feed, own order history, order details by number
//   - Register / Login / Logout, view and update the profile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartFeedWatcher, and runREPL for details.
package cli
