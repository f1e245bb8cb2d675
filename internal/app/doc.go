// Package app is the composition root for shelf.
//
// # Overview
//
// Run wires configuration, logging, seed data, the stores and the UI:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read ~/.config/shelf/config.toml
//	       ├─────> logging.New()     zap logger writing to log_path
//	       ├─────> NewStores()       FilmStore + PersonStore from seed
//	       ├─────> Audit()           Debug-log every published snapshot
//	       ├─────> prefs.Load()      Theme and film filter
//	       └─────> ui.Run()          Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid
//   - Unknown app name from the command line
//   - Log file cannot be created
//   - Seed file present but invalid
//
// Everything else is logged: a bad saved filter falls back to showing all
// films, lookup failures inside the UI are treated as no-ops.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{App: "people"}); err != nil {
//		log.Fatalf("shelf failed: %v", err)
//	}
package app
