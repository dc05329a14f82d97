// Package app is the composition root for petpad.
//
// Run wires the pieces together in a fixed order:
//
//  1. config.Load reads ~/.config/petpad/config.toml and PETPAD_* env vars
//  2. command-line Options override the loaded config
//  3. the standard logger is pointed at the log file, or discarded
//  4. kv.Open opens the memory, file or sqlite store
//  5. state.Open builds the pet and like models and loads persisted values
//  6. prefs.Load restores the saved theme
//  7. ui.Run starts the TUI and blocks until the user quits
//
// Load failures for persisted pets or likes are not fatal: the session logs
// them and starts from the defaults. A config error or a store that cannot
// be opened stops Run before the UI starts.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{Store: "sqlite"}); err != nil {
//		log.Fatalf("petpad failed: %v", err)
//	}
package app
