// Package config loads petpad's runtime settings.
//
// # Resolution order
//
// Each setting is taken from the first source that provides it:
//
//  1. Command-line flags (applied by the caller, see internal/app)
//  2. PETPAD_* environment variables
//  3. The TOML config file (~/.config/petpad/config.toml by default)
//  4. Built-in defaults
//
// The locale additionally falls back to LC_ALL and then LANG before the
// built-in default of en-US.
//
// # Default Values
//
//   - Config file: ~/.config/petpad/config.toml
//   - Store backend: file
//   - Data path: ~/.local/share/petpad/petpad.json (petpad.db for sqlite)
//   - Clock interval: 1s
//   - Log path: none (logging is discarded)
//
// # TOML Format
//
//	store = "sqlite"
//	data_path = "~/.local/share/petpad/petpad.db"
//	locale = "de-DE"
//	clock_interval = "1s"
//	log_path = "~/.cache/petpad/petpad.log"
//
// # Environment
//
//   - PETPAD_STORE: memory, file or sqlite
//   - PETPAD_DATA_PATH: store location
//   - PETPAD_LOCALE: BCP 47 or POSIX locale for the clock and counters
//   - PETPAD_CLOCK_INTERVAL: Go duration, e.g. 500ms
//   - PETPAD_LOG_PATH: debug log file
package config
