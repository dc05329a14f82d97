package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/petpad/internal/clock"
	"github.com/five82/petpad/internal/config"
	"github.com/five82/petpad/internal/kv"
	"github.com/five82/petpad/internal/prefs"
	"github.com/five82/petpad/internal/state"
	"github.com/five82/petpad/internal/ui"
)

// Options configure the petpad application. Non-empty fields override the
// config file and environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/petpad/prefs.toml
	Store      string
	DataPath   string
	Locale     string
	LogPath    string
}

// Run boots the petpad TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err = applyOptions(cfg, opts)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	store, err := kv.Open(cfg.Store, cfg.DataPath)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()
	log.Printf("store=%s path=%q locale=%s", cfg.Store, cfg.DataPath, cfg.Locale)

	session := state.Open(store)
	// Load problems are logged by the session and fall back to defaults.
	_ = session.Initialize()

	userPrefs := prefs.Load(opts.PrefsPath)

	return ui.Run(ctx, ui.Options{
		Session:       session,
		ClockInterval: cfg.ClockInterval,
		Formatter:     clock.NewFormatter(cfg.Locale),
		ThemeName:     userPrefs.Theme,
		PrefsPath:     opts.PrefsPath,
		StoreLabel:    storeLabel(cfg),
	})
}

// applyOptions layers command-line values over the loaded config. Switching
// backend without naming a data path moves to that backend's default file.
// The memory backend never carries a data path.
func applyOptions(cfg config.Config, opts Options) (config.Config, error) {
	if strings.TrimSpace(opts.Store) != "" {
		backend, err := kv.ParseBackend(opts.Store)
		if err != nil {
			return config.Config{}, err
		}
		if backend != cfg.Store && strings.TrimSpace(opts.DataPath) == "" {
			cfg.DataPath = ""
			if def := config.DefaultDataPath(backend); def != "" {
				if cfg.DataPath, err = config.ExpandPath(def); err != nil {
					return config.Config{}, err
				}
			}
		}
		cfg.Store = backend
	}
	switch {
	case cfg.Store == kv.BackendMemory:
		cfg.DataPath = ""
	case strings.TrimSpace(opts.DataPath) != "":
		path, err := config.ExpandPath(opts.DataPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("data path: %w", err)
		}
		cfg.DataPath = path
	}
	if locale := strings.TrimSpace(opts.Locale); locale != "" {
		cfg.Locale = locale
	}
	if strings.TrimSpace(opts.LogPath) != "" {
		path, err := config.ExpandPath(opts.LogPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("log path: %w", err)
		}
		cfg.LogPath = path
	}
	return cfg, nil
}

// setupLogging points the standard logger at path, or discards output when
// path is empty. Writing to the terminal would corrupt the TUI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, "petpad")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}

func storeLabel(cfg config.Config) string {
	if cfg.DataPath == "" {
		return string(cfg.Store)
	}
	return string(cfg.Store) + " " + cfg.DataPath
}
