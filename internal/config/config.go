package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/petpad/internal/kv"
)

// Config captures petpad's runtime settings after merging the config file,
// the environment and built-in defaults.
type Config struct {
	Store         kv.Backend
	DataPath      string
	Locale        string
	ClockInterval time.Duration
	LogPath       string
}

const (
	defaultConfigPath    = "~/.config/petpad/config.toml"
	defaultDataDir       = "~/.local/share/petpad"
	defaultLocale        = "en-US"
	defaultClockInterval = time.Second
)

type fileConfig struct {
	Store         string `toml:"store"`
	DataPath      string `toml:"data_path"`
	Locale        string `toml:"locale"`
	ClockInterval string `toml:"clock_interval"`
	LogPath       string `toml:"log_path"`
}

type envConfig struct {
	Store         string        `env:"PETPAD_STORE"`
	DataPath      string        `env:"PETPAD_DATA_PATH"`
	Locale        string        `env:"PETPAD_LOCALE"`
	ClockInterval time.Duration `env:"PETPAD_CLOCK_INTERVAL"`
	LogPath       string        `env:"PETPAD_LOG_PATH"`

	// System locale, consulted when nothing petpad-specific is set.
	LCAll string `env:"LC_ALL"`
	Lang  string `env:"LANG"`
}

// Load reads the config file at path (or the default location), then applies
// PETPAD_* environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	raw, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}

	var overrides envConfig
	if err := env.Parse(&overrides); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return merge(raw, overrides)
}

func readFile(path string) (fileConfig, error) {
	var raw fileConfig

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return raw, nil
		}
		return raw, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return raw, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return raw, fmt.Errorf("parse config: %w", err)
	}
	return raw, nil
}

func merge(raw fileConfig, overrides envConfig) (Config, error) {
	backend, err := kv.ParseBackend(firstNonEmpty(overrides.Store, raw.Store))
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg := Config{Store: backend, ClockInterval: defaultClockInterval}

	if v := strings.TrimSpace(raw.ClockInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: clock_interval: %w", err)
		}
		cfg.ClockInterval = d
	}
	if overrides.ClockInterval > 0 {
		cfg.ClockInterval = overrides.ClockInterval
	}
	if cfg.ClockInterval <= 0 {
		cfg.ClockInterval = defaultClockInterval
	}

	cfg.Locale = firstNonEmpty(overrides.Locale, raw.Locale, overrides.LCAll, overrides.Lang, defaultLocale)

	dataPath := firstNonEmpty(overrides.DataPath, raw.DataPath)
	if dataPath == "" {
		dataPath = DefaultDataPath(backend)
	}
	if backend != kv.BackendMemory {
		cfg.DataPath = mustExpand(dataPath)
	}

	if logPath := firstNonEmpty(overrides.LogPath, raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}

	return cfg, nil
}

// DefaultDataPath returns the store location used when none is configured.
func DefaultDataPath(backend kv.Backend) string {
	switch backend {
	case kv.BackendSQLite:
		return defaultDataDir + "/petpad.db"
	case kv.BackendMemory:
		return ""
	default:
		return defaultDataDir + "/petpad.json"
	}
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
