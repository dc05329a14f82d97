package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/petpad/internal/kv"
)

func clearEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"PETPAD_STORE", "PETPAD_DATA_PATH", "PETPAD_LOCALE",
		"PETPAD_CLOCK_INTERVAL", "PETPAD_LOG_PATH", "LC_ALL", "LANG",
	} {
		t.Setenv(key, "")
	}
	return home
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := clearEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Store != kv.BackendFile {
		t.Fatalf("Store = %q, want %q", cfg.Store, kv.BackendFile)
	}
	want := filepath.Join(home, ".local/share/petpad/petpad.json")
	if cfg.DataPath != want {
		t.Fatalf("DataPath = %q, want %q", cfg.DataPath, want)
	}
	if cfg.Locale != defaultLocale {
		t.Fatalf("Locale = %q, want %q", cfg.Locale, defaultLocale)
	}
	if cfg.ClockInterval != time.Second {
		t.Fatalf("ClockInterval = %v, want 1s", cfg.ClockInterval)
	}
	if cfg.LogPath != "" {
		t.Fatalf("LogPath = %q, want empty", cfg.LogPath)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := clearEnv(t)
	path := writeConfig(t, `
store = "  sqlite "
data_path = "  ~/pets/data.db  "
locale = " de-DE "
clock_interval = "250ms"
log_path = "~/petpad.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Store != kv.BackendSQLite {
		t.Fatalf("Store = %q, want sqlite", cfg.Store)
	}
	if cfg.DataPath != filepath.Join(home, "pets/data.db") {
		t.Fatalf("DataPath = %q, want it under HOME %q", cfg.DataPath, home)
	}
	if cfg.Locale != "de-DE" {
		t.Fatalf("Locale = %q, want de-DE", cfg.Locale)
	}
	if cfg.ClockInterval != 250*time.Millisecond {
		t.Fatalf("ClockInterval = %v, want 250ms", cfg.ClockInterval)
	}
	if !strings.HasPrefix(cfg.LogPath, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", cfg.LogPath, home)
	}
}

func TestLoad_SQLiteDefaultsToDBFile(t *testing.T) {
	home := clearEnv(t)
	cfg, err := Load(writeConfig(t, `store = "sqlite"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataPath != filepath.Join(home, ".local/share/petpad/petpad.db") {
		t.Fatalf("DataPath = %q, want petpad.db under HOME", cfg.DataPath)
	}
}

func TestLoad_MemoryHasNoDataPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETPAD_STORE", "memory")
	cfg, err := Load(writeConfig(t, `data_path = "/tmp/ignored.json"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Store != kv.BackendMemory || cfg.DataPath != "" {
		t.Fatalf("cfg = %+v, want memory store with no data path", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
store = "file"
locale = "fr-FR"
clock_interval = "2s"
`)
	dataPath := filepath.Join(t.TempDir(), "env.db")
	t.Setenv("PETPAD_STORE", "sqlite")
	t.Setenv("PETPAD_DATA_PATH", dataPath)
	t.Setenv("PETPAD_LOCALE", "ja-JP")
	t.Setenv("PETPAD_CLOCK_INTERVAL", "500ms")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Store != kv.BackendSQLite {
		t.Fatalf("Store = %q, want sqlite", cfg.Store)
	}
	if cfg.DataPath != dataPath {
		t.Fatalf("DataPath = %q, want %q", cfg.DataPath, dataPath)
	}
	if cfg.Locale != "ja-JP" {
		t.Fatalf("Locale = %q, want ja-JP", cfg.Locale)
	}
	if cfg.ClockInterval != 500*time.Millisecond {
		t.Fatalf("ClockInterval = %v, want 500ms", cfg.ClockInterval)
	}
}

func TestLoad_LocaleFallsBackToSystem(t *testing.T) {
	clearEnv(t)
	t.Setenv("LANG", "es_ES.UTF-8")

	cfg, err := Load(writeConfig(t, ``))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Locale != "es_ES.UTF-8" {
		t.Fatalf("Locale = %q, want es_ES.UTF-8", cfg.Locale)
	}

	t.Setenv("LC_ALL", "de_DE.UTF-8")
	cfg, err = Load(writeConfig(t, ``))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Locale != "de_DE.UTF-8" {
		t.Fatalf("Locale = %q, want LC_ALL to win over LANG", cfg.Locale)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, `store = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown store", `store = "redis"`},
		{"bad interval", `clock_interval = "soon"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Fatalf("Load returned nil error for %s", tt.body)
			}
		})
	}
}

func TestLoad_NonPositiveIntervalUsesDefault(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, `clock_interval = "-1s"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ClockInterval != defaultClockInterval {
		t.Fatalf("ClockInterval = %v, want %v", cfg.ClockInterval, defaultClockInterval)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := clearEnv(t)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "a/b"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
