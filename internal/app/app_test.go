package app

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/petpad/internal/config"
	"github.com/five82/petpad/internal/kv"
)

func baseConfig(home string) config.Config {
	return config.Config{
		Store:         kv.BackendFile,
		DataPath:      filepath.Join(home, ".local/share/petpad/petpad.json"),
		Locale:        "en-US",
		ClockInterval: time.Second,
	}
}

func TestApplyOptions_EmptyKeepsConfig(t *testing.T) {
	cfg := baseConfig(t.TempDir())
	got, err := applyOptions(cfg, Options{})
	if err != nil {
		t.Fatalf("applyOptions returned error: %v", err)
	}
	if got != cfg {
		t.Fatalf("applyOptions = %+v, want %+v", got, cfg)
	}
}

func TestApplyOptions_SwitchBackendUsesItsDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := applyOptions(baseConfig(home), Options{Store: "sqlite"})
	if err != nil {
		t.Fatalf("applyOptions returned error: %v", err)
	}
	if got.Store != kv.BackendSQLite {
		t.Fatalf("Store = %q, want sqlite", got.Store)
	}
	if want := filepath.Join(home, ".local/share/petpad/petpad.db"); got.DataPath != want {
		t.Fatalf("DataPath = %q, want %q", got.DataPath, want)
	}

	got, err = applyOptions(baseConfig(home), Options{Store: "memory", DataPath: "/ignored"})
	if err != nil {
		t.Fatalf("applyOptions returned error: %v", err)
	}
	if got.Store != kv.BackendMemory || got.DataPath != "" {
		t.Fatalf("cfg = %+v, want memory with no data path", got)
	}
}

func TestApplyOptions_MemoryIgnoresDataPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		cfg  config.Config
		opts Options
	}{
		{"memory from config", config.Config{Store: kv.BackendMemory}, Options{DataPath: "/x"}},
		{"memory flag over file config", baseConfig(home), Options{Store: "memory", DataPath: "/x"}},
		{"memory flag alone", baseConfig(home), Options{Store: "memory"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyOptions(tt.cfg, tt.opts)
			if err != nil {
				t.Fatalf("applyOptions returned error: %v", err)
			}
			if got.DataPath != "" {
				t.Fatalf("DataPath = %q, want empty for memory", got.DataPath)
			}
			if label := storeLabel(got); label != "memory" {
				t.Fatalf("storeLabel = %q, want memory", label)
			}
		})
	}
}

func TestApplyOptions_ExplicitValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := applyOptions(baseConfig(home), Options{
		Store:    "sqlite",
		DataPath: "~/custom.db",
		Locale:   "fr-FR",
		LogPath:  "~/logs/petpad.log",
	})
	if err != nil {
		t.Fatalf("applyOptions returned error: %v", err)
	}
	if got.DataPath != filepath.Join(home, "custom.db") {
		t.Fatalf("DataPath = %q", got.DataPath)
	}
	if got.Locale != "fr-FR" {
		t.Fatalf("Locale = %q, want fr-FR", got.Locale)
	}
	if got.LogPath != filepath.Join(home, "logs/petpad.log") {
		t.Fatalf("LogPath = %q", got.LogPath)
	}
}

func TestApplyOptions_UnknownStoreFails(t *testing.T) {
	if _, err := applyOptions(baseConfig(t.TempDir()), Options{Store: "redis"}); err == nil {
		t.Fatalf("applyOptions returned nil error for unknown store")
	}
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "logs", "petpad.log")
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging returned error: %v", err)
	}
	log.Printf("hello from test")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log = %q, want it to contain the message", data)
	}
}

func TestStoreLabel(t *testing.T) {
	if got := storeLabel(config.Config{Store: kv.BackendMemory}); got != "memory" {
		t.Fatalf("storeLabel = %q, want memory", got)
	}
	if got := storeLabel(config.Config{Store: kv.BackendFile, DataPath: "/tmp/p.json"}); got != "file /tmp/p.json" {
		t.Fatalf("storeLabel = %q", got)
	}
}
