package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestNewManagerWritesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	m, err := NewManager(fs, "/cfg/countdown/config.yaml")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	cfg := m.GetConfig()
	if cfg.Timer.Minutes != DefaultMinutes || cfg.UI.Theme != DefaultTheme {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	data, err := afero.ReadFile(fs, "/cfg/countdown/config.yaml")
	if err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}
	if !strings.Contains(string(data), "minutes: 5") {
		t.Fatalf("unexpected config contents:\n%s", data)
	}
}

func TestNewManagerLoadsAndClamps(t *testing.T) {
	fs := afero.NewMemMapFs()
	body := "timer:\n  hours: 40\n  minutes: -3\n  seconds: 75\nalert:\n  volume: 9\nui:\n  theme: dracula\n"
	if err := afero.WriteFile(fs, "/c.yaml", []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	m, err := NewManager(fs, "/c.yaml")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	cfg := m.GetConfig()
	if cfg.Timer.Hours != MaxHours || cfg.Timer.Minutes != 0 || cfg.Timer.Seconds != MaxSeconds {
		t.Fatalf("expected clamped timer, got %+v", cfg.Timer)
	}
	if cfg.Alert.Volume != MaxVolume {
		t.Fatalf("expected clamped volume, got %v", cfg.Alert.Volume)
	}
	if cfg.UI.Theme != "dracula" {
		t.Fatalf("expected theme dracula, got %q", cfg.UI.Theme)
	}
	if !cfg.History.Enabled {
		t.Fatalf("omitted history section should keep the default")
	}
}

func TestNewManagerMalformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/c.yaml", []byte("timer: [1, 2"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := NewManager(fs, "/c.yaml"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestHistoryPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	cfg := DefaultConfig()
	if got := cfg.HistoryPath(); got != "/data/countdown/history.db" {
		t.Fatalf("unexpected default history path %q", got)
	}
	cfg.History.Path = "/tmp/h.db"
	if got := cfg.HistoryPath(); got != "/tmp/h.db" {
		t.Fatalf("expected override, got %q", got)
	}
}

func TestDefaultPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != "/xdg/countdown/config.yaml" {
		t.Fatalf("unexpected path %q", got)
	}
}
