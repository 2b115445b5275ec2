package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	wantFeed, err := expandPath(defaultEventFeed)
	if err != nil {
		t.Fatalf("expandPath(defaultEventFeed) returned error: %v", err)
	}
	if cfg.EventFeed != wantFeed {
		t.Fatalf("EventFeed = %q, want %q", cfg.EventFeed, wantFeed)
	}
	if !strings.HasPrefix(cfg.StateFile, home) {
		t.Fatalf("StateFile = %q, want it under HOME %q", cfg.StateFile, home)
	}
	if cfg.PollInterval != 10*time.Millisecond {
		t.Fatalf("PollInterval = %v, want 10ms", cfg.PollInterval)
	}
	if cfg.Backlog != defaultBacklog || cfg.QueueSize != defaultQueueSize {
		t.Fatalf("Backlog/QueueSize = %d/%d, want %d/%d", cfg.Backlog, cfg.QueueSize, defaultBacklog, defaultQueueSize)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
event_feed = "  ~/eqa/display.jsonl  "
state_file = "/srv/eqa/state.toml"
log_level = " DEBUG "
poll_interval_ms = 25
feed_interval_ms = 500
backlog = 50
queue_size = 1024
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.EventFeed != filepath.Join(home, "eqa/display.jsonl") {
		t.Fatalf("EventFeed = %q, want it expanded under HOME", cfg.EventFeed)
	}
	if cfg.StateFile != "/srv/eqa/state.toml" {
		t.Fatalf("StateFile = %q, want %q", cfg.StateFile, "/srv/eqa/state.toml")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.PollInterval != 25*time.Millisecond {
		t.Fatalf("PollInterval = %v, want 25ms", cfg.PollInterval)
	}
	if cfg.FeedInterval != 500*time.Millisecond {
		t.Fatalf("FeedInterval = %v, want 500ms", cfg.FeedInterval)
	}
	if cfg.Backlog != 50 || cfg.QueueSize != 1024 {
		t.Fatalf("Backlog/QueueSize = %d/%d, want 50/1024", cfg.Backlog, cfg.QueueSize)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
event_feed = "   "
log_file = ""
poll_interval_ms = -5
backlog = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`event_feed = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
