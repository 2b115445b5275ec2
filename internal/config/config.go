package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures where the display reads its input and how it paces itself.
type Config struct {
	EventFeed    string
	StateFile    string
	LogFile      string
	LogLevel     string
	PollInterval time.Duration // consumer idle wait
	FeedInterval time.Duration // producer file poll
	Backlog      int
	QueueSize    int
}

const (
	defaultConfigPath   = "~/.config/eqdisplay/config.toml"
	defaultDataDir      = "~/.local/share/eqdisplay"
	defaultEventFeed    = defaultDataDir + "/display.jsonl"
	defaultStateFile    = defaultDataDir + "/state.toml"
	defaultLogFile      = defaultDataDir + "/eqdisplay.log"
	defaultLogLevel     = "info"
	defaultPollInterval = 10 * time.Millisecond
	defaultFeedInterval = 250 * time.Millisecond
	defaultBacklog      = 200
	defaultQueueSize    = 256
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		EventFeed:    mustExpand(defaultEventFeed),
		StateFile:    mustExpand(defaultStateFile),
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
		PollInterval: defaultPollInterval,
		FeedInterval: defaultFeedInterval,
		Backlog:      defaultBacklog,
		QueueSize:    defaultQueueSize,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		EventFeed      string `toml:"event_feed"`
		StateFile      string `toml:"state_file"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		PollIntervalMS int    `toml:"poll_interval_ms"`
		FeedIntervalMS int    `toml:"feed_interval_ms"`
		Backlog        int    `toml:"backlog"`
		QueueSize      int    `toml:"queue_size"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.EventFeed); v != "" {
		cfg.EventFeed = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.StateFile); v != "" {
		cfg.StateFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if raw.PollIntervalMS > 0 {
		cfg.PollInterval = time.Duration(raw.PollIntervalMS) * time.Millisecond
	}
	if raw.FeedIntervalMS > 0 {
		cfg.FeedInterval = time.Duration(raw.FeedIntervalMS) * time.Millisecond
	}
	if raw.Backlog > 0 {
		cfg.Backlog = raw.Backlog
	}
	if raw.QueueSize > 0 {
		cfg.QueueSize = raw.QueueSize
	}

	return cfg, nil
}

// ExpandPath resolves a user supplied path the same way config values are.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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
