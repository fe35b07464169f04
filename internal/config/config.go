package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the player configuration. The file is optional and read
// once at startup; nothing is ever written back.
type Config struct {
	MusicDir             string  `koanf:"music_dir"`             // directory scanned for tracks
	Volume               float64 `koanf:"volume"`                // initial volume, 0.0-1.0
	LogLevel             string  `koanf:"log_level"`             // "debug", "info", "warn" or "error"
	DisableMPRIS         bool    `koanf:"disable_mpris"`         // skip the D-Bus remote even on Linux
	DisableNotifications bool    `koanf:"disable_notifications"` // no track-change desktop notifications
}

// Load reads the candidate config files in priority order (last wins)
// and applies defaults for anything unset. A missing file is normal;
// a present but unreadable one is an error.
func Load() (*Config, error) {
	return load(configPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		MusicDir: "music",
		Volume:   1.0,
		LogLevel: "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.MusicDir = expandPath(cfg.MusicDir)
	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > 1 {
		cfg.Volume = 1
	}

	return cfg, nil
}

// configPaths lists candidate config files, lowest priority first.
func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "tapedeck", "config.toml"),
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SlogLevel parses the configured log level, falling back to info on
// anything unrecognized.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
