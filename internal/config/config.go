package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/monsterdex/monsterdex/internal/paths"
)

// Config is the parsed config.toml.
type Config struct {
	Data      DataConfig      `toml:"data"`
	Log       LogConfig       `toml:"log"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

type DataConfig struct {
	File     string `toml:"file"`      // json, yaml or sqlite dataset; empty uses the bundled one
	IconsDir string `toml:"icons_dir"` // directory of ANSI icon art
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// TelemetryConfig enables anonymous usage events. Off unless a key is set.
type TelemetryConfig struct {
	Enabled  bool   `toml:"enabled"`
	Endpoint string `toml:"endpoint"`
	Key      string `toml:"key"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Data: DataConfig{
			IconsDir: paths.GetIconsDir(),
		},
		Log: LogConfig{
			Level: "info",
			File:  paths.GetLogPath(),
		},
	}
}

// Load reads the config file at path over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Data.File = Expand(cfg.Data.File)
	cfg.Data.IconsDir = Expand(cfg.Data.IconsDir)
	cfg.Log.File = Expand(cfg.Log.File)
	return cfg, nil
}

// Expand replaces ${HOME} and the ${XDG_*} base directories in s, and a
// leading ~/ with the home directory.
func Expand(s string) string {
	if s == "" {
		return s
	}
	if rest, ok := strings.CutPrefix(s, "~/"); ok {
		s = "${HOME}/" + rest
	}
	r := strings.NewReplacer(
		"${HOME}", xdg.Home,
		"${XDG_CONFIG_HOME}", xdg.ConfigHome,
		"${XDG_DATA_HOME}", xdg.DataHome,
		"${XDG_STATE_HOME}", xdg.StateHome,
		"${XDG_CACHE_HOME}", xdg.CacheHome,
	)
	return r.Replace(s)
}

// TelemetryEnabled reports whether events should be sent.
func (c Config) TelemetryEnabled() bool {
	return c.Telemetry.Enabled && c.Telemetry.Key != ""
}
