package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/matzehuels/panels/pkg/core/gesture"
)

// defaultStep is the keyboard nudge, in percent, when none is configured.
const defaultStep = 1.0

// Config holds user preferences. Every field is optional.
type Config struct {
	Direction  string  `koanf:"direction"`   // default for files that declare none
	Zoom       float64 `koanf:"zoom"`        // pointer correction (default: 1)
	Scale      float64 `koanf:"scale"`       // pointer correction (default: 1)
	Step       float64 `koanf:"step"`        // keyboard nudge in percent (default: 1)
	DebounceMS int     `koanf:"debounce_ms"` // file watch quiet period (default: 150)
}

func defaultConfig() *Config {
	return &Config{}
}

// loadConfig reads the TOML files in paths that exist, later files
// overriding earlier ones.
func loadConfig(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configPaths lists the config files in order of priority (last wins):
// $XDG_CONFIG_HOME/panels/config.toml, then ./.panels.toml.
func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		"." + appName + ".toml",
	}
}

func (c *Config) direction() (gesture.Direction, error) {
	return gesture.ParseDirection(c.Direction)
}

func (c *Config) correction() gesture.Correction {
	return gesture.Correction{Zoom: c.Zoom, Scale: c.Scale}
}

func (c *Config) step() float64 {
	if c.Step <= 0 {
		return defaultStep
	}
	return c.Step
}

func (c *Config) debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return 0
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}
