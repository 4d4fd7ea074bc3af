// Package config provides configuration loading for morse.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gigurra/morse/cmd/common/morse"
	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config file location.
const EnvPath = "MORSE_CONFIG"

// Config represents the morse configuration file structure.
type Config struct {
	// DotMs is the base unit in milliseconds. Zero means derive it from WPM.
	DotMs       int          `yaml:"dot_ms"`
	WPM         int          `yaml:"wpm"`
	ToneHz      float64      `yaml:"tone_hz"`
	Volume      float64      `yaml:"volume"`
	HistoryPath string       `yaml:"history_path"`
	Visual      VisualConfig `yaml:"visual"`
}

// VisualConfig holds the glyphs used when flashing Morse in the terminal.
type VisualConfig struct {
	Dot   string `yaml:"dot"`
	Dash  string `yaml:"dash"`
	Color string `yaml:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		WPM:         15,
		ToneHz:      700,
		Volume:      0.5,
		HistoryPath: filepath.Join(Dir(), "morse_history.txt"),
		Visual: VisualConfig{
			Dot:   "●",
			Dash:  "▬▬▬",
			Color: "196",
		},
	}
}

// Dir returns the morse config directory (~/.morse).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".morse")
}

// Path returns the config file path, honouring MORSE_CONFIG.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.yaml")
}

// Load loads the config from Path(). Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile loads and validates the config at path, filling unset fields with defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.WPM == 0 {
		c.WPM = def.WPM
	}
	if c.ToneHz == 0 {
		c.ToneHz = def.ToneHz
	}
	if c.Volume == 0 {
		c.Volume = def.Volume
	}
	if c.HistoryPath == "" {
		c.HistoryPath = def.HistoryPath
	}
	c.HistoryPath = expandHome(c.HistoryPath)
	if c.Visual.Dot == "" {
		c.Visual.Dot = def.Visual.Dot
	}
	if c.Visual.Dash == "" {
		c.Visual.Dash = def.Visual.Dash
	}
	if c.Visual.Color == "" {
		c.Visual.Color = def.Visual.Color
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.DotMs < 0:
		return fmt.Errorf("dot_ms must not be negative, got %d", c.DotMs)
	case c.WPM <= 0:
		return fmt.Errorf("wpm must be positive, got %d", c.WPM)
	case c.ToneHz <= 0:
		return fmt.Errorf("tone_hz must be positive, got %v", c.ToneHz)
	case c.Volume <= 0 || c.Volume > 1:
		return fmt.Errorf("volume must be in (0, 1], got %v", c.Volume)
	}
	return nil
}

// Save writes the config to Path().
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Timing returns the playback profile. dotMs and wpm override the file
// values when positive, with dotMs taking precedence. Zero means unset and
// negative overrides are rejected.
func (c *Config) Timing(dotMs, wpm int) (morse.Timing, error) {
	if dotMs < 0 {
		return morse.Timing{}, fmt.Errorf("--dot %d: %w", dotMs, morse.ErrInvalidDot)
	}
	if wpm < 0 {
		return morse.Timing{}, fmt.Errorf("--wpm %d: %w", wpm, morse.ErrInvalidWPM)
	}
	if dotMs == 0 {
		dotMs = c.DotMs
	}
	if dotMs > 0 {
		return morse.NewTiming(time.Duration(dotMs) * time.Millisecond)
	}
	if wpm == 0 {
		wpm = c.WPM
	}
	return morse.TimingForWPM(wpm)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
