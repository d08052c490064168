package core

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds engine configuration
type Config struct {
	// Width and Height of the playfield in simulation units (pixels of
	// the low-resolution surface)
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// TickRate is the number of fixed simulation steps per second
	TickRate float64 `yaml:"tick_rate"`

	// MaxFrameTime caps the seconds fed to the loop per frame; 0 disables it
	MaxFrameTime float64 `yaml:"max_frame_time"`

	// Seed for the simulation RNG; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	// Scale is the window magnification of the playfield
	Scale int `yaml:"scale"`

	// AudioEnabled toggles tone output
	AudioEnabled bool `yaml:"audio_enabled"`

	// MasterVolume in [0,1]
	MasterVolume float64 `yaml:"master_volume"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:        240,
		Height:       135,
		TickRate:     60,
		MaxFrameTime: 0.25,
		Scale:        4,
		AudioEnabled: true,
		MasterVolume: 0.8,
	}
}

// LoadConfig returns DefaultConfig overlaid with PIXEL_ROGUE_* environment
// variables. Malformed values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()
	cfg.applyEnv()
	return cfg
}

// LoadConfigFile reads a YAML file over DefaultConfig, then applies the
// environment. Keys missing from the file keep their defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// Validate rejects settings the loop and renderer cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("playfield %gx%g must be positive", c.Width, c.Height)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate %g must be positive", c.TickRate)
	}
	if c.MaxFrameTime < 0 {
		return fmt.Errorf("max_frame_time %g must not be negative", c.MaxFrameTime)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("master_volume %g must be within [0,1]", c.MasterVolume)
	}
	return nil
}

func (cfg *Config) applyEnv() {
	if v := os.Getenv("PIXEL_ROGUE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("PIXEL_ROGUE_SCALE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Scale = n
		}
	}
	if v := os.Getenv("PIXEL_ROGUE_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AudioEnabled = b
		}
	}
	// 0-100 converted to 0.0-1.0
	if v := os.Getenv("PIXEL_ROGUE_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = clampUnit(float64(n) / 100.0)
		}
	}
	if v := os.Getenv("PIXEL_ROGUE_MAX_FRAME_TIME"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.MaxFrameTime = f
		}
	}
}

// ScreenSize returns the playfield size in whole pixels
func (c Config) ScreenSize() (int, int) {
	return int(c.Width), int(c.Height)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
