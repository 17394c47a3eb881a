package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// LoadJuan loads the Juan configuration.
// Search order: customPath -> ~/.juan/configs/juan.yaml -> ./configs/juan.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadJuan(customPath string) (JuanConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JuanConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseJuan(data)
		if err != nil {
			return JuanConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("juan.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseJuan(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/juan.yaml"); err == nil {
		if cfg, err := parseJuan(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseJuan(GetDefaultYAML("juan"))
	if err != nil {
		return DefaultJuanConfig(), fmt.Errorf("config: embedded defaults: %w", err)
	}
	return cfg, nil
}

// parseJuan decodes data on top of the defaults and validates the result.
func parseJuan(data []byte) (JuanConfig, error) {
	cfg := DefaultJuanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JuanConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return JuanConfig{}, err
	}
	return cfg, nil
}

// Validate checks the values the simulation divides by or draws from.
func (c JuanConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"ball.radius", c.Ball.Radius},
		{"physics.points_per_meter", c.Physics.PointsPerMeter},
		{"scroll.velocity_divisor", c.Scroll.VelocityDivisor},
		{"platforms.normal.h", c.Platforms.Normal.H},
		{"platforms.breakable.h", c.Platforms.Breakable.H},
		{"platforms.moving.h", c.Platforms.Moving.H},
		{"platforms.power_up.h", c.Platforms.PowerUp.H},
		{"platforms.moving_period", c.Platforms.MovingPeriod},
		{"contact.super_jump_duration", c.Contact.SuperJumpDuration},
		{"contact.break_fade", c.Contact.BreakFade},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v: %w", p.name, p.val, ErrInvalid)
		}
	}

	odds := []struct {
		name string
		val  int
	}{
		{"platforms.count", c.Platforms.Count},
		{"recycle.power_up_odds", c.Recycle.PowerUpOdds},
		{"recycle.moving_odds", c.Recycle.MovingOdds},
		{"recycle.breakable_odds", c.Recycle.BreakableOdds},
	}
	for _, o := range odds {
		if o.val < 1 {
			return fmt.Errorf("config: %s must be at least 1, got %d: %w", o.name, o.val, ErrInvalid)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".juan", "configs", filename)
}

// ApplyJuanPreset modifies the config based on a difficulty preset.
// Easier games get a denser platform pool and more responsive tilt.
func ApplyJuanPreset(cfg *JuanConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Platforms.Count = 12
		cfg.Physics.TiltGain = 24
	case DifficultyHard:
		cfg.Platforms.Count = 8
		cfg.Physics.TiltGain = 16
	}
}
