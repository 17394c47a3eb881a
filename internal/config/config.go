// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "fmt"

// JuanConfig contains all tuning for the Juan bouncing-ball game.
// Distances are in world points (Y grows upward), times in seconds.
type JuanConfig struct {
	World     JuanWorld     `yaml:"world"`
	Ball      JuanBall      `yaml:"ball"`
	Physics   JuanPhysics   `yaml:"physics"`
	Scroll    JuanScroll    `yaml:"scroll"`
	Platforms JuanPlatforms `yaml:"platforms"`
	Recycle   JuanRecycle   `yaml:"recycle"`
	Contact   JuanContact   `yaml:"contact"`
}

// JuanWorld defines the logical screen the game is simulated on.
type JuanWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JuanBall defines the ball.
type JuanBall struct {
	Radius      float64 `yaml:"radius"`
	SpawnOffset float64 `yaml:"spawn_offset"` // gap between the bottom edge and the ball at spawn
}

// JuanPhysics defines gravity and tilt parameters.
type JuanPhysics struct {
	Gravity        float64 `yaml:"gravity"`          // m/s^2, downward pull
	PointsPerMeter float64 `yaml:"points_per_meter"` // world points per meter
	TiltGain       float64 `yaml:"tilt_gain"`        // multiplier on the raw accelerometer sample
	SuperJumpPull  float64 `yaml:"super_jump_pull"`  // replaces Gravity during a super jump
	MaxVelocityX   float64 `yaml:"max_velocity_x"`
	MaxVelocityY   float64 `yaml:"max_velocity_y"`
}

// JuanScroll defines the world scroll engine.
type JuanScroll struct {
	VelocityDivisor float64 `yaml:"velocity_divisor"`
	SuperJumpBase   float64 `yaml:"super_jump_base"`
	SuperJumpStep   float64 `yaml:"super_jump_step"`
}

// Size is a width/height pair.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// JuanPlatforms defines the platform pool and sprite sizes per category.
type JuanPlatforms struct {
	Count        int     `yaml:"count"`
	Normal       Size    `yaml:"normal"`
	Breakable    Size    `yaml:"breakable"`
	Moving       Size    `yaml:"moving"`
	PowerUp      Size    `yaml:"power_up"`
	FloorHeight  float64 `yaml:"floor_height"`
	MovingPeriod float64 `yaml:"moving_period"` // seconds per sweep in one direction
	BandPadding  float64 `yaml:"band_padding"`  // keeps initial platforms away from band edges
}

// JuanRecycle defines the "1 in N" odds used when re-skinning a platform.
type JuanRecycle struct {
	PowerUpOdds   int `yaml:"power_up_odds"`
	MovingOdds    int `yaml:"moving_odds"`
	BreakableOdds int `yaml:"breakable_odds"`
}

// JuanContact defines collision reactions.
type JuanContact struct {
	BounceFactor      float64 `yaml:"bounce_factor"` // bounce velocity = height*factor - ballY
	SuperJumpVelocity float64 `yaml:"super_jump_velocity"`
	SuperJumpDuration float64 `yaml:"super_jump_duration"`
	BreakFade         float64 `yaml:"break_fade"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q: %w", s, ErrInvalid)
	}
}
