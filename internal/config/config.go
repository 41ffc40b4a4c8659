// Package config provides YAML-based game configuration loading and
// difficulty presets for Rapid Roll.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDimensions is returned when an entity has no usable size.
// The simulation cannot run collision without valid rectangles.
var ErrInvalidDimensions = errors.New("config: invalid entity dimensions")

// RapidRollConfig contains all configuration for the game.
type RapidRollConfig struct {
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Platform PlatformConfig `yaml:"platform"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	PowerUp  PowerUpConfig  `yaml:"powerup"`
	Effects  EffectsConfig  `yaml:"effects"`
	Level    LevelConfig    `yaml:"level"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// WorldConfig defines the visible play area in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's body and physics.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`        // Horizontal units per tick
	SpeedBoost  float64 `yaml:"speed_boost"`  // Added to speed while power_ball is active
	JumpImpulse float64 `yaml:"jump_impulse"` // Upward velocity on jump (positive magnitude)
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity every tick
	Lives       int     `yaml:"lives"`
}

// PlatformConfig defines platform size and behavior profiles.
type PlatformConfig struct {
	Width          float64       `yaml:"width"`
	Height         float64       `yaml:"height"`
	Speed          float64       `yaml:"speed"` // Oscillation speed, units per tick
	Range          float64       `yaml:"range"` // Oscillation amplitude around the start x
	DisappearAfter time.Duration `yaml:"disappear_after"`
}

// ObstacleConfig defines obstacle size and speed range.
type ObstacleConfig struct {
	Size     float64 `yaml:"size"`
	MinSpeed int     `yaml:"min_speed"`
	MaxSpeed int     `yaml:"max_speed"`
}

// PowerUpConfig defines power-up size and how many spawn per level.
type PowerUpConfig struct {
	Size  float64 `yaml:"size"`
	Count int     `yaml:"count"`
}

// EffectsConfig defines the duration of each timed effect.
type EffectsConfig struct {
	PowerBall   time.Duration `yaml:"power_ball"`
	Shield      time.Duration `yaml:"shield"`
	DoubleScore time.Duration `yaml:"double_score"`
	SlowMotion  time.Duration `yaml:"slow_motion"`
}

// LevelConfig defines level timing and entity count scaling.
type LevelConfig struct {
	TimeBudget         time.Duration `yaml:"time_budget"`
	TimeExtension      time.Duration `yaml:"time_extension"`
	BasePlatforms      int           `yaml:"base_platforms"`
	PlatformsPerLevel  int           `yaml:"platforms_per_level"`
	BaseObstacles      int           `yaml:"base_obstacles"`
	ObstaclesPerLevel  int           `yaml:"obstacles_per_level"`
	MaxSelectableLevel int           `yaml:"max_selectable_level"`
	LevelUpBanner      time.Duration `yaml:"level_up_banner"`
	GameOverBanner     time.Duration `yaml:"game_over_banner"`
}

// ScoringConfig defines base point values; double score multiplies each by 2.
type ScoringConfig struct {
	Tick      int `yaml:"tick"`
	Pickup    int `yaml:"pickup"`
	BonusStar int `yaml:"bonus_star"`
}

// PlatformTarget returns how many platforms a level keeps alive.
func (c LevelConfig) PlatformTarget(level int) int {
	return c.BasePlatforms + c.PlatformsPerLevel*level
}

// ObstacleTarget returns how many obstacles a level keeps alive.
func (c LevelConfig) ObstacleTarget(level int) int {
	return c.BaseObstacles + c.ObstaclesPerLevel*level
}

// Validate checks that every entity has usable dimensions and that the
// ranges used by the spawner are well formed.
func (c RapidRollConfig) Validate() error {
	dims := []struct {
		name string
		w, h float64
	}{
		{"world", c.World.Width, c.World.Height},
		{"player", c.Player.Width, c.Player.Height},
		{"platform", c.Platform.Width, c.Platform.Height},
		{"obstacle", c.Obstacle.Size, c.Obstacle.Size},
		{"powerup", c.PowerUp.Size, c.PowerUp.Size},
	}
	for _, d := range dims {
		if d.w <= 0 || d.h <= 0 {
			return fmt.Errorf("%w: %s is %gx%g", ErrInvalidDimensions, d.name, d.w, d.h)
		}
	}

	for _, d := range dims[1:] {
		if d.w > c.World.Width {
			return fmt.Errorf("%w: %s is wider than the world", ErrInvalidDimensions, d.name)
		}
	}

	if c.Obstacle.MinSpeed > c.Obstacle.MaxSpeed {
		return fmt.Errorf("config: obstacle min_speed %d exceeds max_speed %d",
			c.Obstacle.MinSpeed, c.Obstacle.MaxSpeed)
	}
	if c.Player.Lives <= 0 {
		return fmt.Errorf("config: player lives must be positive, got %d", c.Player.Lives)
	}
	if c.Level.TimeBudget <= 0 {
		return fmt.Errorf("config: level time_budget must be positive, got %s", c.Level.TimeBudget)
	}
	return nil
}
