package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/rapidroll.yaml
var defaultRapidRollYAML []byte

// DefaultRapidRollConfig returns the built-in configuration.
// It mirrors defaults/rapidroll.yaml and is used if the embedded file
// cannot be parsed.
func DefaultRapidRollConfig() RapidRollConfig {
	return RapidRollConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:       50,
			Height:      50,
			Speed:       5,
			SpeedBoost:  3,
			JumpImpulse: 15,
			Gravity:     0.8,
			Lives:       3,
		},
		Platform: PlatformConfig{
			Width:          100,
			Height:         20,
			Speed:          2,
			Range:          100,
			DisappearAfter: 5 * time.Second,
		},
		Obstacle: ObstacleConfig{
			Size:     40,
			MinSpeed: 2,
			MaxSpeed: 5,
		},
		PowerUp: PowerUpConfig{
			Size:  30,
			Count: 3,
		},
		Effects: EffectsConfig{
			PowerBall:   5 * time.Second,
			Shield:      5 * time.Second,
			DoubleScore: 5 * time.Second,
			SlowMotion:  5 * time.Second,
		},
		Level: LevelConfig{
			TimeBudget:         120 * time.Second,
			TimeExtension:      30 * time.Second,
			BasePlatforms:      10,
			PlatformsPerLevel:  2,
			BaseObstacles:      5,
			ObstaclesPerLevel:  1,
			MaxSelectableLevel: 5,
			LevelUpBanner:      2 * time.Second,
			GameOverBanner:     3 * time.Second,
		},
		Scoring: ScoringConfig{
			Tick:      1,
			Pickup:    50,
			BonusStar: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRapidRollYAML
}
