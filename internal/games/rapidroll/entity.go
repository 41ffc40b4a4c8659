package rapidroll

import (
	"time"

	"github.com/vovakirdan/tui-rapidroll/internal/core"
)

// ObstacleKind is the closed set of hazards.
type ObstacleKind int

const (
	ObstacleSpike ObstacleKind = iota
	ObstacleBomb
	ObstacleMovingSaw
	ObstacleFallingRock
	ObstacleRollingBarrel
	ObstacleFireball
	obstacleKindCount
)

// Motion is how an obstacle moves each tick.
type Motion int

const (
	MotionStatic Motion = iota // never moves
	MotionFall                 // descends, recycles above the screen
	MotionPatrol               // moves sideways, bounces at the world edges
)

// Motion returns the movement profile for the kind.
func (k ObstacleKind) Motion() Motion {
	switch k {
	case ObstacleBomb, ObstacleFallingRock, ObstacleFireball:
		return MotionFall
	case ObstacleMovingSaw, ObstacleRollingBarrel:
		return MotionPatrol
	default:
		return MotionStatic
	}
}

// String returns the name of the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleSpike:
		return "spike"
	case ObstacleBomb:
		return "bomb"
	case ObstacleMovingSaw:
		return "moving_saw"
	case ObstacleFallingRock:
		return "falling_rock"
	case ObstacleRollingBarrel:
		return "rolling_barrel"
	case ObstacleFireball:
		return "fireball"
	default:
		return "?"
	}
}

// PowerUpKind is the closed set of pickups.
type PowerUpKind int

const (
	PowerUpExtraLife PowerUpKind = iota
	PowerUpBonusStar
	PowerUpPowerBall
	PowerUpTimeExtension
	PowerUpShield
	PowerUpDoubleScore
	PowerUpSlowMotion
	powerUpKindCount
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpExtraLife:
		return "extra_life"
	case PowerUpBonusStar:
		return "bonus_star"
	case PowerUpPowerBall:
		return "power_ball"
	case PowerUpTimeExtension:
		return "time_extension"
	case PowerUpShield:
		return "shield"
	case PowerUpDoubleScore:
		return "double_score"
	case PowerUpSlowMotion:
		return "slow_motion"
	default:
		return "?"
	}
}

// Effect returns the timed effect a pickup activates, if any.
func (k PowerUpKind) Effect() (EffectKind, bool) {
	switch k {
	case PowerUpPowerBall:
		return EffectPowerBall, true
	case PowerUpShield:
		return EffectShield, true
	case PowerUpDoubleScore:
		return EffectDoubleScore, true
	case PowerUpSlowMotion:
		return EffectSlowMotion, true
	default:
		return 0, false
	}
}

// Player is the controlled actor. It survives level regeneration.
type Player struct {
	Body    core.Rect
	VY      float64 // Positive is downward
	Speed   float64 // Current horizontal speed, boosted by power_ball
	Lives   int
	Score   int
	Effects Effects
}

// Platform is a ledge the player can land on.
type Platform struct {
	Body core.Rect

	// Oscillation profile
	Moving bool
	Dir    float64
	StartX float64

	// Disappearance profile; BornAt is stamped on the first update.
	Disappearing bool
	Stamped      bool
	BornAt       time.Duration
}

// Obstacle is a hazard that costs a life on contact.
type Obstacle struct {
	Body  core.Rect
	Kind  ObstacleKind
	Speed float64
	Dir   float64
}

// PowerUp is a stationary pickup.
type PowerUp struct {
	Body core.Rect
	Kind PowerUpKind
}
