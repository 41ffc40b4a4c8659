package rapidroll

import (
	"time"

	"github.com/vovakirdan/tui-rapidroll/internal/config"
)

// EffectKind is a timed modifier on the player.
type EffectKind int

const (
	EffectPowerBall   EffectKind = iota // Horizontal speed boost
	EffectShield                        // Damage immunity
	EffectDoubleScore                   // Every score award doubled
	EffectSlowMotion                    // Tick rate halved
	effectKindCount
)

// String returns the name of the effect.
func (k EffectKind) String() string {
	switch k {
	case EffectPowerBall:
		return "power_ball"
	case EffectShield:
		return "shield"
	case EffectDoubleScore:
		return "double_score"
	case EffectSlowMotion:
		return "slow_motion"
	default:
		return "?"
	}
}

// Effects tracks at most one instance of each effect kind.
// Timestamps are simulation time, never wall-clock time.
type Effects struct {
	active [effectKindCount]bool
	since  [effectKindCount]time.Duration
}

// Activate turns an effect on at now. Reactivating restarts the timer.
func (e *Effects) Activate(k EffectKind, now time.Duration) {
	e.active[k] = true
	e.since[k] = now
}

// Active reports whether the effect is on.
func (e *Effects) Active(k EffectKind) bool {
	return e.active[k]
}

// Remaining returns how long the effect has left at now.
func (e *Effects) Remaining(k EffectKind, now time.Duration, durations config.EffectsConfig) time.Duration {
	if !e.active[k] {
		return 0
	}
	return max(effectDuration(durations, k)-(now-e.since[k]), 0)
}

// Expire turns off every effect whose elapsed time exceeds its duration
// and returns the kinds that were turned off, in kind order.
func (e *Effects) Expire(now time.Duration, durations config.EffectsConfig) []EffectKind {
	var expired []EffectKind
	for k := range effectKindCount {
		if e.active[k] && now-e.since[k] > effectDuration(durations, k) {
			e.active[k] = false
			expired = append(expired, k)
		}
	}
	return expired
}

// Clear turns every effect off.
func (e *Effects) Clear() {
	*e = Effects{}
}

func effectDuration(d config.EffectsConfig, k EffectKind) time.Duration {
	switch k {
	case EffectPowerBall:
		return d.PowerBall
	case EffectShield:
		return d.Shield
	case EffectDoubleScore:
		return d.DoubleScore
	case EffectSlowMotion:
		return d.SlowMotion
	default:
		return 0
	}
}
