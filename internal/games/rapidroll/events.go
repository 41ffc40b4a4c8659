package rapidroll

import "fmt"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventJump EventKind = iota
	EventPickUp
	EventHit
	EventShielded
	EventLifeLost
	EventLevelUp
	EventGameOver
	EventEffectExpired
)

// Event is emitted by Advance for the audio and HUD layers.
// PowerUp is set for EventPickUp, Effect for EventEffectExpired,
// Level for EventLevelUp.
type Event struct {
	Kind    EventKind
	PowerUp PowerUpKind
	Effect  EffectKind
	Level   int
}

// String returns a short description of the event.
func (e Event) String() string {
	switch e.Kind {
	case EventJump:
		return "jump"
	case EventPickUp:
		return "pickup:" + e.PowerUp.String()
	case EventHit:
		return "hit"
	case EventShielded:
		return "shielded"
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return fmt.Sprintf("level_up:%d", e.Level)
	case EventGameOver:
		return "game_over"
	case EventEffectExpired:
		return "expired:" + e.Effect.String()
	default:
		return "?"
	}
}
