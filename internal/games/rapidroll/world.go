package rapidroll

import (
	"time"

	"github.com/vovakirdan/tui-rapidroll/internal/config"
	"github.com/vovakirdan/tui-rapidroll/internal/core"
)

// outcome is what a tick decided about the level.
type outcome int

const (
	outcomeContinue outcome = iota
	outcomeGameOver
	outcomeLevelUp
)

// World owns every entity and the level clock. Each component of the tick
// receives the World explicitly and touches nothing else.
type World struct {
	cfg config.RapidRollConfig
	rng *RNG

	Player    Player
	Platforms []Platform
	Obstacles []Obstacle
	PowerUps  []PowerUp

	Level    int
	TimeLeft time.Duration
	Elapsed  time.Duration // Simulation time spent in Playing
	Ticks    uint64

	events []Event
}

// NewWorld creates a world at the given level with a fresh player.
func NewWorld(cfg config.RapidRollConfig, rng *RNG, level int) *World {
	w := &World{
		cfg:   cfg,
		rng:   rng,
		Level: max(level, 1),
	}
	w.resetPlayer()
	w.TimeLeft = cfg.Level.TimeBudget
	w.generate()
	return w
}

func (w *World) resetPlayer() {
	pc := w.cfg.Player
	w.Player = Player{
		Body:  core.NewRect(0, 0, pc.Width, pc.Height).CenterOn(w.cfg.World.Width/2, w.cfg.World.Height/2),
		Speed: pc.Speed,
		Lives: pc.Lives,
	}
}

// Tick advances the level by dt of simulation time.
// Order: physics and landing, entity motion, the remaining collisions,
// scroll and spawn, effect expiry, then the lives and timer checks.
func (w *World) Tick(dt time.Duration, in core.InputFrame) outcome {
	w.Ticks++
	w.Elapsed += dt

	stepPlayer(w, in)
	land(w)
	moveEntities(w)
	resolveCollisions(w)
	scrollAndSpawn(w)
	expireEffects(w)

	w.TimeLeft = max(w.TimeLeft-dt, 0)

	if w.Player.Lives == 0 {
		w.emit(Event{Kind: EventGameOver})
		return outcomeGameOver
	}
	if w.TimeLeft <= 0 {
		w.levelUp()
		return outcomeLevelUp
	}
	return outcomeContinue
}

func (w *World) levelUp() {
	w.Level++
	w.TimeLeft = w.cfg.Level.TimeBudget
	w.generate()
	w.emit(Event{Kind: EventLevelUp, Level: w.Level})
}

// Background returns the backdrop band 0..3 for the player's height.
// Higher on screen selects a higher band.
func (w *World) Background() int {
	h := w.cfg.World.Height
	y := w.Player.Body.Y
	switch {
	case y < h/4:
		return 3
	case y < h/2:
		return 2
	case y < 3*h/4:
		return 1
	default:
		return 0
	}
}

// award adds base points, doubled while double_score is active.
func (w *World) award(base int) {
	if w.Player.Effects.Active(EffectDoubleScore) {
		base *= 2
	}
	w.Player.Score += base
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) drainEvents() []Event {
	events := w.events
	w.events = nil
	return events
}

// expireEffects turns off elapsed effects and reverts the speed boost.
func expireEffects(w *World) {
	for _, k := range w.Player.Effects.Expire(w.Elapsed, w.cfg.Effects) {
		if k == EffectPowerBall {
			w.Player.Speed = w.cfg.Player.Speed
		}
		w.emit(Event{Kind: EventEffectExpired, Effect: k})
	}
}
