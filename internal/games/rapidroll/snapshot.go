package rapidroll

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-rapidroll/internal/core"
)

// Snapshot is a read-only copy of the world for renderers, audio and
// determinism checks. Slices are copies; mutating them has no effect.
type Snapshot struct {
	Tick       uint64
	State      State
	Level      int
	Lives      int
	Score      int
	TimeLeft   time.Duration
	Elapsed    time.Duration
	Background int

	Player   core.Rect
	PlayerVY float64
	Speed    float64
	Effects  []ActiveEffect

	Platforms []PlatformView
	Obstacles []ObstacleView
	PowerUps  []PowerUpView

	RNGState uint64
}

// ActiveEffect is an effect that is on, with its remaining time.
type ActiveEffect struct {
	Kind      EffectKind
	Remaining time.Duration
}

// PlatformView is the render-facing view of a platform.
type PlatformView struct {
	Body         core.Rect
	Moving       bool
	Disappearing bool
}

// ObstacleView is the render-facing view of an obstacle.
type ObstacleView struct {
	Body core.Rect
	Kind ObstacleKind
}

// PowerUpView is the render-facing view of a power-up.
type PowerUpView struct {
	Body core.Rect
	Kind PowerUpKind
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	p := &w.Player

	var effects []ActiveEffect
	for k := range effectKindCount {
		if p.Effects.Active(k) {
			effects = append(effects, ActiveEffect{
				Kind:      k,
				Remaining: p.Effects.Remaining(k, w.Elapsed, g.cfg.Effects),
			})
		}
	}

	platforms := make([]PlatformView, len(w.Platforms))
	for i, pl := range w.Platforms {
		platforms[i] = PlatformView{Body: pl.Body, Moving: pl.Moving, Disappearing: pl.Disappearing}
	}
	obstacles := make([]ObstacleView, len(w.Obstacles))
	for i, o := range w.Obstacles {
		obstacles[i] = ObstacleView{Body: o.Body, Kind: o.Kind}
	}
	powerUps := make([]PowerUpView, len(w.PowerUps))
	for i, pu := range w.PowerUps {
		powerUps[i] = PowerUpView{Body: pu.Body, Kind: pu.Kind}
	}

	return Snapshot{
		Tick:       w.Ticks,
		State:      g.state,
		Level:      w.Level,
		Lives:      p.Lives,
		Score:      p.Score,
		TimeLeft:   w.TimeLeft,
		Elapsed:    w.Elapsed,
		Background: w.Background(),
		Player:     p.Body,
		PlayerVY:   p.VY,
		Speed:      p.Speed,
		Effects:    effects,
		Platforms:  platforms,
		Obstacles:  obstacles,
		PowerUps:   powerUps,
		RNGState:   w.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeLeft)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Elapsed)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Background) //#nosec G115 -- hash computation
	h = hashRect(h, snap.Player)
	h = h*31 + math.Float64bits(snap.PlayerVY)
	h = h*31 + math.Float64bits(snap.Speed)

	for _, e := range snap.Effects {
		h = h*31 + uint64(e.Kind)      //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Remaining) //#nosec G115 -- hash computation
	}
	for _, pl := range snap.Platforms {
		h = hashRect(h, pl.Body)
	}
	for _, o := range snap.Obstacles {
		h = hashRect(h, o.Body)
		h = h*31 + uint64(o.Kind) //#nosec G115 -- hash computation
	}
	for _, pu := range snap.PowerUps {
		h = hashRect(h, pu.Body)
		h = h*31 + uint64(pu.Kind) //#nosec G115 -- hash computation
	}

	return h*31 + snap.RNGState
}

func hashRect(h uint64, r core.Rect) uint64 {
	h = h*31 + math.Float64bits(r.X)
	h = h*31 + math.Float64bits(r.Y)
	h = h*31 + math.Float64bits(r.W)
	return h*31 + math.Float64bits(r.H)
}
