package rapidroll

import (
	"github.com/vovakirdan/tui-rapidroll/internal/core"
)

// Spawn bands above the visible area, in world units.
const (
	hiddenBandTop    = -300
	hiddenBandBottom = -40
	recycleBandTop   = -100
)

// generate clears every non-player entity and fills the level to its
// targets. Positions are not deduplicated; spawns may overlap.
func (w *World) generate() {
	w.Platforms = w.Platforms[:0]
	w.Obstacles = w.Obstacles[:0]
	w.PowerUps = w.PowerUps[:0]

	pc := w.cfg.Platform
	for range w.cfg.Level.PlatformTarget(w.Level) {
		x := w.randomX(pc.Width)
		y := w.randomY(0, w.cfg.World.Height-pc.Height)
		w.Platforms = append(w.Platforms, w.newPlatform(x, y))
	}

	size := w.cfg.Obstacle.Size
	for range w.cfg.Level.ObstacleTarget(w.Level) {
		x := w.randomX(size)
		y := w.randomY(hiddenBandTop, hiddenBandBottom)
		w.Obstacles = append(w.Obstacles, w.newObstacle(x, y))
	}

	size = w.cfg.PowerUp.Size
	for range w.cfg.PowerUp.Count {
		x := w.randomX(size)
		y := w.randomY(hiddenBandTop, hiddenBandBottom)
		w.PowerUps = append(w.PowerUps, w.newPowerUp(x, y))
	}
}

// topUp adds at most one platform and one obstacle just above the
// visible area when the live counts are below the level targets.
func (w *World) topUp() {
	pc := w.cfg.Platform
	if len(w.Platforms) < w.cfg.Level.PlatformTarget(w.Level) {
		x := w.randomX(pc.Width)
		y := w.randomY(-pc.Height, 0)
		w.Platforms = append(w.Platforms, w.newPlatform(x, y))
	}

	size := w.cfg.Obstacle.Size
	if len(w.Obstacles) < w.cfg.Level.ObstacleTarget(w.Level) {
		x := w.randomX(size)
		y := w.randomY(-size, 0)
		w.Obstacles = append(w.Obstacles, w.newObstacle(x, y))
	}
}

func (w *World) newPlatform(x, y float64) Platform {
	pc := w.cfg.Platform
	return Platform{
		Body:         core.NewRect(x, y, pc.Width, pc.Height),
		Moving:       w.rng.Bool(),
		Dir:          1,
		StartX:       x,
		Disappearing: w.rng.Bool(),
	}
}

func (w *World) newObstacle(x, y float64) Obstacle {
	oc := w.cfg.Obstacle
	kind := ObstacleKind(w.rng.Intn(int(obstacleKindCount)))
	return Obstacle{
		Body:  core.NewRect(x, y, oc.Size, oc.Size),
		Kind:  kind,
		Speed: float64(w.rng.IntRange(oc.MinSpeed, oc.MaxSpeed)),
		Dir:   w.rng.Sign(),
	}
}

func (w *World) newPowerUp(x, y float64) PowerUp {
	size := w.cfg.PowerUp.Size
	return PowerUp{
		Body: core.NewRect(x, y, size, size),
		Kind: PowerUpKind(w.rng.Intn(int(powerUpKindCount))),
	}
}

// randomX returns a whole-unit x that keeps an entity of the given width
// inside the world.
func (w *World) randomX(width float64) float64 {
	return float64(w.rng.IntRange(0, int(w.cfg.World.Width-width)))
}

func (w *World) randomY(lo, hi float64) float64 {
	return float64(w.rng.IntRange(int(lo), int(hi)))
}
