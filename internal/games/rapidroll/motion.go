package rapidroll

import "math"

// moveEntities runs the per-kind update for every platform and obstacle
// and drops entities that have left the level.
func moveEntities(w *World) {
	movePlatforms(w)
	moveObstacles(w)
	dropFallenPowerUps(w)
}

func movePlatforms(w *World) {
	pc := w.cfg.Platform
	height := w.cfg.World.Height

	kept := w.Platforms[:0]
	for _, pl := range w.Platforms {
		if pl.Moving {
			pl.Body.X += pc.Speed * pl.Dir
			if math.Abs(pl.Body.X-pl.StartX) > pc.Range {
				pl.Dir = -pl.Dir
			}
		}
		if pl.Disappearing {
			if !pl.Stamped {
				pl.Stamped = true
				pl.BornAt = w.Elapsed
			} else if w.Elapsed-pl.BornAt > pc.DisappearAfter {
				continue
			}
		}
		if pl.Body.Y > height {
			continue
		}
		kept = append(kept, pl)
	}
	w.Platforms = kept
}

func moveObstacles(w *World) {
	width := w.cfg.World.Width
	height := w.cfg.World.Height

	kept := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		switch o.Kind.Motion() {
		case MotionFall:
			o.Body.Y += o.Speed
			if o.Body.Y > height {
				o.Body.Y = w.randomY(recycleBandTop, hiddenBandBottom)
				o.Body.X = w.randomX(o.Body.W)
			}
		case MotionPatrol:
			o.Body.X += o.Speed * o.Dir
			if o.Body.X < 0 {
				o.Body.X = 0
				o.Dir = 1
			} else if o.Body.Right() > width {
				o.Body.X = width - o.Body.W
				o.Dir = -1
			}
		}
		if o.Kind.Motion() != MotionFall && o.Body.Y > height {
			continue
		}
		kept = append(kept, o)
	}
	w.Obstacles = kept
}

func dropFallenPowerUps(w *World) {
	height := w.cfg.World.Height
	kept := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		if pu.Body.Y > height {
			continue
		}
		kept = append(kept, pu)
	}
	w.PowerUps = kept
}
