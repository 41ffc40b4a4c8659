package rapidroll

// resolveCollisions applies obstacle damage and pickups, then awards the
// passive climbing score. Landing runs earlier, against the platforms
// where the player met them.
func resolveCollisions(w *World) {
	hitObstacles(w)
	collectPowerUps(w)
	w.award(w.cfg.Scoring.Tick)
}

// land clamps a descending player onto the first overlapping platform.
// Overlap while rising or at rest is a pass-through.
func land(w *World) {
	p := &w.Player
	if p.VY <= 0 {
		return
	}
	for i := range w.Platforms {
		top := w.Platforms[i].Body
		if p.Body.Intersects(top) {
			p.Body.Y = top.Y - p.Body.H
			p.VY = 0
			return
		}
	}
}

// hitObstacles consumes every overlapping obstacle. Each one costs a life
// unless the shield is up.
func hitObstacles(w *World) {
	p := &w.Player
	kept := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if !p.Body.Intersects(o.Body) {
			kept = append(kept, o)
			continue
		}
		if p.Effects.Active(EffectShield) {
			w.emit(Event{Kind: EventShielded})
			continue
		}
		if p.Lives > 0 {
			p.Lives--
		}
		w.emit(Event{Kind: EventHit})
	}
	w.Obstacles = kept
}

// collectPowerUps consumes every overlapping power-up and applies it once.
func collectPowerUps(w *World) {
	p := &w.Player
	kept := w.PowerUps[:0]
	var taken []PowerUpKind
	for _, pu := range w.PowerUps {
		if p.Body.Intersects(pu.Body) {
			taken = append(taken, pu.Kind)
			continue
		}
		kept = append(kept, pu)
	}
	w.PowerUps = kept

	for _, kind := range taken {
		applyPowerUp(w, kind)
		w.award(w.cfg.Scoring.Pickup)
		w.emit(Event{Kind: EventPickUp, PowerUp: kind})
	}
}

func applyPowerUp(w *World, kind PowerUpKind) {
	p := &w.Player
	switch kind {
	case PowerUpExtraLife:
		p.Lives++
	case PowerUpBonusStar:
		w.award(w.cfg.Scoring.BonusStar)
	case PowerUpTimeExtension:
		w.TimeLeft += w.cfg.Level.TimeExtension
	default:
		effect, ok := kind.Effect()
		if !ok {
			return
		}
		p.Effects.Activate(effect, w.Elapsed)
		if effect == EffectPowerBall {
			p.Speed = w.cfg.Player.Speed + w.cfg.Player.SpeedBoost
		}
	}
}
