package rapidroll

import (
	"github.com/vovakirdan/tui-rapidroll/internal/core"
)

// stepPlayer applies held input, the jump probe, gravity and the
// fall-out rule to the player.
func stepPlayer(w *World, in core.InputFrame) {
	p := &w.Player
	pc := w.cfg.Player
	world := w.cfg.World

	if in.Has(core.ActionLeft) {
		p.Body.X -= p.Speed
	}
	if in.Has(core.ActionRight) {
		p.Body.X += p.Speed
	}
	p.Body.X = core.ClampF(p.Body.X, 0, world.Width-p.Body.W)

	if in.Has(core.ActionJump) && restingOnPlatform(w) {
		p.VY = -pc.JumpImpulse
		w.emit(Event{Kind: EventJump})
	}

	p.VY += pc.Gravity
	p.Body.Y += p.VY

	if p.Body.Bottom() > world.Height {
		if p.Lives > 0 {
			p.Lives--
			w.emit(Event{Kind: EventLifeLost})
		}
		p.Body = p.Body.CenterOn(world.Width/2, world.Height/2)
		p.VY = 0
	}
}

// restingOnPlatform probes one unit below the player.
func restingOnPlatform(w *World) bool {
	probe := w.Player.Body.Translate(0, 1)
	for i := range w.Platforms {
		if probe.Intersects(w.Platforms[i].Body) {
			return true
		}
	}
	return false
}
