package rapidroll

// scrollAndSpawn simulates the climb. While the player's top edge is at
// or above the middle of the screen, every other entity shifts down by the
// base player speed and the level is topped up from above.
func scrollAndSpawn(w *World) {
	if w.Player.Body.Y > w.cfg.World.Height/2 {
		return
	}

	dy := w.cfg.Player.Speed
	for i := range w.Platforms {
		w.Platforms[i].Body.Y += dy
	}
	for i := range w.Obstacles {
		w.Obstacles[i].Body.Y += dy
	}
	for i := range w.PowerUps {
		w.PowerUps[i].Body.Y += dy
	}

	w.topUp()
}
