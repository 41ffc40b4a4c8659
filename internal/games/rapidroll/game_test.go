package rapidroll

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-rapidroll/internal/config"
	"github.com/vovakirdan/tui-rapidroll/internal/core"
)

const tick = 50 * time.Millisecond

type recordedScore struct {
	name  string
	score int
}

type fakeRecorder struct {
	added []recordedScore
	err   error
}

func (f *fakeRecorder) Add(name string, score int) error {
	f.added = append(f.added, recordedScore{name, score})
	return f.err
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

func newPlayingGame(t *testing.T, cfg config.RapidRollConfig, scores ScoreRecorder) *Game {
	t.Helper()
	g := New(cfg, scores)
	g.Reset(testRuntime())
	g.Start(1)
	return g
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestLevelUpAfterTimeBudget(t *testing.T) {
	cfg := config.DefaultRapidRollConfig()
	cfg.Player.Lives = 100000 // falls and hits must not end the run
	cfg.PowerUp.Count = 0     // no time extensions

	g := newPlayingGame(t, cfg, nil)

	levelUps := 0
	var res FrameResult
	for i := range 2400 { // 2400 * 50ms = 120s
		if g.State() != StatePlaying {
			t.Fatalf("left Playing early at tick %d: %s", i, g.State())
		}
		res = g.Advance(tick, core.NewInputFrame())
		levelUps += countEvents(res.Events, EventLevelUp)
	}

	if levelUps != 1 {
		t.Fatalf("level up fired %d times, expected exactly once", levelUps)
	}
	if res.State != StateLevelingUp {
		t.Errorf("State = %s, expected leveling_up", res.State)
	}
	snap := res.Snapshot
	if snap.Level != 2 {
		t.Errorf("Level = %d, expected 2", snap.Level)
	}
	if snap.TimeLeft != 120*time.Second {
		t.Errorf("TimeLeft = %s, expected 120s", snap.TimeLeft)
	}
	if len(snap.Platforms) != 14 || len(snap.Obstacles) != 7 {
		t.Errorf("counts = %d platforms / %d obstacles, expected 14 / 7", len(snap.Platforms), len(snap.Obstacles))
	}

	// The banner is timed and needs no input.
	for range 40 {
		res = g.Advance(tick, core.NewInputFrame())
	}
	if res.State != StatePlaying {
		t.Errorf("State = %s after the 2s banner, expected playing", res.State)
	}
	if res.HUD.TimeLeft != 120*time.Second {
		t.Errorf("banner must not consume level time, TimeLeft = %s", res.HUD.TimeLeft)
	}
}

func TestLastLifeObstacleEndsGameSameTick(t *testing.T) {
	g := newPlayingGame(t, config.DefaultRapidRollConfig(), nil)
	w := g.World()
	w.Platforms = []Platform{staticPlatform(350, 500)}
	w.Obstacles = []Obstacle{{Body: core.NewRect(380, 460, 40, 40), Kind: ObstacleSpike}}
	w.PowerUps = nil
	w.Player.Body = core.NewRect(375, 450, 50, 50)
	w.Player.Lives = 1

	res := g.Advance(tick, core.NewInputFrame())

	if res.HUD.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", res.HUD.Lives)
	}
	if res.State != StateGameOver {
		t.Fatalf("State = %s, expected game_over on the same tick", res.State)
	}
	if countEvents(res.Events, EventHit) != 1 || countEvents(res.Events, EventGameOver) != 1 {
		t.Errorf("events = %v, expected one hit and one game over", res.Events)
	}

	res = g.Advance(tick, core.NewInputFrame())
	if res.HUD.Lives != 0 {
		t.Errorf("Lives = %d after game over, expected to stay at 0", res.HUD.Lives)
	}
}

func TestShieldedHitKeepsPlaying(t *testing.T) {
	g := newPlayingGame(t, config.DefaultRapidRollConfig(), nil)
	w := g.World()
	w.Platforms = []Platform{staticPlatform(350, 500)}
	w.Obstacles = []Obstacle{{Body: core.NewRect(380, 460, 40, 40), Kind: ObstacleSpike}}
	w.PowerUps = nil
	w.Player.Body = core.NewRect(375, 450, 50, 50)
	w.Player.Lives = 1
	w.Player.Effects.Activate(EffectShield, w.Elapsed)

	res := g.Advance(tick, core.NewInputFrame())

	if res.HUD.Lives != 1 || res.State != StatePlaying {
		t.Errorf("shielded hit: lives=%d state=%s", res.HUD.Lives, res.State)
	}
	if len(res.Snapshot.Obstacles) != 0 {
		t.Error("obstacle should be consumed under shield")
	}
	if !res.HUD.Shield {
		t.Error("HUD should report the shield")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 == 0:
			inputs[i].Set(core.ActionJump)
		case i%7 < 3:
			inputs[i].Set(core.ActionLeft)
		case i%7 > 4:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := newPlayingGame(t, config.DefaultRapidRollConfig(), nil)
		for _, in := range inputs {
			if g.State() == StateGameOver {
				break
			}
			g.Advance(tick, in)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}
}

func TestMenuFlow(t *testing.T) {
	g := New(config.DefaultRapidRollConfig(), nil)
	g.Reset(testRuntime())

	if g.State() != StateMainMenu {
		t.Fatalf("State = %s after Reset, expected main_menu", g.State())
	}

	g.Advance(tick, core.NewInputFrame(core.ActionConfirm))
	if g.State() != StateLevelSelect {
		t.Fatalf("State = %s, expected level_select", g.State())
	}

	g.Advance(tick, core.NewInputFrame(core.ActionUp))
	if g.SelectedLevel() != 1 {
		t.Errorf("SelectedLevel = %d, expected floor at 1", g.SelectedLevel())
	}
	for range 10 {
		g.Advance(tick, core.NewInputFrame(core.ActionDown))
	}
	if g.SelectedLevel() != 5 {
		t.Errorf("SelectedLevel = %d, expected cap at 5", g.SelectedLevel())
	}
	g.Advance(tick, core.NewInputFrame(core.ActionUp))
	g.Advance(tick, core.NewInputFrame(core.ActionUp))

	g.Advance(tick, core.NewInputFrame(core.ActionBack))
	if g.State() != StateMainMenu {
		t.Fatalf("Back should return to main_menu, got %s", g.State())
	}
	g.Advance(tick, core.NewInputFrame(core.ActionConfirm))

	res := g.Advance(tick, core.NewInputFrame(core.ActionConfirm))
	if res.State != StatePlaying || res.HUD.Level != 3 {
		t.Fatalf("start: state=%s level=%d, expected playing at 3", res.State, res.HUD.Level)
	}
	if len(res.Snapshot.Platforms) != 16 {
		t.Errorf("platforms = %d at level 3, expected 16", len(res.Snapshot.Platforms))
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newPlayingGame(t, config.DefaultRapidRollConfig(), nil)
	g.Advance(tick, core.NewInputFrame())

	res := g.Advance(tick, core.NewInputFrame(core.ActionPause))
	if res.State != StatePaused {
		t.Fatalf("State = %s, expected paused", res.State)
	}
	frozen := res.Snapshot.Hash()

	for range 100 {
		res = g.Advance(tick, core.NewInputFrame(core.ActionLeft))
	}
	if res.Snapshot.Hash() != frozen {
		t.Error("world changed while paused")
	}

	res = g.Advance(tick, core.NewInputFrame(core.ActionPause))
	if res.State != StatePlaying {
		t.Errorf("State = %s, expected playing after unpause", res.State)
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := newPlayingGame(t, config.DefaultRapidRollConfig(), nil)
	g.Start(4)
	w := g.World()
	w.Player.Score = 999
	w.Player.Lives = 1

	res := g.Advance(tick, core.NewInputFrame(core.ActionRestart))

	if res.State != StatePlaying || res.HUD.Level != 1 || res.HUD.Lives != 3 || res.HUD.Score != 0 {
		t.Errorf("after restart: state=%s level=%d lives=%d score=%d", res.State, res.HUD.Level, res.HUD.Lives, res.HUD.Score)
	}
	if res.HUD.TimeLeft != 120*time.Second {
		t.Errorf("TimeLeft = %s after restart", res.HUD.TimeLeft)
	}
}

func TestQuitFromAnyState(t *testing.T) {
	for _, start := range []func(g *Game){
		func(g *Game) {},
		func(g *Game) { g.Start(1) },
		func(g *Game) { g.Start(1); g.Advance(tick, core.NewInputFrame(core.ActionPause)) },
	} {
		g := New(config.DefaultRapidRollConfig(), nil)
		g.Reset(testRuntime())
		start(g)

		res := g.Advance(tick, core.NewInputFrame(core.ActionQuit))
		if res.State != StateQuit {
			t.Errorf("State = %s, expected quit", res.State)
		}
	}
}

func TestGameOverToHighScores(t *testing.T) {
	rec := &fakeRecorder{}
	g := newPlayingGame(t, config.DefaultRapidRollConfig(), rec)
	w := g.World()
	w.Platforms = []Platform{staticPlatform(350, 500)}
	w.Obstacles = []Obstacle{{Body: core.NewRect(380, 460, 40, 40), Kind: ObstacleSpike}}
	w.Player.Body = core.NewRect(375, 450, 50, 50)
	w.Player.Lives = 1
	w.Player.Score = 420

	g.Advance(tick, core.NewInputFrame())
	if g.State() != StateGameOver {
		t.Fatalf("State = %s, expected game_over", g.State())
	}

	// The banner runs for 3s unless confirmed.
	for range 59 {
		g.Advance(tick, core.NewInputFrame())
	}
	if g.State() != StateGameOver {
		t.Fatalf("banner ended early: %s", g.State())
	}
	g.Advance(tick, core.NewInputFrame())
	if g.State() != StateNameEntry {
		t.Fatalf("State = %s, expected name_entry", g.State())
	}

	if err := g.SubmitName("   "); err != nil {
		t.Fatalf("SubmitName() failed: %v", err)
	}
	if g.State() != StateHighScores {
		t.Errorf("State = %s, expected high_scores", g.State())
	}
	if len(rec.added) != 1 || rec.added[0] != (recordedScore{DefaultPlayerName, 421}) {
		t.Errorf("recorded = %+v, expected Player with 421", rec.added)
	}

	g.Advance(tick, core.NewInputFrame(core.ActionConfirm))
	if g.State() != StateMainMenu {
		t.Errorf("State = %s, expected main_menu", g.State())
	}
}

func TestGameOverBannerSkippable(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	g := newPlayingGame(t, config.DefaultRapidRollConfig(), rec)
	g.World().Player.Lives = 0
	g.Advance(tick, core.NewInputFrame())

	g.Advance(tick, core.NewInputFrame(core.ActionConfirm))
	if g.State() != StateNameEntry {
		t.Fatalf("State = %s, confirm should skip the banner", g.State())
	}

	if err := g.SubmitName("ada"); err == nil {
		t.Error("SubmitName() should surface the recorder error")
	}
	if g.State() != StateHighScores || g.LastName() != "ada" {
		t.Errorf("state=%s name=%q, expected high_scores for ada", g.State(), g.LastName())
	}

	if err := g.SubmitName("again"); err != nil || len(rec.added) != 1 {
		t.Error("SubmitName() outside name entry should be ignored")
	}
}

func TestSlowMotionHalvesTickRate(t *testing.T) {
	g := newPlayingGame(t, config.DefaultRapidRollConfig(), nil)
	if g.TickRate() != 60 {
		t.Fatalf("TickRate = %d, expected 60", g.TickRate())
	}

	g.World().Player.Effects.Activate(EffectSlowMotion, g.World().Elapsed)
	res := g.Advance(tick, core.NewInputFrame())
	if res.TickRate != 30 || !res.HUD.SlowMotion {
		t.Errorf("TickRate = %d slow=%v, expected 30 under slow motion", res.TickRate, res.HUD.SlowMotion)
	}
}

func TestSlowMotionEndsWithPlay(t *testing.T) {
	g := newPlayingGame(t, config.DefaultRapidRollConfig(), nil)
	w := g.World()
	w.Platforms = []Platform{staticPlatform(350, 500)}
	w.Obstacles = []Obstacle{{Body: core.NewRect(380, 460, 40, 40), Kind: ObstacleSpike}}
	w.PowerUps = nil
	w.Player.Body = core.NewRect(375, 450, 50, 50)
	w.Player.Lives = 1
	w.Player.Effects.Activate(EffectSlowMotion, w.Elapsed)

	res := g.Advance(tick, core.NewInputFrame())
	if res.State != StateGameOver {
		t.Fatalf("State = %s, expected game_over", res.State)
	}
	if res.TickRate != 60 || res.HUD.SlowMotion {
		t.Errorf("TickRate = %d slow=%v at game over, expected 60 with effects cleared", res.TickRate, res.HUD.SlowMotion)
	}

	res = g.Advance(tick, core.NewInputFrame(core.ActionConfirm))
	if res.State != StateNameEntry || res.TickRate != 60 {
		t.Errorf("name entry: state=%s rate=%d, expected name_entry at 60", res.State, res.TickRate)
	}

	if err := g.SubmitName("ada"); err != nil {
		t.Fatalf("SubmitName() error = %v", err)
	}
	res = g.Advance(tick, core.NewInputFrame(core.ActionConfirm))
	if res.State != StateMainMenu || res.TickRate != 60 {
		t.Errorf("menu: state=%s rate=%d, expected main_menu at 60", res.State, res.TickRate)
	}
}

func TestExtraLifeOnLastHitKeepsPlaying(t *testing.T) {
	g := newPlayingGame(t, config.DefaultRapidRollConfig(), nil)
	w := g.World()
	w.Platforms = []Platform{staticPlatform(350, 500)}
	w.Obstacles = []Obstacle{{Body: core.NewRect(380, 460, 40, 40), Kind: ObstacleSpike}}
	w.PowerUps = []PowerUp{{Body: core.NewRect(385, 460, 30, 30), Kind: PowerUpExtraLife}}
	w.Player.Body = core.NewRect(375, 450, 50, 50)
	w.Player.Lives = 1

	res := g.Advance(tick, core.NewInputFrame())

	if res.HUD.Lives != 1 {
		t.Errorf("Lives = %d, expected the hit then the extra life to leave 1", res.HUD.Lives)
	}
	if res.State != StatePlaying {
		t.Errorf("State = %s, the lives check runs after pickups", res.State)
	}
	if countEvents(res.Events, EventHit) != 1 || countEvents(res.Events, EventGameOver) != 0 {
		t.Errorf("events = %v, expected one hit and no game over", res.Events)
	}
}

func TestEventsAreNotRetained(t *testing.T) {
	g := newPlayingGame(t, config.DefaultRapidRollConfig(), nil)
	w := g.World()
	w.Player.Body = core.NewRect(375, 560, 50, 50)
	w.Player.VY = 5

	res := g.Advance(tick, core.NewInputFrame())
	if countEvents(res.Events, EventLifeLost) != 1 {
		t.Fatalf("events = %v, expected a life lost", res.Events)
	}
	first := res.Events

	res = g.Advance(tick, core.NewInputFrame())
	if countEvents(res.Events, EventLifeLost) != 0 {
		t.Errorf("events leaked into the next frame: %v", res.Events)
	}
	if countEvents(first, EventLifeLost) != 1 {
		t.Error("a later Advance overwrote an earlier FrameResult's events")
	}
}

func TestRender(t *testing.T) {
	g := New(config.DefaultRapidRollConfig(), nil)
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Press ENTER to Start") {
		t.Error("main menu should show the start prompt")
	}
	if !strings.Contains(screen.String(), "R A P I D   R O L L") {
		t.Error("main menu should show the title")
	}

	g.Start(1)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "Level 1") {
		t.Errorf("playfield HUD missing:\n%s", out)
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player glyph missing from playfield")
	}

	g.Advance(tick, core.NewInputFrame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Paused") {
		t.Error("pause overlay missing")
	}

	g.Advance(tick, core.NewInputFrame(core.ActionPause))
	g.World().Player.Lives = 0
	g.Advance(tick, core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "ENTER to continue (3s)") {
		t.Errorf("game over overlay should count down the banner:\n%s", screen.String())
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("small screen should show a size hint")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{120 * time.Second, "2:00"},
		{119500 * time.Millisecond, "2:00"},
		{61 * time.Second, "1:01"},
		{0, "0:00"},
	}
	for _, tc := range tests {
		if got := formatClock(tc.d); got != tc.want {
			t.Errorf("formatClock(%s) = %q, expected %q", tc.d, got, tc.want)
		}
	}
}
