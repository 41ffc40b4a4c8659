// Package rapidroll implements a Rapid Roll-style vertical climber.
// The player lands on drifting and vanishing platforms, dodges falling and
// patrolling hazards and collects timed power-ups while a per-level
// countdown runs. The simulation is advanced one tick at a time with an
// explicit time delta, so identical seeds and inputs replay identically.
package rapidroll

import (
	"strings"
	"time"

	"github.com/vovakirdan/tui-rapidroll/internal/config"
	"github.com/vovakirdan/tui-rapidroll/internal/core"
)

// DefaultPlayerName replaces an empty name at the name entry screen.
const DefaultPlayerName = "Player"

// State is the top-level mode of the game.
type State int

const (
	StateMainMenu State = iota
	StateLevelSelect
	StatePlaying
	StatePaused
	StateLevelingUp
	StateGameOver
	StateNameEntry
	StateHighScores
	StateQuit
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateLevelSelect:
		return "level_select"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelingUp:
		return "leveling_up"
	case StateGameOver:
		return "game_over"
	case StateNameEntry:
		return "name_entry"
	case StateHighScores:
		return "high_scores"
	case StateQuit:
		return "quit"
	default:
		return "?"
	}
}

// ScoreRecorder persists a finished game's score.
type ScoreRecorder interface {
	Add(name string, score int) error
}

// HUD is the heads-up display data for one frame.
type HUD struct {
	Level       int
	Lives       int
	Score       int
	TimeLeft    time.Duration
	Shield      bool
	DoubleScore bool
	PowerBall   bool
	SlowMotion  bool
}

// FrameResult is everything the platform needs after one Advance.
type FrameResult struct {
	Snapshot Snapshot
	HUD      HUD
	State    State
	Events   []Event
	TickRate int // Target ticks per second for the next frame
}

// Game is the state machine around a World.
type Game struct {
	cfg     config.RapidRollConfig
	runtime core.RuntimeConfig
	rng     *RNG
	world   *World
	scores  ScoreRecorder

	state         State
	selectedLevel int
	banner        time.Duration // Remaining time of the current banner
	lastName      string
	events        []Event
}

// New creates a game using cfg. scores may be nil.
func New(cfg config.RapidRollConfig, scores ScoreRecorder) *Game {
	return &Game{cfg: cfg, scores: scores}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rapidroll"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rapid Roll"
}

// Reset returns to the main menu with a fresh RNG from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = NewRNG(runtime.Seed)
	g.state = StateMainMenu
	g.selectedLevel = 1
	g.banner = 0
	g.events = nil
	g.world = NewWorld(g.cfg, g.rng, 1)
}

// SelectLevel sets the level highlighted on the level select screen.
func (g *Game) SelectLevel(level int) {
	g.selectedLevel = core.Clamp(level, 1, g.maxLevel())
}

// SelectedLevel returns the highlighted level on the level select screen.
func (g *Game) SelectedLevel() int {
	return g.selectedLevel
}

// Start begins a fresh game at level, skipping the menus.
func (g *Game) Start(level int) {
	g.world = NewWorld(g.cfg, g.rng, level)
	g.state = StatePlaying
	g.banner = 0
}

func (g *Game) maxLevel() int {
	return max(g.cfg.Level.MaxSelectableLevel, 1)
}

// Advance runs one tick of the state machine. dt only moves the
// simulation while Playing and banners while they are shown.
func (g *Game) Advance(dt time.Duration, in core.InputFrame) FrameResult {
	g.events = g.events[:0]

	if in.Has(core.ActionQuit) {
		g.state = StateQuit
		return g.result()
	}

	switch g.state {
	case StateMainMenu:
		if in.Has(core.ActionConfirm) {
			g.state = StateLevelSelect
		}

	case StateLevelSelect:
		switch {
		case in.Has(core.ActionConfirm):
			g.Start(g.selectedLevel)
		case in.Has(core.ActionBack):
			g.state = StateMainMenu
		case in.Has(core.ActionUp):
			g.SelectLevel(g.selectedLevel - 1)
		case in.Has(core.ActionDown):
			g.SelectLevel(g.selectedLevel + 1)
		}

	case StatePlaying:
		g.stepPlaying(dt, in)

	case StatePaused:
		switch {
		case in.Has(core.ActionRestart):
			g.restart()
		case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
			g.state = StatePlaying
		}

	case StateLevelingUp:
		g.banner -= dt
		if g.banner <= 0 {
			g.banner = 0
			g.state = StatePlaying
		}

	case StateGameOver:
		g.banner -= dt
		if in.Has(core.ActionRestart) {
			g.restart()
			break
		}
		if g.banner <= 0 || in.Has(core.ActionConfirm) {
			g.banner = 0
			g.state = StateNameEntry
		}

	case StateNameEntry:
		// Waits for SubmitName.

	case StateHighScores:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			g.state = StateMainMenu
		}
	}

	return g.result()
}

func (g *Game) stepPlaying(dt time.Duration, in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause):
		g.state = StatePaused
		return
	case in.Has(core.ActionRestart):
		g.restart()
		return
	}

	if in.Has(core.ActionUp) {
		in = in.Clone()
		in.Set(core.ActionJump)
	}

	switch g.world.Tick(dt, in) {
	case outcomeGameOver:
		g.state = StateGameOver
		g.banner = g.cfg.Level.GameOverBanner
		g.world.Player.Effects.Clear()
	case outcomeLevelUp:
		g.state = StateLevelingUp
		g.banner = g.cfg.Level.LevelUpBanner
	}
	g.events = append(g.events, g.world.drainEvents()...)
}

// restart begins a fresh game at level 1 with full lives and no score.
func (g *Game) restart() {
	g.Start(1)
}

// SubmitName records the final score under name and shows the high
// scores. An empty name becomes DefaultPlayerName. The state still moves
// on when the recorder fails.
func (g *Game) SubmitName(name string) error {
	if g.state != StateNameEntry {
		return nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPlayerName
	}
	g.lastName = name
	g.state = StateHighScores

	if g.scores == nil {
		return nil
	}
	return g.scores.Add(name, g.world.Player.Score)
}

// LastName returns the name most recently submitted.
func (g *Game) LastName() string {
	return g.lastName
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// World exposes the live world for rendering. Callers must not mutate it.
func (g *Game) World() *World {
	return g.world
}

// Banner returns the remaining time of the level-up or game-over banner.
func (g *Game) Banner() time.Duration {
	return g.banner
}

// HUD returns the heads-up display values.
func (g *Game) HUD() HUD {
	p := &g.world.Player
	return HUD{
		Level:       g.world.Level,
		Lives:       p.Lives,
		Score:       p.Score,
		TimeLeft:    g.world.TimeLeft,
		Shield:      p.Effects.Active(EffectShield),
		DoubleScore: p.Effects.Active(EffectDoubleScore),
		PowerBall:   p.Effects.Active(EffectPowerBall),
		SlowMotion:  p.Effects.Active(EffectSlowMotion),
	}
}

// TickRate returns the target tick rate. Slow motion halves it only while
// Playing.
func (g *Game) TickRate() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	if g.state == StatePlaying && g.world.Player.Effects.Active(EffectSlowMotion) {
		rate /= 2
	}
	return max(rate, 1)
}

func (g *Game) result() FrameResult {
	var events []Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return FrameResult{
		Snapshot: g.Snapshot(),
		HUD:      g.HUD(),
		State:    g.state,
		Events:   events,
		TickRate: g.TickRate(),
	}
}
