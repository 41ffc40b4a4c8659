package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rapidroll/internal/audio"
	"github.com/vovakirdan/tui-rapidroll/internal/config"
	"github.com/vovakirdan/tui-rapidroll/internal/core"
	"github.com/vovakirdan/tui-rapidroll/internal/games/rapidroll"
	"github.com/vovakirdan/tui-rapidroll/internal/highscore"
)

// Options wires a Model to its collaborators. Zero values are usable.
type Options struct {
	Runtime       core.RuntimeConfig
	Board         *highscore.Board // nil disables score recording
	Sound         audio.Player     // nil plays nothing
	Logger        *log.Logger
	Clock         core.Clock
	Renderer      *lipgloss.Renderer // Per-session renderer; nil uses the default
	StartLevel    int                // > 0 skips the menus
	ScreenshotDir string             // Defaults to ~/.rapidroll/screenshots
	NoScreenshots bool               // Ignore ctrl+s, for remote sessions
}

// Model is the Bubble Tea model for running Rapid Roll.
type Model struct {
	game          *rapidroll.Game
	board         *highscore.Board
	sound         audio.Player
	logger        *log.Logger
	clock         core.Clock
	screen        *core.Screen
	palette       palette
	config        core.RuntimeConfig
	keys          *KeyMapper
	inputFrame    core.InputFrame
	held          holdLatch
	state         rapidroll.State
	tickRate      int
	nameEntry     NameEntryModel
	scores        ScoreboardModel
	screenshotDir string
	noScreenshots bool
	quitting      bool
}

// NewModel creates a new Bubble Tea model playing a fresh game built from cfg.
func NewModel(cfg config.RapidRollConfig, opts Options) Model {
	rt := opts.Runtime
	defaults := core.DefaultConfig()
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = defaults.ScreenW, defaults.ScreenH
	}
	if rt.TickRate <= 0 {
		rt.TickRate = defaults.TickRate
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	// A nil *Board must not become a non-nil recorder.
	var recorder rapidroll.ScoreRecorder
	if opts.Board != nil {
		recorder = opts.Board
	}

	m := Model{
		game:          rapidroll.New(cfg, recorder),
		board:         opts.Board,
		sound:         opts.Sound,
		logger:        opts.Logger,
		clock:         opts.Clock,
		screen:        core.NewScreen(rt.ScreenW, rt.ScreenH),
		palette:       newPalette(opts.Renderer),
		config:        rt,
		keys:          NewKeyMapper(),
		inputFrame:    core.NewInputFrame(),
		held:          newHoldLatch(),
		tickRate:      rt.TickRate,
		scores:        NewScoreboardModel(rt.ScreenW, rt.ScreenH, opts.Renderer),
		screenshotDir: opts.ScreenshotDir,
		noScreenshots: opts.NoScreenshots,
	}
	if m.sound == nil {
		m.sound = audio.Silent{}
	}
	if m.logger == nil {
		m.logger = log.Default()
	}
	if m.clock == nil {
		m.clock = core.SystemClock{}
	}

	m.game.Reset(rt)
	if opts.StartLevel > 0 {
		m.game.Start(opts.StartLevel)
	}
	m.state = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+s":
		if m.noScreenshots {
			return m, nil
		}
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch m.state {
	case rapidroll.StateNameEntry:
		if msg.Type == tea.KeyEnter {
			return m.submitName()
		}
		var cmd tea.Cmd
		m.nameEntry, cmd = m.nameEntry.Update(msg)
		return m, cmd

	case rapidroll.StateHighScores:
		var cmd tea.Cmd
		m.scores, cmd = m.scores.Update(msg)
		if cmd != nil {
			return m, cmd
		}
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}
	if action == core.ActionNone {
		return m, nil
	}
	m.inputFrame.Set(action)
	m.held.press(action, m.clock.Now())
	return m, nil
}

// handleResize processes window resize events. The simulation keeps
// running; only the render buffer changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.nameEntry.width, m.nameEntry.height = msg.Width, msg.Height
	m.scores.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by one fixed step. The step length never
// changes; slow motion only stretches the wall-clock interval between ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state == rapidroll.StatePlaying {
		m.held.apply(&m.inputFrame, m.clock.Now())
	}

	dt := core.TickInterval(m.config.TickRate)
	result := m.game.Advance(dt, m.inputFrame)
	m.inputFrame.Clear()

	audio.PlayEvents(m.sound, result.Events)
	for _, e := range result.Events {
		if e.Kind == rapidroll.EventLevelUp || e.Kind == rapidroll.EventGameOver {
			m.logger.Debug("game event", "event", e.String(), "score", result.HUD.Score)
		}
	}

	m.enterState(result.State)
	if m.state == rapidroll.StateQuit {
		m.quitting = true
		return m, tea.Quit
	}

	m.tickRate = result.TickRate
	return m, tickCmd(m.tickRate)
}

// enterState prepares the screens that live outside the game's renderer.
func (m *Model) enterState(next rapidroll.State) {
	prev := m.state
	m.state = next
	if prev == next {
		return
	}

	if prev == rapidroll.StatePlaying {
		m.held.release()
	}
	if next == rapidroll.StatePaused || prev == rapidroll.StatePaused {
		m.sound.PauseMusic(next == rapidroll.StatePaused)
	}

	switch next {
	case rapidroll.StateNameEntry:
		score := m.game.HUD().Score
		qualifies := m.board != nil && m.board.Qualifies(score)
		m.nameEntry = NewNameEntryModel(score, qualifies, m.config.ScreenW, m.config.ScreenH, m.palette.renderer)
	case rapidroll.StateHighScores:
		var entries []highscore.Entry
		if m.board != nil {
			entries = m.board.Entries()
		}
		m.scores.SetEntries(entries, m.game.LastName(), m.game.HUD().Score)
	}
}

func (m Model) submitName() (tea.Model, tea.Cmd) {
	if err := m.game.SubmitName(m.nameEntry.Value()); err != nil {
		m.logger.Error("could not save high score", "error", err)
	}
	m.enterState(m.game.State())
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.game.Advance(0, core.NewInputFrame(core.ActionQuit))
	m.state = m.game.State()
	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".rapidroll", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := m.clock.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case rapidroll.StateNameEntry:
		return m.nameEntry.View()
	case rapidroll.StateHighScores:
		return m.scores.View()
	}

	m.game.Render(m.screen)
	return m.palette.render(m.screen)
}

// Game returns the game driven by the model.
func (m Model) Game() *rapidroll.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.RapidRollConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
