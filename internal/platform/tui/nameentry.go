package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rapidroll/internal/games/rapidroll"
)

// MaxNameLength caps the length of a high score name.
const MaxNameLength = 16

// NameEntryModel asks for the player's name after a game over.
type NameEntryModel struct {
	renderer  *lipgloss.Renderer
	input     textinput.Model
	score     int
	qualifies bool
	width     int
	height    int
}

// NewNameEntryModel creates a focused, empty name prompt for score.
// qualifies marks a score that makes the high score board.
// A nil renderer uses the default one.
func NewNameEntryModel(score int, qualifies bool, width, height int, r *lipgloss.Renderer) NameEntryModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	ti := textinput.New()
	ti.Placeholder = rapidroll.DefaultPlayerName
	ti.CharLimit = MaxNameLength
	ti.Width = MaxNameLength + 1
	ti.Prompt = "> "
	ti.Focus()

	return NameEntryModel{renderer: r, input: ti, score: score, qualifies: qualifies, width: width, height: height}
}

// Value returns the text typed so far.
func (m NameEntryModel) Value() string {
	return m.input.Value()
}

// Update forwards a key to the text input.
func (m NameEntryModel) Update(msg tea.Msg) (NameEntryModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt centered on screen.
func (m NameEntryModel) View() string {
	heading := "NEW SCORE"
	if m.qualifies {
		heading = "NEW HIGH SCORE!"
	}
	title := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Render(heading)
	score := m.renderer.NewStyle().Foreground(lipgloss.Color("15")).Render(fmt.Sprintf("%d points", m.score))
	hint := m.renderer.NewStyle().Foreground(lipgloss.Color("241")).Render("enter to save")

	box := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			title, "", score, "", "Enter your name:", m.input.View(), "", hint))

	return m.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
