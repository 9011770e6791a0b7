// Package menu is the pre-game settings screen.
package menu

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vishal929/OpenGLPong/game"
)

const speedStep = 0.25

type item int

const (
	itemPlay item = iota
	itemBallSpeed
	itemBarSpeed
	itemMaxScore
	itemQuit
	itemCount
)

var itemLabels = map[item]string{
	itemPlay:      "Play",
	itemBallSpeed: "Ball speed",
	itemBarSpeed:  "Paddle speed",
	itemMaxScore:  "Max score",
	itemQuit:      "Quit",
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = itemStyle.Foreground(lipgloss.Color("11"))
	helpStyle     = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// Model lets the player adjust Settings before a match.
type Model struct {
	cursor   item
	settings game.Settings
	play     bool
	done     bool
}

func New(settings game.Settings) Model {
	return Model{settings: settings}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.play = false
		m.done = true
		return m, tea.Quit
	case "up", "k":
		m.cursor = (m.cursor + itemCount - 1) % itemCount
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % itemCount
	case "left", "h", "-":
		m.adjust(-1)
	case "right", "l", "+", "=":
		m.adjust(1)
	case "enter", " ":
		switch m.cursor {
		case itemPlay:
			m.play = true
			m.done = true
			return m, tea.Quit
		case itemQuit:
			m.play = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// adjust moves the selected value one step, staying inside the valid range.
func (m *Model) adjust(steps int) {
	switch m.cursor {
	case itemBallSpeed:
		m.settings.BallSpeed = stepSpeed(m.settings.BallSpeed, steps)
	case itemBarSpeed:
		m.settings.BarSpeed = stepSpeed(m.settings.BarSpeed, steps)
	case itemMaxScore:
		m.settings.MaxScore = clampInt(m.settings.MaxScore+steps, game.MinMaxScore, game.MaxMaxScore)
	}
}

func stepSpeed(v float64, steps int) float64 {
	// Snap to the step grid so values typed on the command line line up with the slider.
	v = math.Round(v/speedStep)*speedStep + float64(steps)*speedStep
	return math.Min(math.Max(v, game.MinSpeed), game.MaxSpeed)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("PONG"))
	b.WriteString("\n")
	for i := item(0); i < itemCount; i++ {
		line := itemLabels[i]
		switch i {
		case itemBallSpeed:
			line = fmt.Sprintf("%-14s ◀ %5.2f ▶", line, m.settings.BallSpeed)
		case itemBarSpeed:
			line = fmt.Sprintf("%-14s ◀ %5.2f ▶", line, m.settings.BarSpeed)
		case itemMaxScore:
			line = fmt.Sprintf("%-14s ◀ %5d ▶", line, m.settings.MaxScore)
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render(">") + selectedStyle.Render(line))
		} else {
			b.WriteString(" " + itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select  ←/→ adjust  enter choose  q quit"))
	b.WriteString("\n")
	return b.String()
}

// Result reports the chosen settings and whether the player picked Play.
func (m Model) Result() (game.Settings, bool) {
	return m.settings, m.play
}

// Run shows the menu until the player picks Play or Quit.
func Run(settings game.Settings) (game.Settings, bool, error) {
	final, err := tea.NewProgram(New(settings), tea.WithAltScreen()).Run()
	if err != nil {
		return settings, false, fmt.Errorf("running menu: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return settings, false, fmt.Errorf("unexpected menu model %T", final)
	}
	s, play := m.Result()
	return s, play, nil
}
