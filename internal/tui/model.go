package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateTimer SessionState = iota
	StateHelp
)

// MainModel is the root bubbletea model. It owns quitting and the help
// overlay; everything else goes to the timer.
type MainModel struct {
	state  SessionState
	timer  TimerModel
	width  int // Store window dimensions
	height int
}

func NewMainModel(ctx context.Context, opts Options) MainModel {
	return MainModel{
		state: StateTimer,
		timer: NewTimerModel(ctx, opts),
	}
}

// Timer returns the embedded countdown screen.
func (m MainModel) Timer() TimerModel {
	return m.timer
}

func (m MainModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.state == StateHelp {
			// Any key closes the overlay.
			m.state = StateTimer
			return m, nil
		}
		if msg.String() == "?" {
			m.state = StateHelp
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	// Ticks keep flowing while the overlay is open.
	var cmd tea.Cmd
	m.timer, cmd = m.timer.Update(msg)
	return m, cmd
}

func (m MainModel) View() string {
	if m.state == StateHelp {
		return m.renderHelp()
	}
	return m.timer.View()
}

func (m MainModel) renderHelp() string {
	theme := m.timer.theme
	var b strings.Builder
	b.WriteString(theme.Focused.Render("Keys"))
	b.WriteString("\n\n")
	seen := make(map[string]bool)
	for _, binding := range m.timer.keys.All() {
		if binding.Description == "" || seen[binding.label()] {
			continue
		}
		seen[binding.label()] = true
		b.WriteString(theme.Highlight.Render(padRight(binding.label(), 8)))
		b.WriteString(binding.Description)
		b.WriteString("\n")
	}
	b.WriteString(theme.Highlight.Render(padRight("0-9", 8)))
	b.WriteString("edit the focused field\n")
	b.WriteString(theme.Highlight.Render(padRight("ctrl+c", 8)))
	b.WriteString("quit\n\n")
	b.WriteString(theme.Dim.Render("Press any key to return."))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return theme.Base.Render(box)
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s + " "
}
