package tui

import (
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func truncateLabel(text string, max int) string {
	if max <= 0 || ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m TimerModel) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

func (m TimerModel) View() string {
	sections := []string{
		m.renderClock(),
		m.renderFields(),
	}
	if bar := m.renderProgress(); bar != "" {
		sections = append(sections, bar)
	}
	sections = append(sections, m.renderStatus())

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 3).
		Align(lipgloss.Center)
	if m.ctrl.State() == countdown.Expired && m.flashOn {
		frame = frame.BorderForeground(m.theme.Expired.GetForeground())
	}
	card := frame.Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
	body := lipgloss.JoinVertical(lipgloss.Center, card, m.renderFooter())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return m.theme.Base.Render(body)
}

func (m TimerModel) renderClock() string {
	text := FormatClock(m.ctrl.Remaining())
	style := m.theme.Clock
	switch {
	case m.ctrl.State() == countdown.Expired && m.flashOn:
		style = m.theme.ClockFlash
	case m.ctrl.State() == countdown.Running && m.pulse:
		style = m.theme.ClockPulse
	}
	if m.compact() {
		return style.Render(text)
	}
	return style.Render(renderBigClock(text)) + "\n"
}

func (m TimerModel) renderFields() string {
	editable := m.ctrl.Editable()
	cols := make([]string, 0, fieldCount)
	for i := range m.fields {
		box := m.theme.Input
		switch {
		case !editable:
			box = m.theme.InputDisabled
		case i == m.focus:
			box = m.theme.InputFocused
		}
		label := m.theme.Label.Render(strings.ToUpper(fieldLabels[i]))
		if !editable {
			label = m.theme.Dim.Render(strings.ToUpper(fieldLabels[i]))
		}
		col := lipgloss.JoinVertical(lipgloss.Center, label, box.Render(m.fields[i].View()))
		cols = append(cols, lipgloss.NewStyle().Padding(0, 1).Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m TimerModel) renderProgress() string {
	state := m.ctrl.State()
	if state != countdown.Running && state != countdown.Paused {
		return ""
	}
	total := m.ctrl.Duration().TotalSeconds()
	if total <= 0 {
		return ""
	}
	return m.progress.ViewAs(float64(m.ctrl.Elapsed()) / float64(total))
}

func (m TimerModel) renderStatus() string {
	status := strings.ToUpper(m.ctrl.Status())
	switch m.ctrl.State() {
	case countdown.Running:
		return m.theme.Running.Render(status)
	case countdown.Paused:
		return m.theme.Paused.Render(status)
	case countdown.Expired:
		if m.flashOn {
			return m.theme.ClockFlash.Render(status)
		}
		return m.theme.Expired.Render(status)
	default:
		return m.theme.Dim.Render(status)
	}
}

func (m TimerModel) renderFooter() string {
	var parts []string
	for _, item := range m.keys.HelpFor(m.ctrl) {
		entry := "[" + item.Label + "]" + item.Description
		if item.Enabled {
			parts = append(parts, m.theme.Highlight.Render(entry))
		} else {
			parts = append(parts, m.theme.Dim.Render(entry))
		}
	}
	help := strings.Join(parts, m.theme.Dim.Render(" | "))

	var info []string
	if m.history != nil {
		info = append(info, FormatFinishedCount(m.todayCount))
	}
	info = append(info, config.AppName+" v"+versionLabel())
	infoLine := m.theme.Dim.Render(strings.Join(info, "  ·  "))

	lines := []string{help, infoLine}
	if m.statusMessage != "" {
		style := m.theme.Dim
		if m.statusIsError {
			style = m.theme.Error
		}
		lines = append(lines, style.Render(m.statusMessage))
	}
	if m.width > 0 {
		for i := range lines {
			lines[i] = truncateLabel(lines[i], m.width)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
