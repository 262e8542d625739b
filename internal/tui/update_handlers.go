package tui

import (
	"fmt"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m TimerModel) Update(msg tea.Msg) (TimerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case FlashMsg:
		return m.handleFlash(msg)
	case historyMsg:
		return m.handleHistory(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m TimerModel) handleWindowSize(msg tea.WindowSizeMsg) (TimerModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		m.progress.Width = util.Clamp(target, config.MinProgressWidth, config.ProgressWidth)
	}
	return m, nil
}

// handleTick counts a beat and re-arms the tick only when the beat was
// counted, so a stale or late tick ends its chain.
func (m TimerModel) handleTick(msg TickMsg) (TimerModel, tea.Cmd) {
	switch m.ctrl.Tick(msg.Epoch) {
	case countdown.TickCounted:
		m.pulse = !m.pulse
		return m, tickCmd(m.ctrl.Epoch(), m.tickInterval)
	case countdown.TickExpired:
		m.pulse = false
		m.flashOn = true
		focusCmd := m.syncFieldFocus()
		run := models.Run{
			DurationSeconds: m.ctrl.Duration().TotalSeconds(),
			StartedAt:       m.startedAt,
			FinishedAt:      m.now(),
		}
		m.log.Printf("countdown expired after %s", m.ctrl.Duration())
		return m, tea.Batch(
			flashCmd(m.ctrl.Epoch(), m.flashInterval),
			recordRunCmd(m.ctx, m.history, run),
			focusCmd,
		)
	}
	return m, nil
}

func (m TimerModel) handleFlash(msg FlashMsg) (TimerModel, tea.Cmd) {
	if msg.Epoch != m.ctrl.Epoch() || m.ctrl.State() != countdown.Expired {
		return m, nil
	}
	m.flashOn = !m.flashOn
	return m, flashCmd(msg.Epoch, m.flashInterval)
}

func (m TimerModel) handleHistory(msg historyMsg) (TimerModel, tea.Cmd) {
	if msg.Err != nil {
		util.LogError(m.log, "history", msg.Err)
		m.setStatusError(fmt.Sprintf("History unavailable: %v", msg.Err))
		return m, nil
	}
	if msg.Count >= 0 {
		m.todayCount = msg.Count
	}
	return m, nil
}

func (m TimerModel) handleKey(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	if next, cmd, handled := m.handleFieldInput(msg); handled {
		return next, cmd
	}
	if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
		return next, cmd
	}
	return m, nil
}
