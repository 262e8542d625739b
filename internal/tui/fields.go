package tui

import (
	"strconv"
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldHours = iota
	fieldMinutes
	fieldSeconds
	fieldCount
)

var (
	fieldLabels = [fieldCount]string{"Hours", "Minutes", "Seconds"}
	fieldMax    = [fieldCount]int{config.MaxHours, config.MaxMinutes, config.MaxSeconds}
)

func newFieldInput(value int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0"
	ti.CharLimit = config.FieldCharLimit
	ti.Width = config.InputWidth
	ti.SetValue(strconv.Itoa(value))
	return ti
}

func newFields(d countdown.Duration) [fieldCount]textinput.Model {
	return [fieldCount]textinput.Model{
		newFieldInput(d.Hours),
		newFieldInput(d.Minutes),
		newFieldInput(d.Seconds),
	}
}

func fieldValue(d countdown.Duration, idx int) int {
	switch idx {
	case fieldHours:
		return d.Hours
	case fieldMinutes:
		return d.Minutes
	default:
		return d.Seconds
	}
}

func isDigits(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// handleFieldInput feeds editing keys to the focused field. Letters are left
// for the key registry, so only digits and cursor keys are consumed here.
func (m TimerModel) handleFieldInput(msg tea.KeyMsg) (TimerModel, tea.Cmd, bool) {
	if !m.ctrl.Editable() {
		return m, nil, false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if !isDigits(msg.Runes) {
			return m, nil, false
		}
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
	default:
		return m, nil, false
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	m.commitField(m.focus)
	return m, cmd, true
}

// commitField clamps the field text and pushes it into the controller. An
// empty field counts as zero but is left empty for typing.
func (m *TimerModel) commitField(idx int) {
	raw := strings.TrimSpace(m.fields[idx].Value())
	v := 0
	if raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			v = parsed
		}
	}
	clamped := util.Clamp(v, 0, fieldMax[idx])
	if raw != "" && (clamped != v || raw != strconv.Itoa(clamped)) {
		m.fields[idx].SetValue(strconv.Itoa(clamped))
	}
	m.setField(idx, clamped)
}

func (m *TimerModel) setField(idx, v int) bool {
	switch idx {
	case fieldHours:
		return m.ctrl.SetHours(v)
	case fieldMinutes:
		return m.ctrl.SetMinutes(v)
	default:
		return m.ctrl.SetSeconds(v)
	}
}

func (m TimerModel) adjustField(delta int) TimerModel {
	if !m.ctrl.Editable() {
		return m
	}
	v := util.Clamp(fieldValue(m.ctrl.Duration(), m.focus)+delta, 0, fieldMax[m.focus])
	if m.setField(m.focus, v) {
		m.fields[m.focus].SetValue(strconv.Itoa(v))
	}
	return m
}

func (m TimerModel) moveFocus(step int) (TimerModel, tea.Cmd) {
	m.focus = (m.focus + step + fieldCount) % fieldCount
	return m, m.syncFieldFocus()
}

// syncFieldFocus focuses the selected field when editing is allowed and
// blurs every field otherwise.
func (m *TimerModel) syncFieldFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.fields {
		if i == m.focus && m.ctrl.Editable() {
			cmd = m.fields[i].Focus()
			continue
		}
		m.fields[i].Blur()
	}
	return cmd
}
